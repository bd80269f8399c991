package dto

// NoticeCreateRequest payload for posting a notice without a file upload.
// Uploads go through the multipart form instead.
type NoticeCreateRequest struct {
	Poster         string   `json:"poster"`
	Title          string   `json:"title"`
	Departments    []string `json:"departments"`
	ClassSelection string   `json:"class_selection"`
	Years          []string `json:"years"`
	Content        string   `json:"content"`
}
