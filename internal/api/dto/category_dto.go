package dto

// CategoryAddRequest payload for adding a category tag.
type CategoryAddRequest struct {
	Name string `json:"name"`
}
