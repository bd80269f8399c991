package domain

// Attachment is a binary file re-encoded into an inline, storage-safe
// representation. Name, Type and Data are always set together; a partially
// populated attachment is never persisted.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}
