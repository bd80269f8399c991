package domain

import "time"

// Notice is a published board announcement. Notices are immutable once
// created; the collection is append-only until an external bulk clear.
type Notice struct {
	ID             string      `json:"id"`
	CreatedAt      time.Time   `json:"created_at"`
	Poster         string      `json:"poster"`
	Title          string      `json:"title"`
	Departments    []string    `json:"departments"`
	ClassSelection string      `json:"class_selection"`
	Years          []string    `json:"years"`
	Content        string      `json:"content"`
	Attachment     *Attachment `json:"attachment,omitempty"`
}

// HasAttachment reports whether the notice carries an inline attachment.
func (n Notice) HasAttachment() bool {
	return n.Attachment != nil
}
