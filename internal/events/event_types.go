package events

import (
	"time"

	"github.com/spec-kit/notice-board/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventNoticePosted   EventType = "notice_posted"
	EventUserRegistered EventType = "user_registered"
	EventUserApproved   EventType = "user_approved"
	EventUserRejected   EventType = "user_rejected"
	EventCategoryAdded  EventType = "category_added"
)

// Event represents a board event emitted by services after persistence.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NoticePostedPayload payload.
type NoticePostedPayload struct {
	Poster        string   `json:"poster"`
	Title         string   `json:"title"`
	Departments   []string `json:"departments"`
	HasAttachment bool     `json:"has_attachment"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name   string            `json:"name"`
	Role   string            `json:"role"`
	Email  string            `json:"email"`
	Status domain.UserStatus `json:"status"`
}

// UserApprovedPayload payload.
type UserApprovedPayload struct {
	Email string `json:"email"`
}

// UserRejectedPayload payload.
type UserRejectedPayload struct {
	Email string `json:"email"`
}

// CategoryAddedPayload payload.
type CategoryAddedPayload struct {
	Name string `json:"name"`
}
