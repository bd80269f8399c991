package service

import (
	"context"
	"io"
	"strings"

	"github.com/spec-kit/notice-board/internal/attachment"
	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/pkg/util"
)

// defaultPoster is used when the form supplies no poster name.
const defaultPoster = "Admin"

// NoticeService coordinates notice posting and attachment resolution.
type NoticeService struct {
	notices    repository.NoticeRepository
	dispatcher events.Dispatcher
}

// NoticeCreateInput describes a notice posting payload.
type NoticeCreateInput struct {
	Poster         string
	Title          string
	Departments    []string
	ClassSelection string
	Years          []string
	Content        string
	Attachment     *AttachmentInput
}

// AttachmentInput carries an unread file blob. The blob is resolved through
// the encoder before the notice is constructed, so a failed read never
// produces a partial notice.
type AttachmentInput struct {
	Name     string
	MimeType string
	Blob     io.Reader
}

// NewNoticeService constructs the service.
func NewNoticeService(notices repository.NoticeRepository, dispatcher events.Dispatcher) *NoticeService {
	return &NoticeService{notices: notices, dispatcher: dispatcher}
}

// PostNotice validates the input, resolves the optional attachment and
// persists the notice at the front of the collection.
func (s *NoticeService) PostNotice(ctx context.Context, input NoticeCreateInput) (*domain.Notice, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, util.NewValidationError("title and content are required", nil)
	}

	poster := strings.TrimSpace(input.Poster)
	if poster == "" {
		poster = defaultPoster
	}

	var att *domain.Attachment
	if input.Attachment != nil {
		encoded, err := attachment.Encode(ctx, input.Attachment.Name, input.Attachment.MimeType, input.Attachment.Blob)
		if err != nil {
			return nil, util.NewValidationError("attachment could not be read", map[string]any{
				"name": input.Attachment.Name,
			})
		}
		att = encoded
	}

	notice := &domain.Notice{
		Poster:         poster,
		Title:          title,
		Departments:    input.Departments,
		ClassSelection: input.ClassSelection,
		Years:          input.Years,
		Content:        content,
		Attachment:     att,
	}

	if err := s.notices.Add(ctx, notice); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventNoticePosted,
		EntityID: notice.ID,
		Payload: events.NoticePostedPayload{
			Poster:        notice.Poster,
			Title:         notice.Title,
			Departments:   notice.Departments,
			HasAttachment: notice.HasAttachment(),
		},
	})
	return notice, nil
}

// ListNotices returns the stored collection, newest first.
func (s *NoticeService) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	return s.notices.List(ctx)
}

// Attachment returns the decoded attachment bytes for a notice, or a
// not-found error when the notice is missing or carries none.
func (s *NoticeService) Attachment(ctx context.Context, noticeID string) (name, mimeType string, data []byte, err error) {
	notice, err := s.notices.GetByID(ctx, noticeID)
	if err != nil {
		return "", "", nil, err
	}
	if notice == nil || !notice.HasAttachment() {
		return "", "", nil, util.NewNotFound("attachment", map[string]any{"notice_id": noticeID})
	}
	mimeType, data, err = attachment.Decode(notice.Attachment)
	if err != nil {
		return "", "", nil, util.NewInternalError(err)
	}
	return notice.Attachment.Name, mimeType, data, nil
}

func (s *NoticeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
