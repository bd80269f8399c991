package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/persistence"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/pkg/util"
)

type failingBlob struct{}

func (failingBlob) Read([]byte) (int, error) {
	return 0, errors.New("unreadable blob")
}

func newNoticeService(dispatcher events.Dispatcher) (*NoticeService, repository.NoticeRepository) {
	repo := repository.NewNoticeRepository(persistence.NewMemoryStore())
	return NewNoticeService(repo, dispatcher), repo
}

func TestPostNoticeRequiresTitleAndContent(t *testing.T) {
	svc, _ := newNoticeService(nil)

	_, err := svc.PostNotice(context.Background(), NoticeCreateInput{Title: " ", Content: "C"})
	require.Error(t, err)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestPostNoticeDefaultsPoster(t *testing.T) {
	svc, _ := newNoticeService(nil)

	notice, err := svc.PostNotice(context.Background(), NoticeCreateInput{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", notice.Poster)
	assert.Nil(t, notice.Attachment)
}

func TestPostNoticeWithAttachment(t *testing.T) {
	svc, _ := newNoticeService(nil)

	notice, err := svc.PostNotice(context.Background(), NoticeCreateInput{
		Title:   "T",
		Content: "C",
		Attachment: &AttachmentInput{
			Name:     "syllabus.pdf",
			MimeType: "application/pdf",
			Blob:     strings.NewReader("pdf bytes"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, notice.Attachment)
	assert.Equal(t, "syllabus.pdf", notice.Attachment.Name)
	assert.Equal(t, "application/pdf", notice.Attachment.Type)
	assert.NotEmpty(t, notice.Attachment.Data)
}

func TestPostNoticeAttachmentFailureCreatesNoNotice(t *testing.T) {
	svc, repo := newNoticeService(nil)
	ctx := context.Background()

	_, err := svc.PostNotice(ctx, NoticeCreateInput{
		Title:   "T",
		Content: "C",
		Attachment: &AttachmentInput{
			Name:     "broken.txt",
			MimeType: "text/plain",
			Blob:     failingBlob{},
		},
	})
	require.Error(t, err)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	notices, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, notices, "failed attachment read must not create a partial notice")
}

func TestPostNoticePublishesEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var got []events.Event
	dispatcher.Subscribe(events.EventNoticePosted, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})

	svc, _ := newNoticeService(dispatcher)
	notice, err := svc.PostNotice(context.Background(), NoticeCreateInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, notice.ID, got[0].EntityID)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestNoticeAttachmentLookup(t *testing.T) {
	svc, _ := newNoticeService(nil)
	ctx := context.Background()

	notice, err := svc.PostNotice(ctx, NoticeCreateInput{
		Title:   "T",
		Content: "C",
		Attachment: &AttachmentInput{
			Name:     "img.png",
			MimeType: "image/png",
			Blob:     strings.NewReader("png bytes"),
		},
	})
	require.NoError(t, err)

	name, mimeType, data, err := svc.Attachment(ctx, notice.ID)
	require.NoError(t, err)
	assert.Equal(t, "img.png", name)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte("png bytes"), data)

	_, _, _, err = svc.Attachment(ctx, "n_missing")
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
