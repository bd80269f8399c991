package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/persistence"
)

// NoticeRepository owns the notices collection. The collection is append-only:
// no update or delete exists by design, newest entries come first.
type NoticeRepository interface {
	List(ctx context.Context) ([]domain.Notice, error)
	GetByID(ctx context.Context, id string) (*domain.Notice, error)
	Add(ctx context.Context, notice *domain.Notice) error
}

type noticeRepository struct {
	store persistence.Store
}

// NewNoticeRepository returns a store-backed implementation.
func NewNoticeRepository(store persistence.Store) NoticeRepository {
	return &noticeRepository{store: store}
}

func (r *noticeRepository) List(ctx context.Context) ([]domain.Notice, error) {
	var notices []domain.Notice
	ok, err := r.store.Read(ctx, persistence.KeyNotices, &notices)
	if err != nil {
		return nil, err
	}
	if !ok || notices == nil {
		return []domain.Notice{}, nil
	}
	return notices, nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id string) (*domain.Notice, error) {
	notices, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notices {
		if notices[i].ID == id {
			return &notices[i], nil
		}
	}
	return nil, nil
}

// Add assigns the id and creation time, prepends the notice and persists the
// full collection.
func (r *noticeRepository) Add(ctx context.Context, notice *domain.Notice) error {
	notices, err := r.List(ctx)
	if err != nil {
		return err
	}

	notice.ID = "n_" + uuid.NewString()
	notice.CreatedAt = time.Now().UTC()

	notices = append([]domain.Notice{*notice}, notices...)
	return r.store.Write(ctx, persistence.KeyNotices, notices)
}
