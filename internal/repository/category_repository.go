package repository

import (
	"context"

	"github.com/spec-kit/notice-board/internal/persistence"
)

// CategoryRepository owns the categories collection, a string set keeping
// first-insertion order. There is no removal operation.
type CategoryRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
}

type categoryRepository struct {
	store persistence.Store
}

// NewCategoryRepository returns a store-backed implementation.
func NewCategoryRepository(store persistence.Store) CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) List(ctx context.Context) ([]string, error) {
	var categories []string
	ok, err := r.store.Read(ctx, persistence.KeyCategories, &categories)
	if err != nil {
		return nil, err
	}
	if !ok || categories == nil {
		return []string{}, nil
	}
	return categories, nil
}

// Add appends name at the end unless an exact match is already present, in
// which case it is a no-op. Membership is exact string comparison.
func (r *categoryRepository) Add(ctx context.Context, name string) error {
	categories, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c == name {
			return nil
		}
	}
	categories = append(categories, name)
	return r.store.Write(ctx, persistence.KeyCategories, categories)
}
