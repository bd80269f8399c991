package service

import (
	"context"
	"strings"

	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/pkg/util"
)

// CategoryService coordinates the category tag set.
type CategoryService struct {
	categories repository.CategoryRepository
	dispatcher events.Dispatcher
}

// NewCategoryService constructs the service.
func NewCategoryService(categories repository.CategoryRepository, dispatcher events.Dispatcher) *CategoryService {
	return &CategoryService{categories: categories, dispatcher: dispatcher}
}

// ListCategories returns the categories in first-insertion order.
func (s *CategoryService) ListCategories(ctx context.Context) ([]string, error) {
	return s.categories.List(ctx)
}

// AddCategory appends a new tag. Adding an existing tag is a no-op and
// publishes no event.
func (s *CategoryService) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return util.NewValidationError("category name is required", nil)
	}

	existing, err := s.categories.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c == name {
			return nil
		}
	}

	if err := s.categories.Add(ctx, name); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventCategoryAdded,
			Payload: events.CategoryAddedPayload{Name: name},
		})
	}
	return nil
}
