package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/persistence"
)

// UserRepository owns the users collection. Email is the lookup key for the
// approval workflow.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Pending(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Add(ctx context.Context, user *domain.User) error
	ApproveByEmail(ctx context.Context, email string) error
	RejectByEmail(ctx context.Context, email string) error
}

type userRepository struct {
	store persistence.Store
}

// NewUserRepository returns a store-backed implementation.
func NewUserRepository(store persistence.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	ok, err := r.store.Read(ctx, persistence.KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok || users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (r *userRepository) Pending(ctx context.Context) ([]domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := []domain.User{}
	for _, u := range users {
		if u.Status == domain.UserStatusPending {
			pending = append(pending, u)
		}
	}
	return pending, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Add assigns the id, forces pending status, prepends the user and persists
// the full collection.
func (r *userRepository) Add(ctx context.Context, user *domain.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	user.ID = "u_" + uuid.NewString()
	user.Status = domain.UserStatusPending

	users = append([]domain.User{*user}, users...)
	return r.store.Write(ctx, persistence.KeyUsers, users)
}

// ApproveByEmail marks the first user with a matching email as approved.
// A miss is a silent no-op.
func (r *userRepository) ApproveByEmail(ctx context.Context, email string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			users[i].Status = domain.UserStatusApproved
			return r.store.Write(ctx, persistence.KeyUsers, users)
		}
	}
	return nil
}

// RejectByEmail removes every user with a matching email, preserving the
// order of the rest. A miss is a silent no-op.
func (r *userRepository) RejectByEmail(ctx context.Context, email string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	removed := false
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	if !removed {
		return nil
	}
	return r.store.Write(ctx, persistence.KeyUsers, kept)
}
