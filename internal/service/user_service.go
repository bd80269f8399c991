package service

import (
	"context"
	"strings"

	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/pkg/util"
)

// UserService coordinates registration and the approval workflow.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// UserRegisterInput describes a registration payload.
type UserRegisterInput struct {
	Name       string
	Role       string
	Department string
	Email      string
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// Register validates the input and stores a new pending user. Emails are
// unique at registration time (case-insensitive); a duplicate is a conflict.
func (s *UserService) Register(ctx context.Context, input UserRegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	role := strings.TrimSpace(input.Role)
	email := strings.TrimSpace(input.Email)
	if name == "" || role == "" || email == "" {
		return nil, util.NewValidationError("name, role and email are required", nil)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, util.NewConflict("email already registered", map[string]any{"email": email})
	}

	user := &domain.User{
		Name:       name,
		Role:       role,
		Department: strings.TrimSpace(input.Department),
		Email:      email,
	}
	if err := s.users.Add(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventUserRegistered,
		EntityID: user.ID,
		Payload: events.UserRegisteredPayload{
			Name:   user.Name,
			Role:   user.Role,
			Email:  user.Email,
			Status: user.Status,
		},
	})
	return user, nil
}

// Approve marks the user with the given email as approved. An unknown email
// is a silent no-op, not an error.
func (s *UserService) Approve(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return util.NewValidationError("email is required", nil)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if err := s.users.ApproveByEmail(ctx, email); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventUserApproved,
		EntityID: user.ID,
		Payload:  events.UserApprovedPayload{Email: user.Email},
	})
	return nil
}

// Reject removes every user with the given email. An unknown email is a
// silent no-op, not an error.
func (s *UserService) Reject(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return util.NewValidationError("email is required", nil)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if err := s.users.RejectByEmail(ctx, email); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventUserRejected,
		EntityID: user.ID,
		Payload:  events.UserRejectedPayload{Email: user.Email},
	})
	return nil
}

// ListUsers returns the full user collection, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListPending returns the users still awaiting approval.
func (s *UserService) ListPending(ctx context.Context) ([]domain.User, error) {
	return s.users.Pending(ctx)
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
