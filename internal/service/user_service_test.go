package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/persistence"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/pkg/util"
)

func newUserService(dispatcher events.Dispatcher) *UserService {
	repo := repository.NewUserRepository(persistence.NewMemoryStore())
	return NewUserService(repo, dispatcher)
}

func TestRegisterApproveRoundTrip(t *testing.T) {
	svc := newUserService(nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, UserRegisterInput{
		Name: "A", Role: "R", Department: "IT", Email: "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusPending, user.Status)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a@x.com", pending[0].Email)

	require.NoError(t, svc.Approve(ctx, "a@x.com"))

	pending, err = svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.UserStatusApproved, users[0].Status)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newUserService(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, UserRegisterInput{Name: "A", Role: "R", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, UserRegisterInput{Name: "B", Role: "R", Email: "A@X.COM"})
	require.Error(t, err)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterRequiredFields(t *testing.T) {
	svc := newUserService(nil)

	_, err := svc.Register(context.Background(), UserRegisterInput{Name: "A", Role: "", Email: "a@x.com"})
	require.Error(t, err)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestApproveUnknownEmailIsSilentNoop(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	published := 0
	dispatcher.Subscribe(events.EventUserApproved, func(context.Context, events.Event) error {
		published++
		return nil
	})

	svc := newUserService(dispatcher)
	ctx := context.Background()

	_, err := svc.Register(ctx, UserRegisterInput{Name: "A", Role: "R", Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, "nobody@x.com"))
	assert.Zero(t, published)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.UserStatusPending, users[0].Status)
}

func TestRejectRemovesUser(t *testing.T) {
	svc := newUserService(nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, UserRegisterInput{Name: "A", Role: "R", Email: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, UserRegisterInput{Name: "B", Role: "R", Email: "b@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Reject(ctx, "a@x.com"))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "b@x.com", users[0].Email)

	// Rejection is deletion; the same email may register again.
	_, err = svc.Register(ctx, UserRegisterInput{Name: "A2", Role: "R", Email: "a@x.com"})
	require.NoError(t, err)
}
