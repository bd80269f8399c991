package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFillsIDAndTimestamp(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var got Event
	dispatcher.Subscribe(EventCategoryAdded, func(_ context.Context, e Event) error {
		got = e
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventCategoryAdded}))
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestPublishContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		calls++
		return errors.New("handler failure")
	})
	dispatcher.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventUserRegistered}))
	assert.Equal(t, 2, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventNoticePosted}))
}
