package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvpportal/internal/cache"
	"rsvpportal/internal/domain"
)

func validInput() domain.EventInput {
	return domain.EventInput{
		Title:             "  Annual Gala ",
		Description:       "Black tie",
		Date:              testNow.Add(48 * time.Hour),
		Location:          "Grand Hall",
		Category:          "Social",
		Capacity:          100,
		AllowedCompanions: 1,
		HostName:          "Ada",
		HostEmail:         "ADA@example.com",
	}
}

func newTestEventsStore(api *fakeEventsAPI) *EventsStore {
	return NewEventsStore(api, cache.Options{Now: fixedNow, Logger: testLogger})
}

func TestEventsStore_List_usesCacheWithinTTL(t *testing.T) {
	ctx := context.Background()
	api := newFakeEventsAPI(domain.Event{ID: "e1", Title: "Annual Gala"})
	s := newTestEventsStore(api)

	first, err := s.List(ctx, false)
	require.NoError(t, err)
	second, err := s.List(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.listCalls)

	_, err = s.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestEventsStore_List_failureKeepsPreviousEvents(t *testing.T) {
	ctx := context.Background()
	api := newFakeEventsAPI(domain.Event{ID: "e1"})
	s := newTestEventsStore(api)
	_, err := s.List(ctx, false)
	require.NoError(t, err)

	api.err = domain.NewAPIError(500, "HTTP error! status: 500", nil)
	_, err = s.List(ctx, true)

	require.ErrorIs(t, err, domain.ErrUpstream)
	assert.Len(t, s.Items(), 1)
	assert.ErrorIs(t, s.Err(), domain.ErrUpstream)
}

func TestEventsStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success appends normalized event", func(t *testing.T) {
		api := newFakeEventsAPI()
		s := newTestEventsStore(api)

		e, err := s.Create(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, "Annual Gala", e.Title)
		assert.Equal(t, "ada@example.com", e.HostEmail)
		require.Len(t, s.Items(), 1)

		_, err = s.List(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 0, api.listCalls, "creation counts as a fresh read")
	})

	t.Run("validation fails before remote call", func(t *testing.T) {
		api := newFakeEventsAPI()
		s := newTestEventsStore(api)
		in := validInput()
		in.Title = ""
		in.Capacity = 0

		_, err := s.Create(ctx, in)

		require.ErrorIs(t, err, domain.ErrInvalidInput)
		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Messages, "title is required")
		assert.Contains(t, vErr.Messages, "capacity must be positive")
		assert.Empty(t, api.byID)
	})

	t.Run("remote failure records error and adds nothing", func(t *testing.T) {
		api := newFakeEventsAPI()
		api.err = domain.NewAPIError(400, "Capacity too large", nil)
		s := newTestEventsStore(api)

		_, err := s.Create(ctx, validInput())

		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, s.Items())
		assert.Equal(t, "Capacity too large", domain.UserMessage(s.Err()))
	})
}

func TestEventsStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("past date is rejected locally", func(t *testing.T) {
		api := newFakeEventsAPI(domain.Event{ID: "e1"})
		s := newTestEventsStore(api)
		in := validInput()
		in.Date = testNow.Add(-time.Hour)

		_, err := s.Update(ctx, "e1", in)

		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, pastDateMessage, domain.UserMessage(err))
		assert.Empty(t, api.byID["e1"].Title)
	})

	t.Run("success replaces cached event", func(t *testing.T) {
		api := newFakeEventsAPI(domain.Event{ID: "e1", Title: "Old"})
		s := newTestEventsStore(api)
		_, err := s.List(ctx, false)
		require.NoError(t, err)

		_, err = s.Update(ctx, "e1", validInput())

		require.NoError(t, err)
		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Annual Gala", items[0].Title)
	})
}

func TestEventsStore_Get(t *testing.T) {
	ctx := context.Background()
	api := newFakeEventsAPI(domain.Event{ID: "e1", Title: "Annual Gala"})
	s := newTestEventsStore(api)

	e, err := s.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Annual Gala", e.Title)
	_, err = s.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 1, api.getCalls)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
