package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvpportal/internal/domain"
)

func TestAnalyticsService_Event(t *testing.T) {
	tokens := &fakeTokensAPI{pages: []domain.TokenPage{
		{
			Tokens: []domain.InvitationToken{
				{ID: "t1", RSVPStatus: statusPtr(domain.RSVPGoing), Companions: 1},
				{ID: "t2", RSVPStatus: statusPtr(domain.RSVPNotGoing)},
			},
			Pagination: domain.TokenPagination{Page: 1, TotalPages: 2},
		},
		{
			Tokens: []domain.InvitationToken{
				{ID: "t3"},
				{ID: "t4", RSVPStatus: statusPtr(domain.RSVPGoing)},
				{ID: "t5", RSVPStatus: statusPtr(domain.RSVPMaybe)},
			},
			Pagination: domain.TokenPagination{Page: 2, TotalPages: 2},
		},
	}}
	rsvps := newFakeRSVPsAPI()
	rsvps.dietary = domain.DietaryStats{Veg: 2, NotSpecified: 1}
	rsvps.public = []domain.PublicRSVP{{ID: "p1", GuestName: "Grace"}}
	s := NewAnalyticsService(tokens, rsvps, testLogger)

	got, err := s.Event(context.Background(), "e1")

	require.NoError(t, err)
	require.NotNil(t, got.RSVPStats)
	assert.Equal(t, domain.RSVPStats{
		Going:        domain.GoingStats{Count: 2, Guests: 3},
		NotGoing:     1,
		Maybe:        1,
		Pending:      1,
		TotalInvited: 5,
	}, *got.RSVPStats)
	require.NotNil(t, got.DietaryStats)
	assert.Equal(t, 2, got.DietaryStats.Veg)
	assert.Len(t, got.PublicRSVPs, 1)
	require.Len(t, tokens.queries, 2)
	assert.Equal(t, domain.MaxPageLimit, tokens.queries[0].Limit)
}

func TestAnalyticsService_Event_partsAreBestEffort(t *testing.T) {
	tokens := &fakeTokensAPI{listErr: domain.NewAPIError(500, "boom", nil)}
	rsvps := newFakeRSVPsAPI()
	rsvps.dietaryErr = domain.ErrTransport
	rsvps.public = []domain.PublicRSVP{{ID: "p1"}}
	s := NewAnalyticsService(tokens, rsvps, testLogger)

	got, err := s.Event(context.Background(), "e1")

	require.NoError(t, err)
	assert.Nil(t, got.RSVPStats)
	assert.Nil(t, got.DietaryStats)
	assert.Len(t, got.PublicRSVPs, 1)
}

func TestAnalyticsService_Event_unauthorizedFails(t *testing.T) {
	tokens := &fakeTokensAPI{}
	rsvps := newFakeRSVPsAPI()
	rsvps.publicErr = domain.NewAPIError(401, "jwt expired", nil)
	s := NewAnalyticsService(tokens, rsvps, testLogger)

	_, err := s.Event(context.Background(), "e1")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
