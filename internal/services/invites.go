package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rsvpportal/internal/domain"
)

const (
	inviteSentMessage      = "Invitation email sent!"
	inviteNotMailedMessage = "Invitation created (email not configured)"
)

var tokenStatusFilters = map[string]bool{"": true, "going": true, "maybe": true, "not-going": true, "pending": true}

type inviteService struct {
	tokens domain.TokensAPI
	events domain.Workspaces
	now    func() time.Time
}

// NewInviteService returns the host invitation list service. Event lookups go
// through the session's cached events.
func NewInviteService(tokens domain.TokensAPI, events domain.Workspaces, now func() time.Time) domain.InviteService {
	if now == nil {
		now = time.Now
	}
	return &inviteService{tokens: tokens, events: events, now: now}
}

func (s *inviteService) List(ctx context.Context, eventID string, q domain.TokenQuery) (domain.TokenPage, error) {
	q.PaginationParams = q.PaginationParams.Normalize()
	q.Search = strings.TrimSpace(q.Search)
	var msgs []string
	if !tokenStatusFilters[q.Status] {
		msgs = append(msgs, "status must be one of going, maybe, not-going, pending")
	}
	if q.InviteType != "" && q.InviteType != string(domain.InviteTypePrivate) && q.InviteType != string(domain.InviteTypePublic) {
		msgs = append(msgs, "inviteType must be private or public")
	}
	if err := domain.NewValidationError(msgs); err != nil {
		return domain.TokenPage{}, err
	}
	page, err := s.tokens.List(ctx, eventID, q)
	if err != nil {
		return domain.TokenPage{}, fmt.Errorf("failed to list invitations: %w", err)
	}
	return page, nil
}

// Invite creates an invitation. Events that already took place cannot be
// invited to.
func (s *inviteService) Invite(ctx context.Context, eventID, email, name string) (domain.InviteResult, error) {
	email = normalizeEmail(email)
	if !domain.EmailRegexp.MatchString(email) {
		return domain.InviteResult{}, domain.NewValidationError([]string{"Please enter a valid email address"})
	}
	if s.events != nil {
		if sess, ok := domain.SessionFromContext(ctx); ok {
			e, err := s.events.Events(ctx, sess).Get(ctx, eventID)
			if err != nil {
				return domain.InviteResult{}, err
			}
			if e.HasPassed(s.now()) {
				return domain.InviteResult{}, domain.ErrEventPassed
			}
		}
	}
	created, err := s.tokens.Create(ctx, eventID, email, strings.TrimSpace(name))
	if err != nil {
		return domain.InviteResult{}, fmt.Errorf("failed to create invitation: %w", err)
	}
	msg := inviteNotMailedMessage
	if created.EmailSent {
		msg = inviteSentMessage
	}
	return domain.InviteResult{Token: created.Token, EmailSent: created.EmailSent, Message: msg}, nil
}
