package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rsvpportal/internal/domain"
)

// maxStatsPages bounds how many invitation pages are read to compute RSVP stats.
const maxStatsPages = 50

type analyticsService struct {
	tokens domain.TokensAPI
	rsvps  domain.RSVPsAPI
	logger *slog.Logger
}

// NewAnalyticsService returns an AnalyticsService. Each part of the result is
// loaded independently; a failed part is logged and left empty.
func NewAnalyticsService(tokens domain.TokensAPI, rsvps domain.RSVPsAPI, logger *slog.Logger) domain.AnalyticsService {
	return &analyticsService{tokens: tokens, rsvps: rsvps, logger: logger}
}

func (s *analyticsService) Event(ctx context.Context, eventID string) (domain.EventAnalytics, error) {
	out := domain.EventAnalytics{EventID: eventID}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.rsvpStats(gctx, eventID)
		if err != nil {
			return s.bestEffort(ctx, "rsvp stats", eventID, err)
		}
		out.RSVPStats = &stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.rsvps.DietaryStats(gctx, eventID)
		if err != nil {
			return s.bestEffort(ctx, "dietary stats", eventID, err)
		}
		out.DietaryStats = &stats
		return nil
	})
	g.Go(func() error {
		list, err := s.rsvps.PublicRSVPs(gctx, eventID)
		if err != nil {
			return s.bestEffort(ctx, "public rsvps", eventID, err)
		}
		out.PublicRSVPs = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.EventAnalytics{}, fmt.Errorf("failed to load analytics: %w", err)
	}
	return out, nil
}

// bestEffort swallows err unless it means the session is gone.
func (s *analyticsService) bestEffort(ctx context.Context, part, eventID string, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	s.logger.WarnContext(ctx, "failed to load analytics part", "part", part, "event_id", eventID, "err", err)
	return nil
}

func (s *analyticsService) rsvpStats(ctx context.Context, eventID string) (domain.RSVPStats, error) {
	var stats domain.RSVPStats
	q := domain.TokenQuery{PaginationParams: domain.PaginationParams{Page: 1, Limit: domain.MaxPageLimit}}
	for ; q.Page <= maxStatsPages; q.Page++ {
		page, err := s.tokens.List(ctx, eventID, q)
		if err != nil {
			return domain.RSVPStats{}, err
		}
		for _, t := range page.Tokens {
			countToken(&stats, t)
		}
		if q.Page >= page.Pagination.TotalPages {
			break
		}
	}
	return stats, nil
}

func countToken(stats *domain.RSVPStats, t domain.InvitationToken) {
	stats.TotalInvited++
	if t.RSVPStatus == nil {
		stats.Pending++
		return
	}
	switch *t.RSVPStatus {
	case domain.RSVPGoing:
		stats.Going.Count++
		stats.Going.Guests += 1 + t.Companions
	case domain.RSVPNotGoing:
		stats.NotGoing++
	case domain.RSVPMaybe:
		stats.Maybe++
	default:
		stats.Pending++
	}
}
