package services

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"rsvpportal/internal/domain"
)

// FilterEvents applies the dashboard search, category and time filters to
// events and orders the result. It never mutates events.
func FilterEvents(events []domain.Event, q domain.EventListQuery, now time.Time) []domain.Event {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if search != "" && !containsFold(e, search) {
			continue
		}
		if q.Category != "" && q.Category != "all" && e.Category != q.Category {
			continue
		}
		if !matchesTimeFilter(e.Date, q.Filter, now) {
			continue
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, eventOrder(q.Sort))
	return out
}

func containsFold(e domain.Event, search string) bool {
	return strings.Contains(strings.ToLower(e.Title), search) ||
		strings.Contains(strings.ToLower(e.Description), search) ||
		strings.Contains(strings.ToLower(e.Location), search)
}

func matchesTimeFilter(date time.Time, filter string, now time.Time) bool {
	switch filter {
	case "upcoming":
		return date.After(now)
	case "past":
		return date.Before(now)
	case "today":
		local := date.In(now.Location())
		y1, m1, d1 := local.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	default:
		return true
	}
}

func eventOrder(sort string) func(a, b domain.Event) int {
	switch sort {
	case "date-desc":
		return func(a, b domain.Event) int { return b.Date.Compare(a.Date) }
	case "title-asc":
		return func(a, b domain.Event) int { return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) }
	case "title-desc":
		return func(a, b domain.Event) int { return strings.Compare(strings.ToLower(b.Title), strings.ToLower(a.Title)) }
	case "capacity-asc":
		return func(a, b domain.Event) int { return cmp.Compare(a.Capacity, b.Capacity) }
	case "capacity-desc":
		return func(a, b domain.Event) int { return cmp.Compare(b.Capacity, a.Capacity) }
	default:
		return func(a, b domain.Event) int { return a.Date.Compare(b.Date) }
	}
}

// Categories returns the distinct event categories in sorted order.
func Categories(events []domain.Event) []string {
	seen := make(map[string]struct{}, len(events))
	out := []string{}
	for _, e := range events {
		if _, ok := seen[e.Category]; ok || e.Category == "" {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	slices.Sort(out)
	return out
}
