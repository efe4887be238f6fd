package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rsvpportal/internal/domain"
)

func dashboardEvents() []domain.Event {
	return []domain.Event{
		{ID: "gala", Title: "Annual Gala", Location: "Grand Hall", Category: "Social", Capacity: 200, Date: testNow.Add(72 * time.Hour)},
		{ID: "standup", Title: "standup", Description: "daily sync", Location: "Room 1", Category: "Work", Capacity: 10, Date: testNow.Add(time.Hour)},
		{ID: "retro", Title: "Retro", Location: "Room 2", Category: "Work", Capacity: 12, Date: testNow.Add(-48 * time.Hour)},
	}
}

func ids(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestFilterEvents(t *testing.T) {
	tests := []struct {
		name string
		q    domain.EventListQuery
		want []string
	}{
		{"default sorts by date ascending", domain.EventListQuery{}, []string{"retro", "standup", "gala"}},
		{"date descending", domain.EventListQuery{Sort: "date-desc"}, []string{"gala", "standup", "retro"}},
		{"title ascending ignores case", domain.EventListQuery{Sort: "title-asc"}, []string{"gala", "retro", "standup"}},
		{"title descending", domain.EventListQuery{Sort: "title-desc"}, []string{"standup", "retro", "gala"}},
		{"capacity ascending", domain.EventListQuery{Sort: "capacity-asc"}, []string{"standup", "retro", "gala"}},
		{"capacity descending", domain.EventListQuery{Sort: "capacity-desc"}, []string{"gala", "retro", "standup"}},
		{"search matches description", domain.EventListQuery{Search: "SYNC"}, []string{"standup"}},
		{"search matches location", domain.EventListQuery{Search: "room"}, []string{"retro", "standup"}},
		{"category", domain.EventListQuery{Category: "Work"}, []string{"retro", "standup"}},
		{"category all", domain.EventListQuery{Category: "all"}, []string{"retro", "standup", "gala"}},
		{"upcoming", domain.EventListQuery{Filter: "upcoming"}, []string{"standup", "gala"}},
		{"past", domain.EventListQuery{Filter: "past"}, []string{"retro"}},
		{"today", domain.EventListQuery{Filter: "today"}, []string{"standup"}},
		{"no match", domain.EventListQuery{Search: "nothing"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := dashboardEvents()
			got := FilterEvents(events, tt.q, testNow)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, "gala", events[0].ID, "input is not reordered")
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Social", "Work"}, Categories(dashboardEvents()))
	assert.Equal(t, []string{}, Categories(nil))
}
