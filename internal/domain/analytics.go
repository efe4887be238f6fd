package domain

import "context"

// GoingStats counts going responses and the companions they bring.
type GoingStats struct {
	Count  int `json:"count"`
	Guests int `json:"guests"`
}

// RSVPStats summarizes the responses to an event's invitations.
// swagger:model RSVPStats
type RSVPStats struct {
	Going        GoingStats `json:"going"`
	NotGoing     int        `json:"notGoing"`
	Maybe        int        `json:"maybe"`
	Pending      int        `json:"pending"`
	TotalInvited int        `json:"totalInvited"`
}

// EventAnalytics is the host's analytics view of an event. Parts that
// could not be loaded are nil.
// swagger:model EventAnalytics
type EventAnalytics struct {
	EventID      string        `json:"eventId"`
	RSVPStats    *RSVPStats    `json:"rsvpStats"`
	DietaryStats *DietaryStats `json:"dietaryStats"`
	PublicRSVPs  []PublicRSVP  `json:"publicRsvps"`
}

// AnalyticsService aggregates an event's response statistics.
type AnalyticsService interface {
	Event(ctx context.Context, eventID string) (EventAnalytics, error)
}
