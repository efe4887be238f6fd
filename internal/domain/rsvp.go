package domain

import (
	"context"
	"time"
)

// RSVPStatus is a guest's attendance answer.
type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "going"
	RSVPMaybe    RSVPStatus = "maybe"
	RSVPNotGoing RSVPStatus = "not-going"
)

// Valid reports whether s is one of the known statuses. Maybe is only
// accepted in the authenticated flow.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}

// DietaryPreference is one of three fixed categories; the empty value means unspecified.
type DietaryPreference string

const (
	DietNonVeg      DietaryPreference = "nonveg"
	DietVeg         DietaryPreference = "veg"
	DietVegan       DietaryPreference = "vegan"
	DietUnspecified DietaryPreference = ""
)

// Valid reports whether p is a known category or unspecified.
func (p DietaryPreference) Valid() bool {
	switch p {
	case DietNonVeg, DietVeg, DietVegan, DietUnspecified:
		return true
	}
	return false
}

// RSVP is the authenticated user's own response to an event.
// swagger:model RSVP
type RSVP struct {
	ID        string     `json:"id"`
	EventID   string     `json:"eventId"`
	UserID    string     `json:"userId"`
	Status    RSVPStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// GuestResponse is the submission sent for a token or public-link RSVP.
// Optional fields are omitted when empty.
type GuestResponse struct {
	Status                     RSVPStatus        `json:"status"`
	Companions                 int               `json:"companions"`
	GuestName                  string            `json:"guestName,omitempty"`
	GuestEmail                 string            `json:"guestEmail,omitempty"`
	DietaryPreference          DietaryPreference `json:"dietaryPreference,omitempty"`
	CompanionDietaryPreference DietaryPreference `json:"companionDietaryPreference,omitempty"`
}

// RecordedResponse is a guest response as recorded by the remote API.
// swagger:model RecordedResponse
type RecordedResponse struct {
	Status                     RSVPStatus        `json:"status"`
	Companions                 int               `json:"companions"`
	TotalAttendees             int               `json:"totalAttendees"`
	GuestName                  string            `json:"guestName,omitempty"`
	DietaryPreference          DietaryPreference `json:"dietaryPreference,omitempty"`
	CompanionDietaryPreference DietaryPreference `json:"companionDietaryPreference,omitempty"`
	RespondedAt                *time.Time        `json:"respondedAt,omitempty"`
}

// Attendees returns the recorded head count, falling back to the guest plus companions.
func (r RecordedResponse) Attendees() int {
	if r.TotalAttendees > 0 {
		return r.TotalAttendees
	}
	if r.Status != RSVPGoing {
		return 0
	}
	return 1 + r.Companions
}

// ResponseStatus reports whether a response was already recorded.
type ResponseStatus struct {
	HasResponded bool              `json:"hasResponded"`
	RSVP         *RecordedResponse `json:"rsvp"`
}

// SubmitResult is returned after a guest response is accepted.
type SubmitResult struct {
	Message string           `json:"message"`
	RSVP    RecordedResponse `json:"rsvp"`
}

// DietaryStats counts dietary preferences across attendees of an event.
// swagger:model DietaryStats
type DietaryStats struct {
	NonVeg       int `json:"nonveg"`
	Veg          int `json:"veg"`
	Vegan        int `json:"vegan"`
	NotSpecified int `json:"notSpecified"`
}

// PublicRSVP is a response submitted through the public link.
// swagger:model PublicRSVP
type PublicRSVP struct {
	ID                         string            `json:"id"`
	GuestName                  string            `json:"guestName"`
	GuestEmail                 string            `json:"guestEmail"`
	Status                     RSVPStatus        `json:"status"`
	Companions                 int               `json:"companions"`
	DietaryPreference          DietaryPreference `json:"dietaryPreference,omitempty"`
	CompanionDietaryPreference DietaryPreference `json:"companionDietaryPreference,omitempty"`
	CreatedAt                  time.Time         `json:"createdAt"`
}

// RSVPsAPI is the remote RSVP endpoint set.
type RSVPsAPI interface {
	// Get returns the caller's RSVP for the event or nil when none exists.
	Get(ctx context.Context, eventID string) (*RSVP, error)
	Create(ctx context.Context, eventID string, status RSVPStatus) (*RSVP, error)

	SubmitWithToken(ctx context.Context, token string, resp GuestResponse) (SubmitResult, error)
	TokenStatus(ctx context.Context, token string) (ResponseStatus, error)

	SubmitPublic(ctx context.Context, eventID string, resp GuestResponse) (SubmitResult, error)
	CheckPublic(ctx context.Context, eventID, email string) (ResponseStatus, error)

	DietaryStats(ctx context.Context, eventID string) (DietaryStats, error)
	PublicRSVPs(ctx context.Context, eventID string) ([]PublicRSVP, error)
}

// RSVPService is the session-scoped, cached view of the host's own RSVPs.
type RSVPService interface {
	// Status returns the caller's status for the event, nil when none.
	Status(ctx context.Context, eventID string, force bool) (*RSVPStatus, error)
	StatusMany(ctx context.Context, eventIDs []string, force bool) (map[string]*RSVPStatus, error)
	Respond(ctx context.Context, eventID string, status RSVPStatus) (*RSVP, error)
}

// PublicEventView is an event as shown on its public response page.
// swagger:model PublicEventView
type PublicEventView struct {
	Event Event `json:"event"`
	// Closed is true once the event date has passed.
	Closed bool `json:"closed"`
}

// PublicRSVPService drives the public-link response page.
type PublicRSVPService interface {
	Event(ctx context.Context, eventID string) (PublicEventView, error)
	Check(ctx context.Context, eventID, email string) (ResponseStatus, error)
	Submit(ctx context.Context, eventID string, form ResponseForm) (SubmitResult, error)
}
