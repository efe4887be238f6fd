package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// EmailRegexp is the address format accepted for hosts, invitees and public guests.
var EmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Event is an event owned by a host. The remote API is the source of truth.
// swagger:model Event
type Event struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Date              time.Time `json:"date"`
	Location          string    `json:"location"`
	Category          string    `json:"category"`
	Capacity          int       `json:"capacity"`
	AllowedCompanions int       `json:"allowedCompanions"`
	HostName          string    `json:"hostName"`
	HostMobile        string    `json:"hostMobile"`
	HostEmail         string    `json:"hostEmail"`
	RSVPCount         int       `json:"rsvpCount"`
	Image             string    `json:"image,omitempty"`
}

// HasPassed reports whether the event date lies before now.
func (e *Event) HasPassed(now time.Time) bool {
	return !e.Date.IsZero() && e.Date.Before(now)
}

// MaxCompanions is the number of companions a guest may bring. The response
// form supports at most one.
func (e *Event) MaxCompanions() int {
	if e.AllowedCompanions >= 1 {
		return 1
	}
	return 0
}

// EventInput is the payload for creating or updating an event.
// swagger:model EventInput
type EventInput struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Date              time.Time `json:"date"`
	Location          string    `json:"location"`
	Category          string    `json:"category"`
	Capacity          int       `json:"capacity"`
	AllowedCompanions int       `json:"allowedCompanions"`
	HostName          string    `json:"hostName"`
	HostMobile        string    `json:"hostMobile"`
	HostEmail         string    `json:"hostEmail"`
}

// Normalize trims free-text fields and lowercases the host email.
func (in *EventInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Category = strings.TrimSpace(in.Category)
	in.HostName = strings.TrimSpace(in.HostName)
	in.HostMobile = strings.TrimSpace(in.HostMobile)
	in.HostEmail = strings.ToLower(strings.TrimSpace(in.HostEmail))
}

// Validate implements the Validator contract used by the HTTP layer.
func (in EventInput) Validate() []string {
	var errs []string
	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs = append(errs, "title is required")
	} else if len(title) > 200 {
		errs = append(errs, "title too long")
	}
	if len(in.Description) > 2000 {
		errs = append(errs, "description too long")
	}
	if in.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		errs = append(errs, "location is required")
	} else if len(location) > 200 {
		errs = append(errs, "location too long")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "category is required")
	}
	if in.Capacity <= 0 {
		errs = append(errs, "capacity must be positive")
	}
	if in.AllowedCompanions < 0 {
		errs = append(errs, "allowedCompanions must not be negative")
	}
	if email := strings.TrimSpace(in.HostEmail); email != "" && !EmailRegexp.MatchString(email) {
		errs = append(errs, fmt.Sprintf("invalid host email %q", email))
	}
	return errs
}

// EventsAPI is the remote events endpoint set.
type EventsAPI interface {
	List(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id string) (Event, error)
	GetPublic(ctx context.Context, id string) (Event, error)
	Create(ctx context.Context, in EventInput) (Event, error)
	Update(ctx context.Context, id string, in EventInput) (Event, error)
}

// EventService is the session-scoped, cached view of the host's events.
type EventService interface {
	List(ctx context.Context, force bool) ([]Event, error)
	Get(ctx context.Context, id string) (Event, error)
	Create(ctx context.Context, in EventInput) (Event, error)
	Update(ctx context.Context, id string, in EventInput) (Event, error)
}

// EventListQuery filters and orders the host dashboard.
type EventListQuery struct {
	Search   string
	Category string
	// Filter is one of all, upcoming, past or today.
	Filter string
	// Sort is one of date-asc, date-desc, title-asc, title-desc, capacity-asc or capacity-desc.
	Sort string
}
