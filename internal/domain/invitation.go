package domain

import (
	"context"
	"time"
)

// InviteType distinguishes emailed invitations from public-link responses.
type InviteType string

const (
	InviteTypePrivate InviteType = "private"
	InviteTypePublic  InviteType = "public"
)

// InvitationToken is an invitation record. Public-link RSVPs are reported as
// synthesized records with IsPrivateInvite false and no token.
// swagger:model InvitationToken
type InvitationToken struct {
	ID              string      `json:"id"`
	EventID         string      `json:"eventId,omitempty"`
	Email           string      `json:"email"`
	Name            *string     `json:"name"`
	Token           *string     `json:"token"`
	RSVPStatus      *RSVPStatus `json:"rsvpStatus"`
	Companions      int         `json:"companions"`
	CreatedAt       time.Time   `json:"createdAt"`
	IsPrivateInvite bool        `json:"isPrivateInvite"`
}

// Invitee is the identity an invitation token resolves to.
type Invitee struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// DisplayName returns the invitee name or an empty string.
func (i Invitee) DisplayName() string {
	if i.Name == nil {
		return ""
	}
	return *i.Name
}

// ResolvedToken is the result of looking up an invitation token.
type ResolvedToken struct {
	Event Event   `json:"event"`
	Token Invitee `json:"token"`
}

// TokenQuery filters the host's invitation list.
type TokenQuery struct {
	PaginationParams
	Search     string
	Status     string
	InviteType string
}

// TokenPagination is the pagination block returned with invitation lists.
// swagger:model TokenPagination
type TokenPagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// TokenPage is one page of invitations.
// swagger:model TokenPage
type TokenPage struct {
	Tokens     []InvitationToken `json:"tokens"`
	Pagination TokenPagination   `json:"pagination"`
}

// CreatedInvitation is returned when a host invites a guest.
// swagger:model CreatedInvitation
type CreatedInvitation struct {
	Token     InvitationToken `json:"token"`
	EmailSent bool            `json:"emailSent"`
}

// TokensAPI is the remote invitation token endpoint set.
type TokensAPI interface {
	List(ctx context.Context, eventID string, q TokenQuery) (TokenPage, error)
	Create(ctx context.Context, eventID, email, name string) (CreatedInvitation, error)
	Resolve(ctx context.Context, token string) (ResolvedToken, error)
}

// InvitationState is the stage of a token-gated response page.
type InvitationState string

const (
	StateLoading          InvitationState = "loading"
	StateError            InvitationState = "error"
	StateAlreadyResponded InvitationState = "already_responded"
	StateAwaitingResponse InvitationState = "awaiting_response"
	StateEventPassed      InvitationState = "event_passed"
	StateSubmitted        InvitationState = "submitted"
)

// InvitationView is what a guest sees for an invitation token.
// swagger:model InvitationView
type InvitationView struct {
	State    InvitationState   `json:"state"`
	Event    *Event            `json:"event,omitempty"`
	Invitee  *Invitee          `json:"invitee,omitempty"`
	Response *RecordedResponse `json:"response,omitempty"`
	// FormOffered is true only while a response can still be submitted.
	FormOffered bool   `json:"formOffered"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
	Retryable   bool   `json:"retryable"`
}

// ResponseForm is a guest's answer on the invitation or public page.
// GuestEmail is only used by the public page.
// swagger:model ResponseForm
type ResponseForm struct {
	Status                     RSVPStatus        `json:"status"`
	BringCompanion             bool              `json:"bringCompanion"`
	GuestName                  string            `json:"guestName"`
	GuestEmail                 string            `json:"guestEmail,omitempty"`
	DietaryPreference          DietaryPreference `json:"dietaryPreference,omitempty"`
	CompanionDietaryPreference DietaryPreference `json:"companionDietaryPreference,omitempty"`
}

// InvitationService drives the token-gated response page.
type InvitationService interface {
	View(ctx context.Context, token string) (InvitationView, error)
	Submit(ctx context.Context, token string, form ResponseForm) (InvitationView, error)
}

// InviteService manages a host's invitation list for an event.
type InviteService interface {
	List(ctx context.Context, eventID string, q TokenQuery) (TokenPage, error)
	Invite(ctx context.Context, eventID, email, name string) (InviteResult, error)
}

// InviteResult is a created invitation with a user-facing confirmation.
// swagger:model InviteResult
type InviteResult struct {
	Token     InvitationToken `json:"token"`
	EmailSent bool            `json:"emailSent"`
	Message   string          `json:"message"`
}
