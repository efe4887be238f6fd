package api

import (
	"context"
	"net/http"
	"net/url"

	"rsvpportal/internal/domain"
)

type rsvpsAPI struct {
	c *Client
}

// NewRSVPsAPI returns the remote RSVP endpoints served by c.
func NewRSVPsAPI(c *Client) domain.RSVPsAPI {
	return &rsvpsAPI{c: c}
}

type rsvpEnvelope struct {
	RSVP *domain.RSVP `json:"rsvp"`
}

func (a *rsvpsAPI) Get(ctx context.Context, eventID string) (*domain.RSVP, error) {
	var out rsvpEnvelope
	if err := a.c.get(ctx, "/rsvps/"+url.PathEscape(eventID), &out); err != nil {
		return nil, err
	}
	return out.RSVP, nil
}

func (a *rsvpsAPI) Create(ctx context.Context, eventID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	in := struct {
		Status domain.RSVPStatus `json:"status"`
	}{Status: status}
	var out rsvpEnvelope
	if err := a.c.send(ctx, http.MethodPost, "/rsvps/"+url.PathEscape(eventID), in, &out); err != nil {
		return nil, err
	}
	return out.RSVP, nil
}

func (a *rsvpsAPI) SubmitWithToken(ctx context.Context, token string, resp domain.GuestResponse) (domain.SubmitResult, error) {
	var out domain.SubmitResult
	r := request{method: http.MethodPost, path: "/rsvps/token/" + url.PathEscape(token), body: resp, public: true}
	if err := a.c.do(ctx, r, &out); err != nil {
		return domain.SubmitResult{}, err
	}
	return out, nil
}

func (a *rsvpsAPI) TokenStatus(ctx context.Context, token string) (domain.ResponseStatus, error) {
	var out domain.ResponseStatus
	r := request{method: http.MethodGet, path: "/rsvps/token/" + url.PathEscape(token) + "/status", public: true}
	if err := a.c.do(ctx, r, &out); err != nil {
		return domain.ResponseStatus{}, err
	}
	return out, nil
}

func (a *rsvpsAPI) SubmitPublic(ctx context.Context, eventID string, resp domain.GuestResponse) (domain.SubmitResult, error) {
	var out domain.SubmitResult
	r := request{method: http.MethodPost, path: "/rsvps/public/" + url.PathEscape(eventID), body: resp, public: true}
	if err := a.c.do(ctx, r, &out); err != nil {
		return domain.SubmitResult{}, err
	}
	return out, nil
}

func (a *rsvpsAPI) CheckPublic(ctx context.Context, eventID, email string) (domain.ResponseStatus, error) {
	var out domain.ResponseStatus
	path := "/rsvps/public/" + url.PathEscape(eventID) + "/check/" + url.PathEscape(email)
	if err := a.c.do(ctx, request{method: http.MethodGet, path: path, public: true}, &out); err != nil {
		return domain.ResponseStatus{}, err
	}
	return out, nil
}

func (a *rsvpsAPI) DietaryStats(ctx context.Context, eventID string) (domain.DietaryStats, error) {
	var out domain.DietaryStats
	if err := a.c.get(ctx, "/rsvps/event/"+url.PathEscape(eventID)+"/dietary-stats", &out); err != nil {
		return domain.DietaryStats{}, err
	}
	return out, nil
}

func (a *rsvpsAPI) PublicRSVPs(ctx context.Context, eventID string) ([]domain.PublicRSVP, error) {
	var out struct {
		RSVPs []domain.PublicRSVP `json:"rsvps"`
	}
	if err := a.c.get(ctx, "/rsvps/event/"+url.PathEscape(eventID)+"/public-rsvps", &out); err != nil {
		return nil, err
	}
	if out.RSVPs == nil {
		out.RSVPs = []domain.PublicRSVP{}
	}
	return out.RSVPs, nil
}
