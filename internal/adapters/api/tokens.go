package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"rsvpportal/internal/domain"
)

type tokensAPI struct {
	c *Client
}

// NewTokensAPI returns the remote invitation token endpoints served by c.
func NewTokensAPI(c *Client) domain.TokensAPI {
	return &tokensAPI{c: c}
}

func (a *tokensAPI) List(ctx context.Context, eventID string, q domain.TokenQuery) (domain.TokenPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.InviteType != "" {
		params.Set("inviteType", q.InviteType)
	}
	var out domain.TokenPage
	if err := a.c.get(ctx, "/tokens/"+url.PathEscape(eventID)+"?"+params.Encode(), &out); err != nil {
		return domain.TokenPage{}, err
	}
	if out.Tokens == nil {
		out.Tokens = []domain.InvitationToken{}
	}
	return out, nil
}

func (a *tokensAPI) Create(ctx context.Context, eventID, email, name string) (domain.CreatedInvitation, error) {
	in := struct {
		Email string `json:"email"`
		Name  string `json:"name,omitempty"`
	}{Email: email, Name: name}
	var out domain.CreatedInvitation
	if err := a.c.send(ctx, http.MethodPost, "/tokens/"+url.PathEscape(eventID), in, &out); err != nil {
		return domain.CreatedInvitation{}, err
	}
	return out, nil
}

func (a *tokensAPI) Resolve(ctx context.Context, token string) (domain.ResolvedToken, error) {
	var out domain.ResolvedToken
	r := request{method: http.MethodGet, path: "/tokens/token/" + url.PathEscape(token), public: true}
	if err := a.c.do(ctx, r, &out); err != nil {
		return domain.ResolvedToken{}, err
	}
	return out, nil
}
