package api

import (
	"context"
	"net/http"
	"net/url"

	"rsvpportal/internal/domain"
)

type emailTemplatesAPI struct {
	c *Client
}

// NewEmailTemplatesAPI returns the remote email template endpoints served by c.
func NewEmailTemplatesAPI(c *Client) domain.EmailTemplatesAPI {
	return &emailTemplatesAPI{c: c}
}

type templateEnvelope struct {
	Template *domain.EmailTemplate `json:"template"`
}

func (a *emailTemplatesAPI) Get(ctx context.Context, eventID string) (*domain.EmailTemplate, error) {
	path := "/email-templates"
	if eventID != "" {
		path += "?" + url.Values{"eventId": {eventID}}.Encode()
	}
	var out templateEnvelope
	if err := a.c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Template, nil
}

func (a *emailTemplatesAPI) Save(ctx context.Context, t domain.EmailTemplate) (*domain.EmailTemplate, error) {
	var out templateEnvelope
	if err := a.c.send(ctx, http.MethodPost, "/email-templates", t, &out); err != nil {
		return nil, err
	}
	return out.Template, nil
}

func (a *emailTemplatesAPI) UploadLogo(ctx context.Context, logoData string) (string, error) {
	in := struct {
		LogoData string `json:"logoData"`
	}{LogoData: logoData}
	var out struct {
		LogoURL string `json:"logoUrl"`
	}
	if err := a.c.send(ctx, http.MethodPost, "/email-templates/upload-logo", in, &out); err != nil {
		return "", err
	}
	return out.LogoURL, nil
}
