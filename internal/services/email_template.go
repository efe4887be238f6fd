package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"rsvpportal/internal/domain"
)

// MaxLogoBytes is the largest decoded logo accepted for upload.
const MaxLogoBytes = 2 << 20

var hexColorRegexp = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type emailTemplateService struct {
	api domain.EmailTemplatesAPI
}

// NewEmailTemplateService returns an EmailTemplateService backed by api.
func NewEmailTemplateService(api domain.EmailTemplatesAPI) domain.EmailTemplateService {
	return &emailTemplateService{api: api}
}

func (s *emailTemplateService) Get(ctx context.Context, eventID string) (*domain.EmailTemplate, error) {
	t, err := s.api.Get(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch email template: %w", err)
	}
	return t, nil
}

func (s *emailTemplateService) Save(ctx context.Context, t domain.EmailTemplate) (*domain.EmailTemplate, error) {
	if err := domain.NewValidationError(validateTemplate(t)); err != nil {
		return nil, err
	}
	saved, err := s.api.Save(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to save email template: %w", err)
	}
	return saved, nil
}

func validateTemplate(t domain.EmailTemplate) []string {
	var errs []string
	required := []struct{ name, value string }{
		{"hostName", t.HostName},
		{"fontFamily", t.FontFamily},
		{"headerText", t.HeaderText},
		{"footerText", t.FooterText},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, f.name+" is required")
		}
	}
	colors := []struct {
		name     string
		value    string
		optional bool
	}{
		{"primaryColor", t.PrimaryColor, false},
		{"secondaryColor", t.SecondaryColor, false},
		{"textColor", t.TextColor, true},
		{"eventDetailsBackgroundColor", t.EventDetailsBackgroundColor, true},
	}
	for _, c := range colors {
		if c.optional && c.value == "" {
			continue
		}
		if !hexColorRegexp.MatchString(c.value) {
			errs = append(errs, c.name+" must be a #rrggbb colour")
		}
	}
	return errs
}

// UploadLogo accepts a base64 image data URL of at most MaxLogoBytes.
func (s *emailTemplateService) UploadLogo(ctx context.Context, dataURL string) (string, error) {
	if err := validateLogo(dataURL); err != nil {
		return "", err
	}
	url, err := s.api.UploadLogo(ctx, dataURL)
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}
	return url, nil
}

func validateLogo(dataURL string) error {
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(meta, "data:image/") || !strings.HasSuffix(meta, ";base64") {
		return domain.NewValidationError([]string{"logo must be a base64 encoded image data URL"})
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxLogoBytes+2 {
		return domain.NewValidationError([]string{"logo must be 2MB or smaller"})
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return domain.NewValidationError([]string{"logo is not valid base64"})
	}
	if len(raw) > MaxLogoBytes {
		return domain.NewValidationError([]string{"logo must be 2MB or smaller"})
	}
	return nil
}
