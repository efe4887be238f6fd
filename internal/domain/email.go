package domain

import "context"

// EmailTemplate is the host's branding for invitation emails.
// swagger:model EmailTemplate
type EmailTemplate struct {
	ID                          string `json:"id,omitempty"`
	EventID                     string `json:"eventId,omitempty"`
	LogoURL                     string `json:"logoUrl,omitempty"`
	HostName                    string `json:"hostName"`
	PrimaryColor                string `json:"primaryColor"`
	SecondaryColor              string `json:"secondaryColor"`
	TextColor                   string `json:"textColor,omitempty"`
	EventDetailsBackgroundColor string `json:"eventDetailsBackgroundColor,omitempty"`
	FontFamily                  string `json:"fontFamily"`
	HeaderText                  string `json:"headerText"`
	SampleEventTitle            string `json:"sampleEventTitle,omitempty"`
	FooterText                  string `json:"footerText"`
	ButtonText                  string `json:"buttonText,omitempty"`
	ButtonRadius                string `json:"buttonRadius,omitempty"`
	ShowEmojis                  *bool  `json:"showEmojis,omitempty"`
	DescriptionText             string `json:"descriptionText,omitempty"`
	IsDefault                   *bool  `json:"isDefault,omitempty"`
}

// EmailTemplatesAPI is the remote email template endpoint set.
type EmailTemplatesAPI interface {
	// Get returns the template for eventID, or the host default when eventID is empty.
	Get(ctx context.Context, eventID string) (*EmailTemplate, error)
	Save(ctx context.Context, t EmailTemplate) (*EmailTemplate, error)
	UploadLogo(ctx context.Context, logoData string) (string, error)
}

// EmailTemplateService validates and stores email templates.
type EmailTemplateService interface {
	Get(ctx context.Context, eventID string) (*EmailTemplate, error)
	Save(ctx context.Context, t EmailTemplate) (*EmailTemplate, error)
	UploadLogo(ctx context.Context, dataURL string) (string, error)
}
