package services

import (
	"errors"
	"strings"

	"rsvpportal/internal/domain"
)

// guestResponse checks a response form against the event and builds the
// submission. Companion and dietary fields only survive when they apply.
func guestResponse(form domain.ResponseForm, event domain.Event, requireEmail bool) (domain.GuestResponse, []string) {
	var msgs []string
	if form.Status != domain.RSVPGoing && form.Status != domain.RSVPNotGoing {
		msgs = append(msgs, "Please select whether you will attend")
	}
	name := strings.TrimSpace(form.GuestName)
	if name == "" {
		msgs = append(msgs, "Please enter your name")
	}
	email := strings.TrimSpace(form.GuestEmail)
	if requireEmail && !domain.EmailRegexp.MatchString(email) {
		msgs = append(msgs, "Please enter a valid email address")
	}

	resp := domain.GuestResponse{Status: form.Status, GuestName: name, GuestEmail: email}
	if form.Status == domain.RSVPGoing {
		if form.BringCompanion {
			if event.MaxCompanions() < 1 {
				msgs = append(msgs, "This event does not allow companions")
			}
			resp.Companions = 1
		}
		if !form.DietaryPreference.Valid() {
			msgs = append(msgs, "Invalid dietary preference")
		}
		resp.DietaryPreference = form.DietaryPreference
		if resp.Companions > 0 {
			if !form.CompanionDietaryPreference.Valid() {
				msgs = append(msgs, "Invalid companion dietary preference")
			}
			resp.CompanionDietaryPreference = form.CompanionDietaryPreference
		}
	}
	return resp, msgs
}

// apiMessage returns the remote API's message for err, or fallback when err
// did not come from an API response.
func apiMessage(err error, fallback string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
