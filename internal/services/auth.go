package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"rsvpportal/internal/domain"
)

const minPasswordLen = 6

var (
	letterRegexp  = regexp.MustCompile(`[a-zA-Z]`)
	digitRegexp   = regexp.MustCompile(`\d`)
	specialRegexp = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

type authService struct {
	api      domain.AuthAPI
	issuer   domain.SessionIssuer
	sessions domain.Workspaces
	expiry   time.Duration
	newID    func() string
	now      func() time.Time
}

// NewAuthService creates an AuthService that authenticates against the remote
// API and issues portal sessions valid for expiry.
func NewAuthService(api domain.AuthAPI, issuer domain.SessionIssuer, sessions domain.Workspaces, expiry time.Duration) domain.AuthService {
	return &authService{
		api:      api,
		issuer:   issuer,
		sessions: sessions,
		expiry:   expiry,
		newID:    NewSessionID,
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Login(ctx context.Context, email, password string) (string, domain.Session, error) {
	email = normalizeEmail(email)
	var msgs []string
	if !domain.EmailRegexp.MatchString(email) {
		msgs = append(msgs, "Please enter a valid email address")
	}
	if len(password) < minPasswordLen {
		msgs = append(msgs, fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}
	if err := domain.NewValidationError(msgs); err != nil {
		return "", domain.Session{}, err
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("login failed: %w", err)
	}
	sess := domain.Session{
		ID:          s.newID(),
		UserID:      res.User.ID,
		Email:       res.User.Email,
		Role:        res.User.Role,
		AccessToken: res.Token,
		ExpiresAt:   s.now().Add(s.expiry),
	}
	token, err := s.issuer.Issue(sess, s.expiry)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("failed to issue session: %w", err)
	}
	return token, sess, nil
}

// Signup creates the account and logs in with the same credentials.
func (s *authService) Signup(ctx context.Context, email, password string) (string, domain.Session, error) {
	email = normalizeEmail(email)
	var msgs []string
	if !domain.EmailRegexp.MatchString(email) {
		msgs = append(msgs, "Please enter a valid email address")
	}
	if msg := passwordProblem(password); msg != "" {
		msgs = append(msgs, msg)
	}
	if err := domain.NewValidationError(msgs); err != nil {
		return "", domain.Session{}, err
	}

	if err := s.api.Signup(ctx, email, password); err != nil {
		return "", domain.Session{}, fmt.Errorf("signup failed: %w", err)
	}
	token, sess, err := s.Login(ctx, email, password)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("%w: %w", domain.ErrSignupLoginFailed, err)
	}
	return token, sess, nil
}

func passwordProblem(pwd string) string {
	switch {
	case len(pwd) < minPasswordLen:
		return fmt.Sprintf("Password must be at least %d characters", minPasswordLen)
	case !letterRegexp.MatchString(pwd):
		return "Password must contain at least 1 letter"
	case !digitRegexp.MatchString(pwd):
		return "Password must contain at least 1 number"
	case !specialRegexp.MatchString(pwd):
		return "Password must contain at least 1 special character"
	}
	return ""
}

func (s *authService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Terminate(ctx, sessionID)
}
