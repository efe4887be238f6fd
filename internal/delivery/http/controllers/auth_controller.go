package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "rsvpportal/internal/delivery/http/helpers"
	"rsvpportal/internal/domain"
)

// CredentialsRequest is the request body for POST /auth/signup and POST /auth/login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator. Format rules are applied by the auth service.
func (c CredentialsRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	if c.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// SessionResponse is returned after a successful login or signup.
type SessionResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"user"`
}

func newSessionResponse(token string, s domain.Session) SessionResponse {
	return SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		User:      domain.User{ID: s.UserID, Email: s.Email, Role: s.Role},
	}
}

// LogoutResponse is returned by POST /auth/logout.
type LogoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignUp godoc
// @Summary Sign up a new host
// @Description Creates the account on the RSVP API and logs in with the same credentials. Passwords need at least 6 characters, a letter, a number and a special character.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse "data contains the session token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: session_expired (account created, login failed)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, sess, err := c.Service.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrSignupLoginFailed) {
			h.WriteSessionExpired(w, "Account created but login failed. Please try logging in manually.")
			return
		}
		h.WriteErrorMessage(w, r, c.Logger, err, userMessageOr(err, "Signup failed"))
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, newSessionResponse(token, sess))
}

// Login godoc
// @Summary Log in
// @Description Authenticates against the RSVP API and returns a portal session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains the session token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, sess, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, userMessageOr(err, "Login failed"))
			return
		}
		h.WriteErrorMessage(w, r, c.Logger, err, userMessageOr(err, "Login failed"))
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, newSessionResponse(token, sess))
}

// Logout godoc
// @Summary Log out
// @Description Ends the session: both caches are cleared and the token is revoked.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data.logged_out is true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	c.Service.Logout(r.Context(), sess.ID)
	h.WriteJSONSuccess(w, http.StatusOK, LogoutResponse{LoggedOut: true})
}

// userMessageOr returns the user-facing message of err, or fallback when the
// remote API could not be reached or answered without a message.
func userMessageOr(err error, fallback string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, domain.ErrTransport) || errors.Is(err, domain.ErrUpstream) {
		return fallback
	}
	return domain.UserMessage(err)
}
