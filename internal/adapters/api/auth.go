package api

import (
	"context"
	"net/http"

	"rsvpportal/internal/domain"
)

type authAPI struct {
	c *Client
}

// NewAuthAPI returns the remote credentials endpoints served by c.
func NewAuthAPI(c *Client) domain.AuthAPI {
	return &authAPI{c: c}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *authAPI) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	var out domain.LoginResult
	r := request{
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     credentials{Email: email, Password: password},
		public:   true,
		fallback: "Login failed",
	}
	if err := a.c.do(ctx, r, &out); err != nil {
		return domain.LoginResult{}, err
	}
	return out, nil
}

func (a *authAPI) Signup(ctx context.Context, email, password string) error {
	r := request{
		method:   http.MethodPost,
		path:     "/auth/signup",
		body:     credentials{Email: email, Password: password},
		public:   true,
		fallback: "Signup failed",
	}
	return a.c.do(ctx, r, nil)
}
