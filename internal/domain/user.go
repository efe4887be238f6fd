package domain

import "context"

// User is the host account as reported by the remote auth endpoint.
// swagger:model User
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResult is the remote login response: the account and its access token.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AuthAPI is the remote credentials endpoint set.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Signup(ctx context.Context, email, password string) error
}

// AuthService defines login, signup and logout for the portal.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, s Session, err error)
	Signup(ctx context.Context, email, password string) (token string, s Session, err error)
	Logout(ctx context.Context, sessionID string)
}
