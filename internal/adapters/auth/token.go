package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rsvpportal/internal/domain"
)

const issuerName = "rsvpportal"

type sessionClaims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"uat"`
}

type jwtSessions struct {
	secret []byte
}

// SessionTokens issues and verifies portal session tokens.
type SessionTokens interface {
	domain.SessionIssuer
	domain.SessionVerifier
}

// NewJWTSessions returns session tokens signed with HS256 using secret. The
// session ID travels as the token ID and the user ID as the subject.
func NewJWTSessions(secret string) SessionTokens {
	return &jwtSessions{secret: []byte(secret)}
}

func (j *jwtSessions) Issue(s domain.Session, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   s.UserID,
			Issuer:    issuerName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email:       s.Email,
		Role:        s.Role,
		AccessToken: s.AccessToken,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *jwtSessions) Verify(tokenString string) (domain.Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errors.New("token missing session claims"))
	}
	s := domain.Session{
		ID:          claims.ID,
		UserID:      claims.Subject,
		Email:       claims.Email,
		Role:        claims.Role,
		AccessToken: claims.AccessToken,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
