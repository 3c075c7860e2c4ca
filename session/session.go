// Package session derives the caller's identity and edit permission from the
// bearer token issued by the remote auth service. The token is decoded, not
// verified: the remote API is the verifying authority and rejects forged
// tokens on every request, so the console only mirrors what the token claims
// in order to shape the view. Any doubt resolves to read-only.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrMissingToken = errors.New("no bearer token supplied")
	ErrInvalidToken = errors.New("bearer token is malformed")
	ErrTokenExpired = errors.New("bearer token has expired")
)

// Roles that may edit scores and mutate league records.
const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
)

// Session is one authenticated caller, reconstructed per request from the
// bearer token. The console keeps no session state of its own.
type Session struct {
	Token    string
	UserID   string
	Username string
	Role     string
}

// FromToken decodes the token payload and builds a Session. The clock is
// injectable for tests; pass time.Now in production code.
func FromToken(token string, now func() time.Time) (*Session, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}

	if exp, ok := claims["exp"].(float64); ok {
		if now().After(time.Unix(int64(exp), 0)) {
			return nil, ErrTokenExpired
		}
	}

	return &Session{
		Token:    token,
		UserID:   firstClaim(claims, "user_id", "userId", "sub"),
		Username: firstClaim(claims, "username", "name"),
		Role:     firstClaim(claims, "role", "userRole"),
	}, nil
}

// CanEditScores answers the permission query for the scoring screen. A nil
// session (unparseable or absent token) is read-only.
func (s *Session) CanEditScores() bool {
	if s == nil {
		return false
	}
	return s.Role == RoleAdmin || s.Role == RoleOrganizer
}

// IsAdmin gates the console's mutating CRUD routes.
func (s *Session) IsAdmin() bool {
	return s.CanEditScores()
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
