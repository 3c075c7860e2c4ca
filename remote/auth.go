package remote

import (
	"context"
	"net/http"

	"github.com/arvind407/EasyPickle/models"
)

// LoginResult is what the remote auth service returns on a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login exchanges credentials for a bearer token. Unauthenticated.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, "", http.MethodPost, "/auth/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account. Unauthenticated; the service returns no
// token — the new user logs in afterwards.
func (c *Client) Register(ctx context.Context, input models.RegisterInput) error {
	return c.do(ctx, "", http.MethodPost, "/auth/register", input, nil)
}
