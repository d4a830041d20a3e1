package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Login exchanges credentials for a token pair and stores it in the
// session.
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	body, err := c.fetch(ctx, http.MethodPost, "/login", nil, creds)
	if err != nil {
		return err
	}

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(body, &pair); err != nil {
		return fmt.Errorf("api: decoding login response: %w", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		return fmt.Errorf("api: login response missing tokens")
	}
	return c.session.SetPair(pair.Access, pair.Refresh)
}

// Register creates a new user. The caller logs in afterwards.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	_, err := c.fetch(ctx, http.MethodPost, "/register", nil, reg)
	return err
}

// Logout blacklists the refresh token server-side, then clears the local
// session unconditionally. Even when the server call fails the tokens are
// gone locally.
func (c *Client) Logout(ctx context.Context) error {
	refresh := c.session.RefreshToken()
	var serverErr error
	if refresh != "" {
		_, serverErr = c.fetch(ctx, http.MethodPost, "/logout", nil, map[string]string{
			"refresh": refresh,
		})
	}
	if err := c.session.Clear(); err != nil {
		return err
	}
	return serverErr
}
