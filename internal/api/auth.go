package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// Login authenticates and records {user, role} from the response. On
// failure the server's error message is surfaced, with a generic
// fallback when the body carries none.
func (c *Client) Login(ctx context.Context, username, password string) (model.Session, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	var reply struct {
		User string     `json:"user"`
		Role model.Role `json:"role"`
	}
	if err := c.postJSON(ctx, "/login", body, &reply); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Message == "" {
			apiErr.Message = "login failed"
		}
		return model.Session{}, err
	}

	c.session = model.Session{User: reply.User, Role: reply.Role}
	return c.session, nil
}

// Logout ends the server session and drops the whole local one, cached
// role included.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.postJSON(ctx, "/logout", nil, nil); err != nil {
		return err
	}
	c.session = model.Session{}
	return nil
}

// Register creates an account. Username and password are validated
// non-empty before anything is sent.
func (c *Client) Register(ctx context.Context, username, password, email string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}{username, password, email}

	return c.postJSON(ctx, "/register", body, nil)
}

// ResetGrant is the in-band reset token the server hands back when it
// cannot (or will not) email it. That contract belongs to the backend.
type ResetGrant struct {
	Token  string `json:"token"`
	Expiry string `json:"expiry"`
}

// RequestPasswordReset asks for a reset token for username.
func (c *Client) RequestPasswordReset(ctx context.Context, username string) (*ResetGrant, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	body := struct {
		Username string `json:"username"`
	}{username}

	var grant ResetGrant
	if err := c.postJSON(ctx, "/reset-request", body, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// CompletePasswordReset redeems a reset token for a new password.
func (c *Client) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("token and new password are required")
	}

	body := struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{token, newPassword}

	return c.postJSON(ctx, "/reset", body, nil)
}
