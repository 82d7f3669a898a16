package api

import (
	"context"

	"github.com/xavierca1/crm-console/internal/entity"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// Login exchanges credentials for a session. The auth endpoints return
// either {data: {token, user}} or the bare object; unwrap handles both.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var session entity.Session
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (*entity.Session, error) {
	var session entity.Session
	if err := c.post(ctx, "/auth/signup", signupRequest{Name: name, Email: email, Password: password}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) error {
	return c.post(ctx, "/auth/reset-password", resetPasswordRequest{Email: email, NewPassword: newPassword}, nil)
}
