package api

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the gateway's answer to a successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// RegisterProfile is the payload for creating a portal user account.
type RegisterProfile struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// MessageResponse is a bare confirmation from the gateway.
type MessageResponse struct {
	Message string `json:"message"`
}

// Login exchanges a username/password pair for a bearer credential.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new portal user. It never logs the new user in;
// a separate Login call is required afterwards.
func (c *Client) Register(ctx context.Context, profile RegisterProfile) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", profile, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
