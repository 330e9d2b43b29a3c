package api

import (
	"context"
	"fmt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.postJSON(ctx, "/api/v1/auth/login", loginRequest{Email: email, Password: password}, &resp, "login")
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token in response")
	}
	return resp.AccessToken, nil
}

// Register creates a new account. The backend does not sign the user in;
// a separate Login follows.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.postJSON(ctx, "/api/v1/auth/register", loginRequest{Email: email, Password: password}, nil, "register")
}
