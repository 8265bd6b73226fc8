package api

import (
	"context"
	"net/http"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. The backend's error
// message passes through unmodified for the login form.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, credentials{Username: username, Password: password}, "", &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &Error{Status: http.StatusOK, Message: "Login successful, but no token received."}
	}
	return resp.Token, nil
}

// RegisterEditor creates an editor account. Reserved for admins; the remote
// API enforces that.
func (c *Client) RegisterEditor(ctx context.Context, username, password, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register-editor", nil, credentials{Username: username, Password: password}, token, nil)
}
