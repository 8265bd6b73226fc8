package api

import (
	"context"
	"net/http"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

// Profile fetches the logged-in user's profile.
func (c *Client) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, nil, token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile saves the profile form, including an optional password
// change when both password fields are set.
func (c *Client) UpdateProfile(ctx context.Context, input models.ProfileInput, token string) error {
	return c.do(ctx, http.MethodPut, "/api/profile", nil, input, token, nil)
}

// DeleteAccount permanently removes the logged-in account. Callers must have
// collected the confirmation inputs before this is reached.
func (c *Client) DeleteAccount(ctx context.Context, currentPassword, token string) error {
	body := map[string]string{"currentPassword": currentPassword}
	return c.do(ctx, http.MethodDelete, "/api/profile", nil, body, token, nil)
}
