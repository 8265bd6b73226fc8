package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// NotificationPublicKey returns the VAPID public key browsers need to build
// a push subscription.
func (c *Client) NotificationPublicKey(ctx context.Context) (string, error) {
	var resp struct {
		PublicKey string `json:"publicKey"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications/public-key", nil, nil, "", &resp); err != nil {
		return "", err
	}
	return resp.PublicKey, nil
}

// SubscribeNotifications registers a browser push subscription. The
// subscription object is opaque to us; it passes through as-is.
func (c *Client) SubscribeNotifications(ctx context.Context, subscription json.RawMessage) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/subscribe", nil, subscription, "", nil)
}

// UnsubscribeNotifications removes a push subscription by its endpoint URL.
func (c *Client) UnsubscribeNotifications(ctx context.Context, endpoint string) error {
	body := map[string]string{"endpoint": endpoint}
	return c.do(ctx, http.MethodPost, "/api/notifications/unsubscribe", nil, body, "", nil)
}
