package api

import (
	"context"
	"net/http"
)

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact forwards a contact-form submission to the backend.
func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/api/contact", nil, msg, "", nil)
}
