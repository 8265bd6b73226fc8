package models

// Blog is a standalone post, independent of the article approval workflow.
type Blog struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// BlogInput is the payload sent to the backend on create/update.
type BlogInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
