package models

// Category is a named grouping applied to articles.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryInput is the payload sent to the backend on create/update.
type CategoryInput struct {
	Name string `json:"name"`
}
