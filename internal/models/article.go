package models

import "strings"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

// Article is a lesson as rendered by the site, after the API client has
// normalized the backend's field aliases.
type Article struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Summary         string `json:"summary,omitempty"`
	Content         string `json:"content,omitempty"`
	Author          string `json:"author,omitempty"`
	AuthorAvatarURL string `json:"authorAvatarUrl,omitempty"`
	Status          string `json:"status,omitempty"`
	CategoryID      string `json:"category,omitempty"`
	CategoryName    string `json:"category_name,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
	PublishedAt     string `json:"publishedAt,omitempty"`
}

// Approved reports whether the article may appear on public pages.
func (a Article) Approved() bool {
	return strings.EqualFold(strings.TrimSpace(a.Status), StatusApproved)
}

// ApprovedOnly filters a list down to publicly visible articles.
func ApprovedOnly(articles []Article) []Article {
	approved := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Approved() {
			approved = append(approved, a)
		}
	}
	return approved
}

// ArticleInput is the payload sent to the backend on create/update.
type ArticleInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
