package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

// flexString tolerates backend fields that arrive as strings or numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// articleDoc mirrors the backend's article JSON with every alias the
// deployed API has been seen to use.
type articleDoc struct {
	ID              flexString `json:"id"`
	Title           string     `json:"title"`
	Summary         string     `json:"summary"`
	Content         string     `json:"content"`
	FullContent     string     `json:"full_content"`
	Author          string     `json:"author"`
	AuthorName      string     `json:"author_name"`
	CreatedBy       string     `json:"created_by"`
	User            *userDoc   `json:"user"`
	UserID          flexString `json:"user_id"`
	AuthorAvatarURL string     `json:"authorAvatarUrl"`
	Status          string     `json:"status"`
	Category        flexString `json:"category"`
	CategoryID      flexString `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	ImageURL        string     `json:"imageUrl"`
	ImageURLSnake   string     `json:"image_url"`
	Image           string     `json:"image"`
	CreatedAt       string     `json:"created_at"`
	CreatedAtCamel  string     `json:"createdAt"`
	UpdatedAt       string     `json:"updated_at"`
	UpdatedAtCamel  string     `json:"updatedAt"`
	PublishedAt     string     `json:"publishedAt"`
}

type userDoc struct {
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// authorRules is the ordered author extraction chain. The first rule
// yielding a non-empty value wins; the terminal fallback is "Unknown".
var authorRules = []func(d *articleDoc) string{
	func(d *articleDoc) string { return d.Author },
	func(d *articleDoc) string { return d.AuthorName },
	func(d *articleDoc) string { return d.CreatedBy },
	func(d *articleDoc) string {
		if d.User == nil {
			return ""
		}
		return d.User.FullName
	},
	func(d *articleDoc) string {
		if d.User == nil {
			return ""
		}
		return d.User.Name
	},
	func(d *articleDoc) string {
		if d.User == nil {
			return ""
		}
		return d.User.Username
	},
	func(d *articleDoc) string {
		if d.UserID == "" {
			return ""
		}
		return "Author #" + string(d.UserID)
	},
}

func resolveAuthor(d *articleDoc) string {
	for _, rule := range authorRules {
		if v := strings.TrimSpace(rule(d)); v != "" {
			return v
		}
	}
	return "Unknown"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// normalizeArticle maps a backend document onto the stable Article shape.
// The category name comes from the names lookup, defaulting to "general".
func normalizeArticle(d *articleDoc, categoryNames map[string]string) models.Article {
	categoryID := string(firstNonEmptyFlex(d.Category, d.CategoryID))
	name := d.CategoryName
	if name == "" {
		name = categoryNames[categoryID]
	}
	if name == "" {
		name = "general"
	}

	return models.Article{
		ID:              string(d.ID),
		Title:           d.Title,
		Summary:         d.Summary,
		Content:         firstNonEmpty(d.FullContent, d.Content),
		Author:          resolveAuthor(d),
		AuthorAvatarURL: d.AuthorAvatarURL,
		Status:          d.Status,
		CategoryID:      categoryID,
		CategoryName:    name,
		ImageURL:        firstNonEmpty(d.ImageURL, d.ImageURLSnake, d.Image),
		CreatedAt:       firstNonEmpty(d.CreatedAt, d.CreatedAtCamel),
		UpdatedAt:       firstNonEmpty(d.UpdatedAt, d.UpdatedAtCamel),
		PublishedAt:     d.PublishedAt,
	}
}

func firstNonEmptyFlex(values ...flexString) flexString {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// listEnvelope accepts either a bare JSON array or an {items, pagination}
// wrapper (the backend has shipped both).
type listEnvelope struct {
	Items      []json.RawMessage      `json:"items"`
	Data       []json.RawMessage      `json:"data"`
	Pagination *models.PaginationMeta `json:"pagination"`
}

func decodeList(raw json.RawMessage) (items []json.RawMessage, pagination *models.PaginationMeta, err error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, nil, err
		}
		return items, nil, nil
	}
	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, err
	}
	if env.Items == nil {
		env.Items = env.Data
	}
	return env.Items, env.Pagination, nil
}

// ListOptions filters a paginated article listing. Zero values mean "no
// filter"; the backend then returns everything.
type ListOptions struct {
	Page   int
	Limit  int
	Status string
}

// ListArticles fetches one page of articles, normalized and with category
// names resolved. When the backend omits pagination metadata, a single page
// holding every returned item is synthesized.
func (c *Client) ListArticles(ctx context.Context, opts ListOptions, token string) (*models.PaginatedArticles, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/news", query, nil, token, &raw); err != nil {
		return nil, err
	}

	items, pagination, err := decodeList(raw)
	if err != nil {
		return nil, fmt.Errorf("decode article list: %w", err)
	}

	// A failed category lookup must not fail the article fetch; articles
	// then fall back to the "general" category name.
	names, err := c.CategoryNames(ctx, token)
	if err != nil {
		c.log.Debug().Err(err).Msg("category lookup failed, using fallback names")
		names = nil
	}

	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		var doc articleDoc
		if err := json.Unmarshal(item, &doc); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		articles = append(articles, normalizeArticle(&doc, names))
	}

	result := &models.PaginatedArticles{Items: articles}
	if pagination != nil {
		result.Pagination = *pagination
	} else {
		result.Pagination = models.SinglePage(opts.Page, opts.Limit, len(articles))
	}
	return result, nil
}

// Articles fetches the full unpaginated article list.
func (c *Client) Articles(ctx context.Context, token string) ([]models.Article, error) {
	page, err := c.ListArticles(ctx, ListOptions{}, token)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetArticle fetches a single article by id.
func (c *Client) GetArticle(ctx context.Context, id, token string) (*models.Article, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/news/"+url.PathEscape(id), nil, nil, token, &raw); err != nil {
		return nil, err
	}
	var doc articleDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	names, err := c.CategoryNames(ctx, token)
	if err != nil {
		names = nil
	}
	article := normalizeArticle(&doc, names)
	return &article, nil
}

// CreateArticle creates an article. The backend defaults new articles to
// PENDING status.
func (c *Client) CreateArticle(ctx context.Context, input models.ArticleInput, token string) error {
	return c.do(ctx, http.MethodPost, "/api/news", nil, input, token, nil)
}

// UpdateArticle replaces an article's editable fields.
func (c *Client) UpdateArticle(ctx context.Context, id string, input models.ArticleInput, token string) error {
	return c.do(ctx, http.MethodPut, "/api/news/"+url.PathEscape(id), nil, input, token, nil)
}

// DeleteArticle removes an article.
func (c *Client) DeleteArticle(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/news/"+url.PathEscape(id), nil, nil, token, nil)
}

// SetArticleStatus flips the approval status through the narrow status
// endpoint rather than a full update.
func (c *Client) SetArticleStatus(ctx context.Context, id, status, token string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/api/news/"+url.PathEscape(id)+"/status", nil, body, token, nil)
}
