package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

type blogDoc struct {
	ID             flexString `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	CreatedAt      string     `json:"createdAt"`
	CreatedAtSnake string     `json:"created_at"`
	UpdatedAt      string     `json:"updatedAt"`
	UpdatedAtSnake string     `json:"updated_at"`
}

func normalizeBlog(d *blogDoc) models.Blog {
	return models.Blog{
		ID:        string(d.ID),
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: firstNonEmpty(d.CreatedAt, d.CreatedAtSnake),
		UpdatedAt: firstNonEmpty(d.UpdatedAt, d.UpdatedAtSnake),
	}
}

// ListBlogs fetches one page of blogs, with the same pagination synthesis as
// article listings.
func (c *Client) ListBlogs(ctx context.Context, page, limit int, token string) (*models.PaginatedBlogs, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/blogs", query, nil, token, &raw); err != nil {
		return nil, err
	}
	items, pagination, err := decodeList(raw)
	if err != nil {
		return nil, fmt.Errorf("decode blog list: %w", err)
	}

	blogs := make([]models.Blog, 0, len(items))
	for _, item := range items {
		var doc blogDoc
		if err := json.Unmarshal(item, &doc); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		blogs = append(blogs, normalizeBlog(&doc))
	}

	result := &models.PaginatedBlogs{Items: blogs}
	if pagination != nil {
		result.Pagination = *pagination
	} else {
		result.Pagination = models.SinglePage(page, limit, len(blogs))
	}
	return result, nil
}

// Blogs fetches the full unpaginated blog list.
func (c *Client) Blogs(ctx context.Context, token string) ([]models.Blog, error) {
	page, err := c.ListBlogs(ctx, 0, 0, token)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetBlog fetches a single blog post by id.
func (c *Client) GetBlog(ctx context.Context, id, token string) (*models.Blog, error) {
	var doc blogDoc
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(id), nil, nil, token, &doc); err != nil {
		return nil, err
	}
	blog := normalizeBlog(&doc)
	return &blog, nil
}

// CreateBlog creates a blog post.
func (c *Client) CreateBlog(ctx context.Context, input models.BlogInput, token string) error {
	return c.do(ctx, http.MethodPost, "/api/blogs", nil, input, token, nil)
}

// UpdateBlog replaces a blog post's fields.
func (c *Client) UpdateBlog(ctx context.Context, id string, input models.BlogInput, token string) error {
	return c.do(ctx, http.MethodPut, "/api/blogs/"+url.PathEscape(id), nil, input, token, nil)
}

// DeleteBlog removes a blog post.
func (c *Client) DeleteBlog(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/blogs/"+url.PathEscape(id), nil, nil, token, nil)
}
