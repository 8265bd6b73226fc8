package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

type categoryDoc struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

// Categories fetches all categories.
func (c *Client) Categories(ctx context.Context, token string) ([]models.Category, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, token, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, fmt.Errorf("decode category list: %w", err)
	}
	categories := make([]models.Category, 0, len(items))
	for _, item := range items {
		var doc categoryDoc
		if err := json.Unmarshal(item, &doc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, models.Category{ID: string(doc.ID), Name: doc.Name})
	}
	return categories, nil
}

// CategoryNames returns the id-to-name map used to resolve article category
// names client-side.
func (c *Client) CategoryNames(ctx context.Context, token string) (map[string]string, error) {
	categories, err := c.Categories(ctx, token)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names, nil
}

// GetCategory fetches a single category by id.
func (c *Client) GetCategory(ctx context.Context, id, token string) (*models.Category, error) {
	var doc categoryDoc
	if err := c.do(ctx, http.MethodGet, "/api/categories/"+url.PathEscape(id), nil, nil, token, &doc); err != nil {
		return nil, err
	}
	return &models.Category{ID: string(doc.ID), Name: doc.Name}, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, input models.CategoryInput, token string) error {
	return c.do(ctx, http.MethodPost, "/api/categories", nil, input, token, nil)
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, input models.CategoryInput, token string) error {
	return c.do(ctx, http.MethodPut, "/api/categories/"+url.PathEscape(id), nil, input, token, nil)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, nil, token, nil)
}
