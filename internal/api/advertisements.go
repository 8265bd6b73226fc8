package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yateeshchaturvedi/News-Blog-UI/internal/models"
)

// The deployed backend's advertisement route name is uncertain, so every
// operation walks the ordered candidate paths and the first non-404 answer
// wins.
func (c *Client) tryAdPaths(ctx context.Context, method, suffix string, body any, token string, out any) error {
	var lastErr error
	for _, base := range c.adPaths {
		err := c.do(ctx, method, base+suffix, nil, body, token, out)
		if err == nil {
			return nil
		}
		if !IsNotFound(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

type adDoc struct {
	ID        flexString `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	LinkURL   string     `json:"linkUrl"`
	Placement string     `json:"placement"`
	IsActive  *bool      `json:"isActive"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

func normalizeAd(d *adDoc) models.Advertisement {
	return models.Advertisement{
		ID:        string(d.ID),
		Title:     d.Title,
		ImageURL:  d.ImageURL,
		LinkURL:   d.LinkURL,
		Placement: d.Placement,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Advertisements fetches all advertisements.
func (c *Client) Advertisements(ctx context.Context, token string) ([]models.Advertisement, error) {
	var raw json.RawMessage
	if err := c.tryAdPaths(ctx, http.MethodGet, "", nil, token, &raw); err != nil {
		return nil, err
	}
	items, _, err := decodeList(raw)
	if err != nil {
		return nil, fmt.Errorf("decode advertisement list: %w", err)
	}
	ads := make([]models.Advertisement, 0, len(items))
	for _, item := range items {
		var doc adDoc
		if err := json.Unmarshal(item, &doc); err != nil {
			return nil, fmt.Errorf("decode advertisement: %w", err)
		}
		ads = append(ads, normalizeAd(&doc))
	}
	return ads, nil
}

// GetAdvertisement fetches a single advertisement by id.
func (c *Client) GetAdvertisement(ctx context.Context, id, token string) (*models.Advertisement, error) {
	var doc adDoc
	if err := c.tryAdPaths(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, token, &doc); err != nil {
		return nil, err
	}
	ad := normalizeAd(&doc)
	return &ad, nil
}

// CreateAdvertisement creates an advertisement.
func (c *Client) CreateAdvertisement(ctx context.Context, input models.AdvertisementInput, token string) error {
	return c.tryAdPaths(ctx, http.MethodPost, "", input, token, nil)
}

// UpdateAdvertisement replaces an advertisement's fields.
func (c *Client) UpdateAdvertisement(ctx context.Context, id string, input models.AdvertisementInput, token string) error {
	return c.tryAdPaths(ctx, http.MethodPut, "/"+url.PathEscape(id), input, token, nil)
}

// DeleteAdvertisement removes an advertisement.
func (c *Client) DeleteAdvertisement(ctx context.Context, id, token string) error {
	return c.tryAdPaths(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, token, nil)
}
