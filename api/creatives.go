package api

import (
	"context"
	"net/http"
)

// CreateCreativeRequest is the payload for creating an ad variant
type CreateCreativeRequest struct {
	ProductID   int    `json:"product_id"`
	ImageURL    string `json:"image_url"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

// ListCreatives returns all creatives
func (c *Client) ListCreatives(ctx context.Context) ([]Creative, error) {
	var creatives []Creative
	if err := c.do(ctx, http.MethodGet, "/creatives/", nil, &creatives); err != nil {
		return nil, err
	}
	return creatives, nil
}

// CreateCreative creates an ad variant and returns it with its assigned id
func (c *Client) CreateCreative(ctx context.Context, req CreateCreativeRequest) (Creative, error) {
	var creative Creative
	if err := c.do(ctx, http.MethodPost, "/creatives/", req, &creative); err != nil {
		return Creative{}, err
	}
	return creative, nil
}
