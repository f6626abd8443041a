package api

import (
	"context"
	"net/http"
)

// CreateABTestRequest is the payload for starting an A/B test
type CreateABTestRequest struct {
	ProductID  int   `json:"product_id"`
	VariantIDs []int `json:"variant_ids"`
}

// ListABTests returns all A/B tests
func (c *Client) ListABTests(ctx context.Context) ([]ABTest, error) {
	var tests []ABTest
	if err := c.do(ctx, http.MethodGet, "/tests/", nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// CreateABTest starts an A/B test and returns it with its assigned id
func (c *Client) CreateABTest(ctx context.Context, req CreateABTestRequest) (ABTest, error) {
	var test ABTest
	if err := c.do(ctx, http.MethodPost, "/tests/", req, &test); err != nil {
		return ABTest{}, err
	}
	return test, nil
}
