package api

import (
	"context"
	"fmt"
	"net/http"
)

// CreateProductRequest is the payload for creating a product
type CreateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// ListProducts returns all products
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product by id
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// CreateProduct creates a product and returns it with its assigned id
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products/", req, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a product by id
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
