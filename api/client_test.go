package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitwing/splitwing/api"
	"github.com/splitwing/splitwing/core"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestBearerHeaderAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer h.p.s", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]api.Product{{ID: 1, Title: "Widget"}})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens("h.p.s"))

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Title)
}

func TestNoBearerHeaderWhenAnonymous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]api.Product{})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens(""))

	_, err := client.ListProducts(context.Background())
	assert.NoError(t, err)
}

func TestUnauthorizedInvokesHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	hookCalled := false
	client := api.NewClient(server.URL, staticTokens("stale.token.sig")).
		OnUnauthorized(func(ctx context.Context) { hookCalled = true })

	_, err := client.ListProducts(context.Background())
	assert.ErrorIs(t, err, core.ErrUnauthorized)
	assert.True(t, hookCalled)
}

func TestCreateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/", r.URL.Path)

		var req api.CreateProductRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(api.Product{
			ID:          7,
			Title:       req.Title,
			Description: req.Description,
			Images:      req.Images,
		})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens("h.p.s"))

	product, err := client.CreateProduct(context.Background(), api.CreateProductRequest{
		Title:       "Widget",
		Description: "A widget",
		Images:      []string{"https://img.example/widget.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, product.ID)
	assert.Equal(t, "Widget", product.Title)
}

func TestPerformanceByTest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/performance/test/3", r.URL.Path)
		json.NewEncoder(w).Encode([]api.PerformanceRecord{
			{ID: 1, TestID: 3, VariantID: 10, Impressions: 400, Clicks: 100, Conversions: 25},
		})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens("h.p.s"))

	records, err := client.PerformanceByTest(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 10, records[0].VariantID)
}

func TestPerformanceRates(t *testing.T) {
	record := api.PerformanceRecord{Impressions: 400, Clicks: 100, Conversions: 25}

	assert.Equal(t, "0.25", record.CTR().String())
	assert.Equal(t, "0.25", record.ConversionRate().String())
}

func TestPerformanceRatesZeroDenominator(t *testing.T) {
	record := api.PerformanceRecord{}

	assert.True(t, record.CTR().IsZero())
	assert.True(t, record.ConversionRate().IsZero())
}
