package api

import (
	"context"
	"fmt"
	"net/http"
)

// PerformanceByTest returns the logged records for one A/B test
func (c *Client) PerformanceByTest(ctx context.Context, testID int) ([]PerformanceRecord, error) {
	var records []PerformanceRecord
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/performance/test/%d", testID), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SimulatePerformance asks the server to generate synthetic records for
// every variant of a test, and returns them
func (c *Client) SimulatePerformance(ctx context.Context, testID int) ([]PerformanceRecord, error) {
	var records []PerformanceRecord
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/performance/simulate/%d", testID), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
