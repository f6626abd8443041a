package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an advertised product the dashboard manages
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Creative is one ad variant for a product
type Creative struct {
	ID          int    `json:"id"`
	ProductID   int    `json:"product_id"`
	ImageURL    string `json:"image_url"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

// ABTest pits a product's creatives against each other
type ABTest struct {
	ID         int        `json:"id"`
	ProductID  int        `json:"product_id"`
	VariantIDs []int      `json:"variant_ids"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Status     string     `json:"status,omitempty"`
}

// PerformanceRecord is one logged observation for a test variant
type PerformanceRecord struct {
	ID          int       `json:"id"`
	TestID      int       `json:"test_id"`
	VariantID   int       `json:"variant_id"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Timestamp   time.Time `json:"timestamp"`
}

// CTR returns clicks over impressions as an exact ratio, zero when the
// record has no impressions
func (p PerformanceRecord) CTR() decimal.Decimal {
	if p.Impressions == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.Clicks)).
		Div(decimal.NewFromInt(int64(p.Impressions)))
}

// ConversionRate returns conversions over clicks as an exact ratio, zero
// when the record has no clicks
func (p PerformanceRecord) ConversionRate() decimal.Decimal {
	if p.Clicks == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.Conversions)).
		Div(decimal.NewFromInt(int64(p.Clicks)))
}
