//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"gaya-booking/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	catalog := map[string]int64{
		"breakfast": 500,
		"parking":   1200,
	}

	tests := []struct {
		name       string
		basePrice  int64
		addonIDs   []string
		protection bool
		expected   pricing.Breakdown
	}{
		{
			name:      "base only",
			basePrice: 10000,
			expected: pricing.Breakdown{
				Base:    10000,
				Tax:     1200,
				Service: 2500,
				Total:   13700,
			},
		},
		{
			name:      "base with one addon",
			basePrice: 10000,
			addonIDs:  []string{"breakfast"},
			expected: pricing.Breakdown{
				Base:    10000,
				Addons:  500,
				Tax:     1260,
				Service: 2500,
				Total:   14260,
			},
		},
		{
			name:       "base with addon and protection",
			basePrice:  10000,
			addonIDs:   []string{"breakfast"},
			protection: true,
			expected: pricing.Breakdown{
				Base:       10000,
				Addons:     500,
				Tax:        1260,
				Service:    2500,
				Protection: 1500,
				Total:      15760,
			},
		},
		{
			name:      "unknown addon ids contribute nothing",
			basePrice: 10000,
			addonIDs:  []string{"breakfast", "minibar", "spa"},
			expected: pricing.Breakdown{
				Base:    10000,
				Addons:  500,
				Tax:     1260,
				Service: 2500,
				Total:   14260,
			},
		},
		{
			name:      "multiple addons sum",
			basePrice: 20000,
			addonIDs:  []string{"breakfast", "parking"},
			expected: pricing.Breakdown{
				Base:    20000,
				Addons:  1700,
				Tax:     2604,
				Service: 2500,
				Total:   26804,
			},
		},
		{
			name:      "zero base still carries the service fee",
			basePrice: 0,
			expected: pricing.Breakdown{
				Service: 2500,
				Total:   2500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := pricing.Calculate(tt.basePrice, tt.addonIDs, catalog, tt.protection)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateTaxRounding(t *testing.T) {
	// 12% of 21 is 2.52, which rounds up to 3; 12% of 12 is 1.44, down to 1.
	tests := []struct {
		subtotal int64
		tax      int64
	}{
		{subtotal: 12, tax: 1},
		{subtotal: 21, tax: 3},
		{subtotal: 25, tax: 3},
		{subtotal: 100, tax: 12},
		{subtotal: 104, tax: 12}, // 12.48 rounds down
		{subtotal: 105, tax: 13}, // 12.60 rounds up
	}

	for _, tt := range tests {
		actual := pricing.Calculate(tt.subtotal, nil, nil, false)
		assert.Equal(t, tt.tax, actual.Tax, "subtotal %d", tt.subtotal)
	}
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int64
	}{
		{name: "two nights", start: day(1), end: day(3), expected: 2},
		{name: "single night", start: day(1), end: day(2), expected: 1},
		{name: "same day bills one night", start: day(1), end: day(1), expected: 1},
		{name: "inverted range bills one night", start: day(3), end: day(1), expected: 1},
		{name: "partial day rounds up", start: day(1), end: day(2).Add(6 * time.Hour), expected: 2},
		{name: "full week", start: day(1), end: day(8), expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pricing.Nights(tt.start, tt.end))
		})
	}
}
