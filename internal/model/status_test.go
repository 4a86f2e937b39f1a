package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantAvailability(t *testing.T) {
	assert.True(t, ColorVariant{InStock: true, Stock: 1}.Available())
	// In-stock flag without units is not available
	assert.False(t, ColorVariant{InStock: true, Stock: 0}.Available())
	// Units without the in-stock flag are not available either
	assert.False(t, ColorVariant{InStock: false, Stock: 7}.Available())
}

func TestVariantStatus(t *testing.T) {
	tests := []struct {
		name      string
		variant   ColorVariant
		threshold int
		want      StockStatus
	}{
		{"plenty of stock", ColorVariant{InStock: true, Stock: 50}, 10, StockStatusIn},
		{"at threshold", ColorVariant{InStock: true, Stock: 10}, 10, StockStatusLow},
		{"below threshold", ColorVariant{InStock: true, Stock: 3}, 10, StockStatusLow},
		{"zero units", ColorVariant{InStock: true, Stock: 0}, 10, StockStatusOut},
		{"flagged out", ColorVariant{InStock: false, Stock: 20}, 10, StockStatusOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VariantStatus(tt.variant, tt.threshold))
		})
	}
}

func TestProductStatus(t *testing.T) {
	p := Product{Colors: []ColorVariant{
		{InStock: true, Stock: 3},
		{InStock: true, Stock: 15},
	}}
	assert.Equal(t, StockStatusLow, ProductStatus(p, 10))

	allOut := Product{Colors: []ColorVariant{
		{InStock: false, Stock: 0},
		{InStock: true, Stock: 0},
	}}
	assert.True(t, allOut.FullyOutOfStock())
	assert.Equal(t, StockStatusOut, ProductStatus(allOut, 10))

	healthy := Product{Colors: []ColorVariant{{InStock: true, Stock: 99}}}
	assert.Equal(t, StockStatusIn, ProductStatus(healthy, 10))
}

func TestStatusMappingsAreTotal(t *testing.T) {
	for _, s := range []StockStatus{StockStatusIn, StockStatusLow, StockStatusOut} {
		assert.NotEmpty(t, s.Label())
		assert.NotEmpty(t, s.StyleClass())
	}
	// Unknown values fall back instead of rendering blank badges
	assert.NotEmpty(t, StockStatus("BOGUS").Label())
	assert.NotEmpty(t, StockStatus("BOGUS").StyleClass())

	for _, l := range []NoticeLevel{NoticeSuccess, NoticeError, NoticeInfo} {
		assert.NotEmpty(t, l.StyleClass())
	}
	assert.NotEmpty(t, NoticeLevel("BOGUS").StyleClass())
}

func TestTotalUnits(t *testing.T) {
	p := Product{Colors: []ColorVariant{
		{InStock: true, Stock: 3},
		{InStock: false, Stock: 7}, // unavailable units still count
	}}
	assert.Equal(t, 10, p.TotalUnits())
}
