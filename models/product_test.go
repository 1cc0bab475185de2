package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFromRow_CanonicalColumns(t *testing.T) {
	p := ProductFromRow(map[string]interface{}{
		"id":          "42",
		"name":        "Elegant Crochet Tote Bag",
		"category":    "bags",
		"description": "Handcrafted tote",
		"image":       "https://cdn.example.test/tote.jpg",
		"price_paise": int64(249900),
		"in_stock":    true,
		"sort_order":  int64(3),
	})

	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "bags", p.Category)
	assert.Equal(t, int64(249900), p.PricePaise)
	assert.Equal(t, "https://cdn.example.test/tote.jpg", p.Image)
	assert.True(t, p.InStock)
	assert.Equal(t, 3, p.SortOrder)
}

func TestProductFromRow_LegacyPriceColumns(t *testing.T) {
	tests := []struct {
		name string
		row  map[string]interface{}
		want int64
	}{
		{"price_paise wins", map[string]interface{}{"price_paise": int64(249900), "price": float64(99)}, 249900},
		{"price_rupees converted", map[string]interface{}{"price_rupees": float64(2499)}, 249900},
		{"price converted", map[string]interface{}{"price": float64(899.5)}, 89950},
		{"numeric driver float", map[string]interface{}{"price_paise": float64(129900)}, 129900},
		{"nothing set", map[string]interface{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductFromRow(tt.row).PricePaise)
		})
	}
}

func TestProductFromRow_LegacyImageColumns(t *testing.T) {
	assert.Equal(t, "https://a.test/1.jpg",
		ProductFromRow(map[string]interface{}{"image_url": "https://a.test/1.jpg"}).Image)
	assert.Equal(t, "https://a.test/2.jpg",
		ProductFromRow(map[string]interface{}{"img": "https://a.test/2.jpg"}).Image)

	// Missing image falls back to the default.
	assert.NotEmpty(t, ProductFromRow(map[string]interface{}{}).Image)
}

func TestProductFromRow_InvalidCategory(t *testing.T) {
	p := ProductFromRow(map[string]interface{}{"category": "gadgets"})
	assert.Equal(t, "bags", p.Category)
}

func TestProductFromRow_InStockDefaultsTrue(t *testing.T) {
	assert.True(t, ProductFromRow(map[string]interface{}{}).InStock)
	assert.False(t, ProductFromRow(map[string]interface{}{"in_stock": false}).InStock)
}
