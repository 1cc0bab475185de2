package models

import "math"

// ProductCategory values accepted by the catalog.
var ValidCategories = []string{"bags", "flowers", "clothing", "baby", "home"}

const defaultProductImage = "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400&h=400&fit=crop"

// Product is the canonical catalog row. Earlier deployments stored prices
// and images under several column names (price_paise, price_rupees, price;
// image, image_url, img); ProductFromRow is the single place that legacy
// shape is mapped into this struct.
type Product struct {
	ID          string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Category    string `gorm:"type:varchar(32);not null;index" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(1024)" json:"image"`
	PricePaise  int64  `gorm:"not null" json:"price_paise"`
	InStock     bool   `gorm:"not null;default:true" json:"in_stock"`
	SortOrder   int    `gorm:"not null;default:0" json:"-"`
}

// ProductFromRow maps a raw catalog row, tolerating the legacy column
// variants, into the canonical Product.
func ProductFromRow(row map[string]interface{}) Product {
	p := Product{
		ID:          asString(row["id"]),
		Name:        asString(row["name"]),
		Category:    asString(row["category"]),
		Description: asString(row["description"]),
		Image:       asString(row["image"]),
		PricePaise:  paiseFromRow(row),
		InStock:     row["in_stock"] != false,
		SortOrder:   int(asInt64(row["sort_order"])),
	}

	if p.Image == "" {
		p.Image = asString(row["image_url"])
	}
	if p.Image == "" {
		p.Image = asString(row["img"])
	}
	if p.Image == "" {
		p.Image = defaultProductImage
	}

	if !isValidCategory(p.Category) {
		p.Category = "bags"
	}
	return p
}

// paiseFromRow resolves the charged price: price_paise wins, then
// rupee-denominated columns converted to paise.
func paiseFromRow(row map[string]interface{}) int64 {
	if paise := asInt64(row["price_paise"]); paise > 0 {
		return paise
	}
	rupees := asFloat64(row["price_rupees"])
	if rupees == 0 {
		rupees = asFloat64(row["price"])
	}
	if rupees > 0 {
		return int64(math.Round(rupees * 100))
	}
	return 0
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

// StaticProducts is the fallback catalog shown when the products table is
// empty, mirroring the storefront's seed listing.
var StaticProducts = []Product{
	{ID: "1", Name: "Elegant Crochet Tote Bag", Category: "bags", Description: "A spacious and stylish tote bag perfect for daily use. Handcrafted with premium yarn.", Image: defaultProductImage, PricePaise: 249900, InStock: true},
	{ID: "2", Name: "Delicate Rose Bouquet", Category: "flowers", Description: "Beautiful crochet roses that never wilt. Perfect as a gift or home decoration.", Image: "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?w=400&h=400&fit=crop", PricePaise: 89900, InStock: true},
	{ID: "3", Name: "Cozy Crochet Cardigan", Category: "clothing", Description: "Soft and warm cardigan made with love. Available in multiple sizes and colors.", Image: "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=400&h=400&fit=crop", PricePaise: 349900, InStock: true},
	{ID: "4", Name: "Baby Blanket Set", Category: "baby", Description: "Ultra-soft blanket and matching accessories for your little one. Hypoallergenic yarn.", Image: "https://images.unsplash.com/photo-1584464491033-06628f3a6b7b?w=400&h=400&fit=crop", PricePaise: 199900, InStock: true},
	{ID: "5", Name: "Boho Wall Hanging", Category: "home", Description: "Elegant macrame-inspired wall decor to add warmth to any room.", Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=400&fit=crop", PricePaise: 129900, InStock: true},
	{ID: "6", Name: "Chic Crossbody Bag", Category: "bags", Description: "Compact and fashionable crossbody bag with adjustable strap.", Image: "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=400&fit=crop", PricePaise: 179900, InStock: true},
}
