package repository

import (
	"context"
	"sort"

	"checkout-service/models"

	"gorm.io/gorm"
)

// ProductRepository defines the read-only catalog access used by the
// storefront and the checkout page.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]models.Product, error)
}

// GormProductRepository reads catalog rows in their raw shape and maps
// them through models.ProductFromRow, so tables migrated from older
// deployments (price/price_rupees, image_url/img columns) keep working.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new instance of GormProductRepository
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// ListAll returns all products ordered by sort_order. An empty table
// falls back to the static seed catalog so the storefront isn't blank.
func (r *GormProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Table("products").Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		out := make([]models.Product, len(models.StaticProducts))
		copy(out, models.StaticProducts)
		return out, nil
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, models.ProductFromRow(row))
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].SortOrder < products[j].SortOrder
	})
	return products, nil
}
