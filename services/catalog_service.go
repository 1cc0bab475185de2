package services

import (
	"context"
	"encoding/json"
	"time"

	"checkout-service/models"
	"checkout-service/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const catalogCacheKey = "catalog:products"

// CatalogService serves the product listing. When a Redis client is
// provided the full listing is cached under a TTL; cache trouble always
// degrades to the database read.
type CatalogService struct {
	products repository.ProductRepository
	cache    *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// List returns products, optionally filtered by category.
func (s *CatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" {
		return products, nil
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *CatalogService) listAll(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var products []models.Product
			if err := json.Unmarshal(cached, &products); err == nil {
				return products, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		}
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return products, nil
}
