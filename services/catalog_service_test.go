package services

import (
	"context"
	"errors"
	"testing"

	"checkout-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	products []models.Product
	err      error
	calls    int
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	r.calls++
	return r.products, r.err
}

func TestCatalogList_All(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{
		{ID: "1", Name: "Tote", Category: "bags", PricePaise: 249900},
		{ID: "2", Name: "Roses", Category: "flowers", PricePaise: 89900},
	}}
	svc := NewCatalogService(repo, nil, 0, zap.NewNop())

	products, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogList_FilterByCategory(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{
		{ID: "1", Category: "bags"},
		{ID: "2", Category: "flowers"},
		{ID: "3", Category: "bags"},
	}}
	svc := NewCatalogService(repo, nil, 0, zap.NewNop())

	products, err := svc.List(context.Background(), "bags")
	require.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "bags", p.Category)
	}
}

func TestCatalogList_RepoError(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("connection refused")}
	svc := NewCatalogService(repo, nil, 0, zap.NewNop())

	_, err := svc.List(context.Background(), "")
	assert.Error(t, err)
}
