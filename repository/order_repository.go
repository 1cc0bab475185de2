package repository

import (
	"context"
	"errors"

	"checkout-service/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateOrder is returned when an order with the same gateway order
// id has already been recorded. Callers treat it as a success path: the
// client retried a confirmation that already went through.
var ErrDuplicateOrder = errors.New("order already recorded")

const pgUniqueViolation = "23505"

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	List(ctx context.Context, limit int) ([]models.Order, error)
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new instance of GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Insert persists a verified order. Uniqueness of the gateway order id is
// enforced by the database so concurrent or retried confirmations collapse
// into ErrDuplicateOrder.
func (r *GormOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if order.RazorpayOrderID == "" {
		return errors.New("razorpay order id is required")
	}

	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateOrder
		}
		return err
	}
	return nil
}

// List retrieves the most recent orders for the admin panel.
func (r *GormOrderRepository) List(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
