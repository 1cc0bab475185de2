package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"checkout-service/models"
	"checkout-service/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func testOrder(gatewayOrderID string) *models.Order {
	return &models.Order{
		ID:                uuid.New(),
		RazorpayOrderID:   gatewayOrderID,
		RazorpayPaymentID: "pay_abc123",
		RazorpaySignature: "deadbeef",
		ProductID:         "42",
		ProductName:       "Elegant Crochet Tote Bag",
		AmountPaise:       249900,
		Status:            models.StatusPaid,
	}
}

func TestInsert_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	order := testOrder("order_xyz789")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Insert(context.Background(), order)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DuplicateGatewayOrderID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_orders_razorpay_order_id"})
	mock.ExpectRollback()

	err := repo.Insert(context.Background(), testOrder("order_xyz789"))
	assert.ErrorIs(t, err, repository.ErrDuplicateOrder)
}

func TestInsert_TranslatedDuplicateError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Insert(context.Background(), testOrder("order_xyz789"))
	assert.ErrorIs(t, err, repository.ErrDuplicateOrder)
}

func TestInsert_EmptyGatewayOrderID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	err := repo.Insert(context.Background(), testOrder(""))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL should run for a missing gateway order id")
}

func TestInsert_OtherDBError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnError(&pgconn.PgError{Code: "53300", Message: "too many connections"})
	mock.ExpectRollback()

	err := repo.Insert(context.Background(), testOrder("order_xyz789"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateOrder)
}

func TestList_OrdersByCreatedAtDesc(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "razorpay_order_id", "razorpay_payment_id", "amount_paise", "status", "created_at"}).
		AddRow(uuid.New(), "order_b", "pay_b", 89900, models.StatusPaid, now).
		AddRow(uuid.New(), "order_a", "pay_a", 249900, models.StatusPaid, now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" ORDER BY created_at DESC LIMIT $1`)).
		WithArgs(2).
		WillReturnRows(rows)

	orders, err := repo.List(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "order_b", orders[0].RazorpayOrderID)
}

func TestList_ClampsLimit(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.List(context.Background(), -5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
