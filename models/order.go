package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Only StatusPaid is written by the checkout flow;
// the rest are reserved for admin tooling.
const (
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusRefunded  = "refunded"
)

// Order is the durable record of a verified payment. The unique index on
// razorpay_order_id is what makes repeated verify-payment calls idempotent;
// duplicate inserts are resolved by the database, not by application locks.
type Order struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RazorpayOrderID   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"razorpay_order_id"`
	RazorpayPaymentID string    `gorm:"type:varchar(64);not null" json:"razorpay_payment_id"`
	RazorpaySignature string    `gorm:"type:varchar(128);not null" json:"-"`
	ProductID         string    `gorm:"type:varchar(64);not null" json:"product_id"`
	ProductName       string    `gorm:"type:varchar(255);not null" json:"product_name"`
	AmountPaise       int64     `gorm:"not null" json:"amount_paise"`
	Quantity          int       `gorm:"not null;default:1" json:"quantity"`
	Status            string    `gorm:"type:varchar(20);not null" json:"status"`
	CustomerName      *string   `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
	CustomerEmail     *string   `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	CustomerPhone     *string   `gorm:"type:varchar(32)" json:"customer_phone,omitempty"`
	CustomerAddress   *string   `gorm:"type:text" json:"customer_address,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index:idx_orders_created_at,sort:desc" json:"created_at"`
}

// BeforeCreate assigns the primary key so rows created through any path
// get an ID without relying on a database default.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
