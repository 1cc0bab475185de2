package models

import "time"

// OrderEvent is the payload published to SNS after an order is recorded.
type OrderEvent struct {
	Type            string    `json:"type"`
	OrderID         string    `json:"order_id"`
	RazorpayOrderID string    `json:"razorpay_order_id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	AmountPaise     int64     `json:"amount_paise"`
	Currency        string    `json:"currency"`
	Timestamp       time.Time `json:"timestamp"`
}

// Event types published by the checkout flow.
const EventOrderPaid = "order_paid"
