package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"checkout-service/apperrors"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// Razorpay rejects receipts longer than 40 characters.
const (
	receiptPrefix  = "cr_"
	receiptSeedMax = 32
)

// PaymentOrder is the gateway-side payment intent returned to the client.
// Nothing is persisted locally at this stage.
type PaymentOrder struct {
	OrderID     string
	AmountPaise int64
	Currency    string
}

// PaymentGateway creates pending payment orders with the payment provider.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receiptSeed, productName string) (*PaymentOrder, error)
}

// RazorpayService wraps the Razorpay Orders API.
type RazorpayService struct {
	keyID     string
	keySecret string
	minPaise  int64
	logger    *zap.Logger
}

func NewRazorpayService(keyID, keySecret string, minPaise int64, logger *zap.Logger) *RazorpayService {
	return &RazorpayService{
		keyID:     keyID,
		keySecret: keySecret,
		minPaise:  minPaise,
		logger:    logger,
	}
}

// CreateOrder registers a pending payment order with Razorpay. It does not
// charge the customer. Provider failures are not retried here: the order
// may or may not exist remotely, so the error is surfaced to the client
// and a fresh checkout attempt creates a fresh order.
func (s *RazorpayService) CreateOrder(ctx context.Context, amountPaise int64, currency, receiptSeed, productName string) (*PaymentOrder, error) {
	if s.keyID == "" || s.keySecret == "" {
		return nil, apperrors.Configuration("Razorpay is not configured")
	}
	if amountPaise < s.minPaise {
		return nil, apperrors.Validation("Invalid amount (minimum ₹1)")
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  buildReceipt(receiptSeed),
	}
	if productName != "" {
		data["notes"] = map[string]interface{}{"product": productName}
	}

	client := razorpay.NewClient(s.keyID, s.keySecret)
	body, err := client.Order.Create(data, nil)
	if err != nil {
		s.logger.Error("Razorpay order creation failed", zap.Error(err))
		return nil, apperrors.Gateway("Failed to create order", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		s.logger.Error("Razorpay response missing order id")
		return nil, apperrors.Gateway("Failed to create order", nil)
	}

	order := &PaymentOrder{
		OrderID:     orderID,
		AmountPaise: paiseFromAPI(body["amount"], amountPaise),
		Currency:    currency,
	}
	if c, ok := body["currency"].(string); ok && c != "" {
		order.Currency = c
	}
	return order, nil
}

// buildReceipt derives the correlation reference sent to the gateway.
// Deterministic for a given seed; capped so the prefixed result stays
// within Razorpay's 40-character limit.
func buildReceipt(seed string) string {
	if seed == "" {
		seed = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if len(seed) > receiptSeedMax {
		seed = seed[:receiptSeedMax]
	}
	return receiptPrefix + seed
}

// paiseFromAPI normalizes the amount field of a decoded provider response.
func paiseFromAPI(v interface{}, fallback int64) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	return fallback
}
