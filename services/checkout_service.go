package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"checkout-service/apperrors"
	"checkout-service/config"
	"checkout-service/events"
	"checkout-service/models"
	"checkout-service/repository"

	"go.uber.org/zap"
)

// CheckoutService ties the gateway, signature check, order store and
// owner notification into the two-step checkout handshake: create a
// payment intent, then confirm the completed payment.
type CheckoutService struct {
	gateway  PaymentGateway
	orders   repository.OrderRepository
	notifier OrderNotifier
	events   events.Publisher
	cfg      *config.Config
	logger   *zap.Logger
}

// NewCheckoutService wires the checkout workflow. events may be nil when
// SNS fan-out is disabled.
func NewCheckoutService(
	gateway PaymentGateway,
	orders repository.OrderRepository,
	notifier OrderNotifier,
	eventPublisher events.Publisher,
	cfg *config.Config,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		gateway:  gateway,
		orders:   orders,
		notifier: notifier,
		events:   eventPublisher,
		cfg:      cfg,
		logger:   logger,
	}
}

type CreateIntentRequest struct {
	AmountPaise int64  `json:"amount_paise"`
	Currency    string `json:"currency"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

type CreateIntentResponse struct {
	OrderID     string `json:"order_id"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// CreateIntent registers a pending payment order with the gateway and
// hands its id back to the client. No local state is written; the intent
// lives at the gateway until the client completes payment in the widget.
func (s *CheckoutService) CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, *apperrors.Error) {
	if req.Currency == "" {
		req.Currency = "INR"
	}
	if req.AmountPaise < s.cfg.MinOrderAmountPaise {
		return nil, apperrors.Validation("Invalid amount (minimum ₹1)")
	}

	order, err := s.gateway.CreateOrder(ctx, req.AmountPaise, req.Currency, req.ProductID, req.ProductName)
	if err != nil {
		return nil, asAppError(err, "Failed to create order")
	}

	return &CreateIntentResponse{
		OrderID:     order.OrderID,
		AmountPaise: order.AmountPaise,
		Currency:    order.Currency,
	}, nil
}

type ConfirmRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	AmountPaise       int64  `json:"amount_paise"`
	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone"`
	CustomerAddress   string `json:"customer_address"`
}

type ConfirmResult struct {
	Duplicate bool
	Message   string
}

// ConfirmPayment verifies the gateway signature and records the order.
// Repeated confirmations of the same gateway order id are collapsed by the
// store's unique index and reported as success, so client retries after a
// dropped response are safe. Notification and event fan-out run after the
// insert committed and never affect the outcome.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, req ConfirmRequest) (*ConfirmResult, *apperrors.Error) {
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		return nil, apperrors.Validation("Missing payment verification fields")
	}
	if s.cfg.RazorpayKeySecret == "" {
		return nil, apperrors.Configuration("Razorpay is not configured")
	}

	if !VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.cfg.RazorpayKeySecret) {
		// Logged apart from plain validation failures: a mismatch here is a
		// potential tamper attempt, not a malformed request.
		s.logger.Warn("payment signature mismatch",
			zap.String("razorpay_order_id", req.RazorpayOrderID),
			zap.String("razorpay_payment_id", req.RazorpayPaymentID),
		)
		return nil, apperrors.InvalidSignature("Invalid payment signature")
	}

	order := &models.Order{
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		ProductID:         defaultString(req.ProductID, "unknown"),
		ProductName:       defaultString(req.ProductName, "Product"),
		AmountPaise:       req.AmountPaise,
		Quantity:          1,
		Status:            models.StatusPaid,
		CustomerName:      optional(req.CustomerName),
		CustomerEmail:     optional(req.CustomerEmail),
		CustomerPhone:     optional(req.CustomerPhone),
		CustomerAddress:   optional(req.CustomerAddress),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrder) {
			return &ConfirmResult{Duplicate: true, Message: "Order already recorded"}, nil
		}
		s.logger.Error("order insert failed",
			zap.String("razorpay_order_id", req.RazorpayOrderID),
			zap.Error(err),
		)
		return nil, apperrors.Store("Failed to save order", err)
	}

	s.logger.Info("order recorded",
		zap.String("order_id", order.ID.String()),
		zap.String("razorpay_order_id", order.RazorpayOrderID),
		zap.Int64("amount_paise", order.AmountPaise),
	)

	s.notifyOwner(ctx, order)
	s.publishOrderPaid(ctx, order)

	return &ConfirmResult{Message: "Order saved"}, nil
}

// notifyOwner fires the best-effort owner email. Outcome is ignored; the
// order is already committed.
func (s *CheckoutService) notifyOwner(ctx context.Context, order *models.Order) {
	to := s.cfg.OwnerEmail
	if to == "" || strings.Contains(to, "example") {
		return
	}
	s.notifier.SendOrderNotification(ctx, to, OrderEmailData{
		ProductName:       order.ProductName,
		AmountPaise:       order.AmountPaise,
		RazorpayOrderID:   order.RazorpayOrderID,
		RazorpayPaymentID: order.RazorpayPaymentID,
		CustomerName:      deref(order.CustomerName),
		CustomerEmail:     deref(order.CustomerEmail),
		CustomerPhone:     deref(order.CustomerPhone),
		CustomerAddress:   deref(order.CustomerAddress),
	}, s.cfg.BrandName)
}

// publishOrderPaid fans the paid order out to SNS, best-effort.
func (s *CheckoutService) publishOrderPaid(ctx context.Context, order *models.Order) {
	if s.events == nil || s.cfg.OrderSNSTopicARN == "" {
		return
	}
	event := models.OrderEvent{
		Type:            models.EventOrderPaid,
		OrderID:         order.ID.String(),
		RazorpayOrderID: order.RazorpayOrderID,
		ProductID:       order.ProductID,
		ProductName:     order.ProductName,
		AmountPaise:     order.AmountPaise,
		Currency:        "INR",
		Timestamp:       time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, s.cfg.OrderSNSTopicARN, payload); err != nil {
		s.logger.Warn("order event publish failed",
			zap.String("razorpay_order_id", order.RazorpayOrderID),
			zap.Error(err),
		)
	}
}

// asAppError passes typed application errors through unchanged and wraps
// anything else as a gateway failure.
func asAppError(err error, message string) *apperrors.Error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Gateway(message, err)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
