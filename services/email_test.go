package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		paise int64
		want  string
	}{
		{249900, "2,499.00"},
		{100, "1.00"},
		{99, "0.99"},
		{123456789, "12,34,567.89"},
		{100000000, "10,00,000.00"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupees(tt.paise))
	}
}

func TestRenderOrderEmail(t *testing.T) {
	body, err := RenderOrderEmail(OrderEmailData{
		ProductName:       "Elegant Crochet Tote Bag",
		AmountPaise:       249900,
		RazorpayOrderID:   "order_xyz789",
		RazorpayPaymentID: "pay_abc123",
		CustomerName:      "Asha",
		CustomerAddress:   "12 MG Road, Pune",
	}, "Handmade Crochet")

	require.NoError(t, err)
	assert.Contains(t, body, "Elegant Crochet Tote Bag")
	assert.Contains(t, body, "₹2,499.00")
	assert.Contains(t, body, "order_xyz789")
	assert.Contains(t, body, "pay_abc123")
	assert.Contains(t, body, "Handmade Crochet")
	assert.Contains(t, body, "Asha")
}

func TestRenderOrderEmail_MissingCustomerFields(t *testing.T) {
	body, err := RenderOrderEmail(OrderEmailData{
		ProductName:       "Baby Blanket Set",
		AmountPaise:       199900,
		RazorpayOrderID:   "order_blank1",
		RazorpayPaymentID: "pay_blank1",
	}, "Handmade Crochet")

	require.NoError(t, err)
	assert.Contains(t, body, "-", "empty customer fields render as a dash")
}

func TestSendOrderNotification_NotConfigured(t *testing.T) {
	n := NewSMTPNotifier("", "", "", "", zap.NewNop())

	ok := n.SendOrderNotification(context.Background(), "owner@store.in", OrderEmailData{
		ProductName: "Tote", AmountPaise: 100, RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1",
	}, "Brand")

	assert.False(t, ok, "missing SMTP credentials must degrade to false, not an error")
}

func TestSendOrderNotification_MissingRecipient(t *testing.T) {
	n := NewSMTPNotifier("smtp.mail.test", "587", "store@mail.test", "pass", zap.NewNop())

	ok := n.SendOrderNotification(context.Background(), "", OrderEmailData{
		ProductName: "Tote", AmountPaise: 100, RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1",
	}, "Brand")

	assert.False(t, ok)
}
