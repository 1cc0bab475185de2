package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// OrderEmailData carries the fields rendered into the owner notification.
type OrderEmailData struct {
	ProductName       string
	AmountPaise       int64
	RazorpayOrderID   string
	RazorpayPaymentID string
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	CustomerAddress   string
}

// OrderNotifier sends the new-order email to the store owner. Best-effort:
// implementations report success with a bool and must never panic or block
// a checkout on provider trouble.
type OrderNotifier interface {
	SendOrderNotification(ctx context.Context, to string, order OrderEmailData, brandName string) bool
}

const orderEmailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>New Order</title></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #b45309;">New order received</h2>
  <p>A new order has been placed on {{.BrandName}}.</p>

  <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <tr style="background: #f5f5f5;"><td style="padding: 10px; font-weight: bold;">Product</td><td style="padding: 10px;">{{.Order.ProductName}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Amount</td><td style="padding: 10px;">₹{{.AmountRupees}}</td></tr>
    <tr style="background: #f5f5f5;"><td style="padding: 10px; font-weight: bold;">Payment ID</td><td style="padding: 10px; font-family: monospace;">{{.Order.RazorpayPaymentID}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Order ID</td><td style="padding: 10px; font-family: monospace;">{{.Order.RazorpayOrderID}}</td></tr>
  </table>

  <h3 style="color: #333; margin-top: 24px;">Delivery details</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr style="background: #f5f5f5;"><td style="padding: 10px; font-weight: bold;">Name</td><td style="padding: 10px;">{{or .Order.CustomerName "-"}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Email</td><td style="padding: 10px;">{{or .Order.CustomerEmail "-"}}</td></tr>
    <tr style="background: #f5f5f5;"><td style="padding: 10px; font-weight: bold;">Phone</td><td style="padding: 10px;">{{or .Order.CustomerPhone "-"}}</td></tr>
    <tr><td style="padding: 10px; font-weight: bold;">Address</td><td style="padding: 10px; white-space: pre-wrap;">{{or .Order.CustomerAddress "-"}}</td></tr>
  </table>

  <p style="margin-top: 24px; color: #666; font-size: 14px;">
    Estimated delivery: 7-8 business days
  </p>
</body>
</html>
`

var orderEmailTmpl = template.Must(template.New("order_email").Parse(orderEmailTemplate))

// SMTPNotifier sends order notifications over SMTP.
type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	logger   *zap.Logger
}

func NewSMTPNotifier(host, port, username, password string, logger *zap.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger,
	}
}

// SendOrderNotification emails the owner about a freshly recorded order.
// Missing credentials or a provider failure are logged and reported as
// false; the order is already committed at this point.
func (s *SMTPNotifier) SendOrderNotification(ctx context.Context, to string, order OrderEmailData, brandName string) bool {
	if s.host == "" || s.username == "" || s.password == "" {
		s.logger.Warn("SMTP not configured - skipping order email")
		return false
	}
	if to == "" {
		s.logger.Warn("owner email not configured - skipping order email")
		return false
	}

	body, err := RenderOrderEmail(order, brandName)
	if err != nil {
		s.logger.Error("order email render failed", zap.Error(err))
		return false
	}

	subject := fmt.Sprintf("New order: %s – ₹%s", order.ProductName, FormatRupees(order.AmountPaise))
	msg := []byte(
		"From: " + brandName + " <" + s.username + ">\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.username, []string{to}, msg); err != nil {
		s.logger.Error("order email send failed",
			zap.String("razorpay_order_id", order.RazorpayOrderID),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("order email sent",
		zap.String("razorpay_order_id", order.RazorpayOrderID),
		zap.String("to", to),
	)
	return true
}

// RenderOrderEmail produces the HTML body for the owner notification.
func RenderOrderEmail(order OrderEmailData, brandName string) (string, error) {
	var buf bytes.Buffer
	err := orderEmailTmpl.Execute(&buf, struct {
		BrandName    string
		AmountRupees string
		Order        OrderEmailData
	}{
		BrandName:    brandName,
		AmountRupees: FormatRupees(order.AmountPaise),
		Order:        order,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatRupees renders paise as a rupee string with Indian digit grouping
// (12,34,567.00).
func FormatRupees(paise int64) string {
	rupees := paise / 100
	frac := paise % 100
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%s.%02d", groupIndian(rupees), frac)
}

func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(append(parts, tail), ",")
	}
	if neg {
		s = "-" + s
	}
	return s
}
