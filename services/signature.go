package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyPaymentSignature checks that the signature returned by the Razorpay
// checkout widget was produced with our key secret. The gateway signs the
// hex HMAC-SHA256 of "<order_id>|<payment_id>". Comparison is constant time.
// This is the sole authenticity check for a confirmation; there is no
// server-side status fetch from the gateway.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
