package controllers

import (
	"net/http"

	"checkout-service/apperrors"
	"checkout-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
	Logger   *zap.Logger
}

// CreateOrder registers a payment intent with the gateway and returns its
// order id for the embedded checkout widget.
func (cc *CheckoutController) CreateOrder(c *gin.Context) {
	var req services.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	resp, appErr := cc.Checkout.CreateIntent(c.Request.Context(), req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyPayment confirms a completed payment: checks the gateway
// signature, records the order idempotently and reports success for both
// fresh saves and retried confirmations.
func (cc *CheckoutController) VerifyPayment(c *gin.Context) {
	var req services.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request body"))
		return
	}

	result, appErr := cc.Checkout.ConfirmPayment(c.Request.Context(), req)
	if appErr != nil {
		apperrors.Respond(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Message})
}
