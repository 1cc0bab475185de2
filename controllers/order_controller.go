package controllers

import (
	"net/http"
	"strconv"

	"checkout-service/apperrors"
	"checkout-service/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	Orders repository.OrderRepository
	Logger *zap.Logger
}

// GetOrders returns the most recent orders for the admin panel.
func (oc *OrderController) GetOrders(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			apperrors.Respond(c, apperrors.Validation("Invalid limit"))
			return
		}
		limit = n
	}

	orders, err := oc.Orders.List(c.Request.Context(), limit)
	if err != nil {
		oc.Logger.Error("failed to fetch orders", zap.Error(err))
		apperrors.Respond(c, apperrors.Store("Failed to fetch orders", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
