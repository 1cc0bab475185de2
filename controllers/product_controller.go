package controllers

import (
	"net/http"

	"checkout-service/apperrors"
	"checkout-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	Catalog *services.CatalogService
	Logger  *zap.Logger
}

// GetProducts returns the catalog, optionally filtered by category.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.Catalog.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		pc.Logger.Error("failed to fetch products", zap.Error(err))
		apperrors.Respond(c, apperrors.Store("Failed to fetch products", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
