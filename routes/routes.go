package routes

import (
	"checkout-service/controllers"
	"checkout-service/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Register wires all HTTP routes. The checkout endpoints are public but
// rate limited; order listing is admin-only.
func Register(
	r *gin.Engine,
	cc *controllers.CheckoutController,
	oc *controllers.OrderController,
	pc *controllers.ProductController,
	allowedOrigins []string,
	adminJWTSecret string,
) {
	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")

	api := r.Group("/api")
	api.Use(cors.New(corsCfg))

	checkout := api.Group("/checkout")
	checkout.Use(middleware.RateLimit())
	checkout.POST("/create-order", cc.CreateOrder)
	checkout.POST("/verify-payment", cc.VerifyPayment)

	api.GET("/products", pc.GetProducts)

	admin := api.Group("/orders")
	admin.Use(middleware.AdminAuth(adminJWTSecret))
	admin.GET("", oc.GetOrders)
}
