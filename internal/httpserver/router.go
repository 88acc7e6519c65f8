package httpserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"floralblossom/internal/catalog"
	"floralblossom/internal/repository/kv"
	cartsvc "floralblossom/internal/service/cart"
	checkoutsvc "floralblossom/internal/service/checkout"
	ordersvc "floralblossom/internal/service/order"
)

// Deps carries the core services the presentation layer calls into.
// Everything behind this struct is headless and tested without gin.
type Deps struct {
	Catalog  *catalog.Catalog
	CartSvc  *cartsvc.Service
	OrderSvc *ordersvc.Service
	Checkout *checkoutsvc.Service
	State    kv.Store
	DataDir  string
}

// buildRouter wires the storefront routes.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.State))

	if deps.DataDir != "" {
		// The catalog source the loader fetches from; the storefront
		// doubles as its own static file host like the original site.
		router.Static("/data", deps.DataDir)
	}

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/cart", getCartHandler(deps.CartSvc))
	api.POST("/cart/items", addItemHandler(deps.CartSvc, deps.Catalog))
	api.PATCH("/cart/items/:id", updateQuantityHandler(deps.CartSvc))
	api.DELETE("/cart/items/:id", removeItemHandler(deps.CartSvc))
	api.DELETE("/cart", clearCartHandler(deps.CartSvc))
	api.POST("/checkout", checkoutHandler(deps.Checkout, deps.CartSvc))
	api.POST("/checkout/validate", validateFieldHandler())
	api.GET("/orders", listOrdersHandler(deps.OrderSvc))

	return router
}
