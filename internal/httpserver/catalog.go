package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floralblossom/internal/catalog"
)

// listProductsHandler serves the product list, lazily loading the
// catalog on first use. A load failure surfaces as 502 so the frontend
// can render its error placeholder; nothing retries here.
func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cat.Empty() {
			if err := cat.Refresh(c.Request.Context()); err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"products": cat.Products()})
	}
}
