package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"floralblossom/internal/domain"
	cartsvc "floralblossom/internal/service/cart"
	checkoutsvc "floralblossom/internal/service/checkout"
	ordersvc "floralblossom/internal/service/order"
)

// checkoutHandler runs the submit flow. An empty cart is refused up
// front, the HTTP analog of the storefront's disabled checkout button.
func checkoutHandler(svc *checkoutsvc.Service, cart *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutsvc.SubmitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if cart.Totals().ItemCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
			return
		}

		ord, err := svc.Submit(c.Request.Context(), in)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "errors": verr.Fields})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, ord)
	}
}

// validateFieldHandler mirrors the blur-time field check.
func validateFieldHandler() gin.HandlerFunc {
	type fieldRequest struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	return func(c *gin.Context) {
		var req fieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		msg, ok := checkoutsvc.ValidateField(req.Field, req.Value)
		c.JSON(http.StatusOK, gin.H{"valid": ok, "error": msg})
	}
}

func listOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": svc.Orders()})
	}
}
