package public

import (
	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCart 获取当前顾客购物车，合计已计入服务费
func (h *Handler) GetCart(c *gin.Context) {
	customerID, ok := handlershared.CustomerID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, "error.cart_fetch_failed")
		return
	}
	response.Success(c, cart)
}
