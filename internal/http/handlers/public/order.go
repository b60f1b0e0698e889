package public

import (
	"strings"

	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders 顾客订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	customerID, ok := handlershared.CustomerID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)

	orders, total, err := h.OrderService.ListByCustomer(c.Request.Context(), repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
		Status:     strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, "error.order_fetch_failed")
		return
	}

	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder 顾客订单详情（含服务费明细）
func (h *Handler) GetOrder(c *gin.Context) {
	customerID, ok := handlershared.CustomerID(c)
	if !ok {
		return
	}
	orderID := strings.TrimSpace(c.Param("id"))
	if orderID == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.GetByCustomer(c.Request.Context(), orderID, customerID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}
