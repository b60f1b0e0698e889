package admin

import (
	"strings"

	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminListOrders 管理端订单列表
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	createdFrom, err := handlershared.ParseTimeNullable(c.Query("created_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := handlershared.ParseTimeNullable(c.Query("created_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	orders, total, err := h.OrderService.ListAdmin(c.Request.Context(), repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		CustomerID:  strings.TrimSpace(c.Query("customer_id")),
		Status:      strings.TrimSpace(c.Query("status")),
		Email:       strings.TrimSpace(c.Query("email")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, "error.order_fetch_failed")
		return
	}

	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// AdminGetOrder 管理端订单详情
func (h *Handler) AdminGetOrder(c *gin.Context) {
	order, err := h.OrderService.GetAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// AdminCompleteOrder 完成订单并生成快照
func (h *Handler) AdminCompleteOrder(c *gin.Context) {
	order, err := h.OrderService.CompleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, "error.order_update_failed")
		return
	}
	response.Success(c, order)
}
