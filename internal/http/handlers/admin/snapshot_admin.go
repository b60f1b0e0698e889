package admin

import (
	"strings"

	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListSnapshots 订单快照列表
func (h *Handler) ListSnapshots(c *gin.Context) {
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

	rows, total, err := h.SnapshotService.List(repository.SnapshotListFilter{
		Page:        page,
		PageSize:    pageSize,
		CustomerID:  strings.TrimSpace(c.Query("customer_id")),
		Email:       strings.TrimSpace(c.Query("email")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, rows, response.BuildPagination(page, pageSize, total))
}

// GetSnapshot 按订单获取快照
func (h *Handler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.SnapshotService.GetByOrderID(c.Param("order_id"))
	if err != nil {
		respondWithMappedError(c, err, snapshotErrorRules, "error.internal")
		return
	}
	response.Success(c, snapshot)
}

// CreateSnapshot 手动补写订单快照，已存在时返回 created=false
func (h *Handler) CreateSnapshot(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("order_id"))
	created, err := h.SnapshotService.SnapshotOrder(c.Request.Context(), orderID)
	if err != nil {
		respondWithMappedError(c, err, snapshotErrorRules, "error.snapshot_write_failed")
		return
	}
	response.Success(c, gin.H{"order_id": orderID, "created": created})
}
