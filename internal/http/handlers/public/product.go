package public

import (
	"strings"

	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品列表，规格价格含服务费
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	products, total, err := h.ProductService.ListPublic(c.Request.Context(), service.ListPublicInput{
		CategoryID:   strings.TrimSpace(c.Query("category_id")),
		CollectionID: strings.TrimSpace(c.Query("collection_id")),
		Search:       strings.TrimSpace(c.Query("search")),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, "error.product_fetch_failed")
		return
	}

	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// GetProductByID 获取商品详情
func (h *Handler) GetProductByID(c *gin.Context) {
	product, err := h.ProductService.GetPublicByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}
