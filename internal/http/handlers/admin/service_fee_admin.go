package admin

import (
	"fmt"
	"strings"

	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/service"
	"github.com/marketfee-next/internal/servicefee"

	"github.com/gin-gonic/gin"
)

// ServiceFeeRequest 创建/更新服务费请求
type ServiceFeeRequest struct {
	DisplayName       string                        `json:"display_name" binding:"required"`
	FeeName           string                        `json:"fee_name"`
	ChargingLevel     string                        `json:"charging_level" binding:"required"`
	Rate              interface{}                   `json:"rate"`
	ValidFrom         string                        `json:"valid_from"`
	ValidTo           string                        `json:"valid_to"`
	Status            string                        `json:"status"`
	EligibilityConfig *models.ServiceFeeEligibility `json:"eligibility_config"`
}

func (r ServiceFeeRequest) toInput() (service.ServiceFeeInput, error) {
	validFrom, err := handlershared.ParseTimeNullable(r.ValidFrom)
	if err != nil {
		return service.ServiceFeeInput{}, fmt.Errorf("valid_from: %w", err)
	}
	validTo, err := handlershared.ParseTimeNullable(r.ValidTo)
	if err != nil {
		return service.ServiceFeeInput{}, fmt.Errorf("valid_to: %w", err)
	}
	return service.ServiceFeeInput{
		DisplayName:       r.DisplayName,
		FeeName:           r.FeeName,
		ChargingLevel:     r.ChargingLevel,
		Rate:              servicefee.ParseRate(r.Rate),
		ValidFrom:         validFrom,
		ValidTo:           validTo,
		Status:            r.Status,
		EligibilityConfig: r.EligibilityConfig,
	}, nil
}

// bindServiceFeeInput 解析请求体，格式错误统一为 400
func bindServiceFeeInput(c *gin.Context) (service.ServiceFeeInput, error) {
	var req ServiceFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ServiceFeeInput{}, response.NewAppError(response.CodeBadRequest, "error.bad_request", err)
	}
	input, err := req.toInput()
	if err != nil {
		return service.ServiceFeeInput{}, response.NewAppError(response.CodeBadRequest, "error.bad_request", err)
	}
	return input, nil
}

// ListServiceFees 服务费列表
func (h *Handler) ListServiceFees(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	fees, total, err := h.ServiceFeeAdminService.List(repository.ServiceFeeListFilter{
		Page:          page,
		PageSize:      pageSize,
		ChargingLevel: c.Query("charging_level"),
		Status:        c.Query("status"),
		Search:        strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, fees, response.BuildPagination(page, pageSize, total))
}

// GetServiceFee 服务费详情
func (h *Handler) GetServiceFee(c *gin.Context) {
	fee, err := h.ServiceFeeAdminService.Get(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, serviceFeeErrorRules, "error.internal")
		return
	}
	response.Success(c, fee)
}

// CreateServiceFee 创建服务费
func (h *Handler) CreateServiceFee(c *gin.Context) {
	input, err := bindServiceFeeInput(c)
	if err != nil {
		respondWithMappedError(c, err, serviceFeeErrorRules, "error.bad_request")
		return
	}
	fee, err := h.ServiceFeeAdminService.Create(input)
	if err != nil {
		respondWithMappedError(c, err, serviceFeeErrorRules, "error.service_fee_save_failed")
		return
	}
	response.Success(c, fee)
}

// UpdateServiceFee 更新服务费
func (h *Handler) UpdateServiceFee(c *gin.Context) {
	input, err := bindServiceFeeInput(c)
	if err != nil {
		respondWithMappedError(c, err, serviceFeeErrorRules, "error.bad_request")
		return
	}
	fee, err := h.ServiceFeeAdminService.Update(c.Param("id"), input)
	if err != nil {
		respondWithMappedError(c, err, serviceFeeErrorRules, "error.service_fee_save_failed")
		return
	}
	response.Success(c, fee)
}

// DeleteServiceFee 删除服务费
func (h *Handler) DeleteServiceFee(c *gin.Context) {
	if err := h.ServiceFeeAdminService.Delete(c.Param("id")); err != nil {
		respondWithMappedError(c, err, serviceFeeErrorRules, "error.service_fee_save_failed")
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
