package service

import (
	"strings"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ServiceFeeAdminService 服务费规则管理服务
type ServiceFeeAdminService struct {
	repo repository.ServiceFeeRepository
}

// NewServiceFeeAdminService 创建服务费规则管理服务
func NewServiceFeeAdminService(repo repository.ServiceFeeRepository) *ServiceFeeAdminService {
	return &ServiceFeeAdminService{repo: repo}
}

// ServiceFeeInput 创建/更新服务费输入
type ServiceFeeInput struct {
	DisplayName       string
	FeeName           string
	ChargingLevel     string
	Rate              decimal.NullDecimal
	ValidFrom         *time.Time
	ValidTo           *time.Time
	Status            string
	EligibilityConfig *models.ServiceFeeEligibility
}

// List 分页查询服务费
func (s *ServiceFeeAdminService) List(filter repository.ServiceFeeListFilter) ([]models.ServiceFee, int64, error) {
	filter.ChargingLevel = strings.ToUpper(strings.TrimSpace(filter.ChargingLevel))
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))
	return s.repo.List(filter)
}

// Get 获取服务费详情
func (s *ServiceFeeAdminService) Get(id string) (*models.ServiceFee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrServiceFeeNotFound
	}
	fee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, ErrServiceFeeNotFound
	}
	return fee, nil
}

// Create 创建服务费
func (s *ServiceFeeAdminService) Create(input ServiceFeeInput) (*models.ServiceFee, error) {
	fee := &models.ServiceFee{}
	if err := applyServiceFeeInput(fee, input, constants.ServiceFeeStatusActive); err != nil {
		return nil, err
	}
	if err := s.repo.Create(fee); err != nil {
		logger.Errorw("service_fee_create_failed", "fee_name", fee.FeeName, "error", err)
		return nil, ErrServiceFeeSaveFailed
	}
	return fee, nil
}

// Update 更新服务费
func (s *ServiceFeeAdminService) Update(id string, input ServiceFeeInput) (*models.ServiceFee, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := applyServiceFeeInput(existing, input, existing.Status); err != nil {
		return nil, err
	}
	if err := s.repo.Update(existing); err != nil {
		logger.Errorw("service_fee_update_failed", "service_fee_id", existing.ID, "error", err)
		return nil, ErrServiceFeeSaveFailed
	}
	return existing, nil
}

// Delete 删除服务费
func (s *ServiceFeeAdminService) Delete(id string) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(existing.ID); err != nil {
		logger.Errorw("service_fee_delete_failed", "service_fee_id", existing.ID, "error", err)
		return ErrServiceFeeSaveFailed
	}
	return nil
}

// applyServiceFeeInput 校验输入并写入模型
func applyServiceFeeInput(fee *models.ServiceFee, input ServiceFeeInput, defaultStatus string) error {
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return ErrServiceFeeInvalid
	}
	feeName := strings.TrimSpace(input.FeeName)
	if feeName == "" {
		feeName = normalizeFeeName(displayName)
	}

	level := strings.ToUpper(strings.TrimSpace(input.ChargingLevel))
	switch level {
	case constants.ServiceFeeLevelGlobal, constants.ServiceFeeLevelItem, constants.ServiceFeeLevelShop:
	default:
		return ErrServiceFeeLevelInvalid
	}

	status := strings.ToUpper(strings.TrimSpace(input.Status))
	if status == "" {
		status = defaultStatus
	}
	switch status {
	case constants.ServiceFeeStatusActive, constants.ServiceFeeStatusPending, constants.ServiceFeeStatusInactive:
	default:
		return ErrServiceFeeInvalid
	}

	if !input.Rate.Valid || input.Rate.Decimal.IsNegative() {
		return ErrServiceFeeRateInvalid
	}
	if input.ValidFrom != nil && input.ValidTo != nil && input.ValidTo.Before(*input.ValidFrom) {
		return ErrServiceFeeWindow
	}

	config, err := normalizeEligibilityConfig(level, input.EligibilityConfig)
	if err != nil {
		return err
	}

	fee.DisplayName = displayName
	fee.FeeName = feeName
	fee.ChargingLevel = level
	fee.Rate = input.Rate
	fee.ValidFrom = input.ValidFrom
	fee.ValidTo = input.ValidTo
	fee.Status = status
	fee.EligibilityConfig = config
	return nil
}

// normalizeEligibilityConfig 按收费层级校验适用规则结构
func normalizeEligibilityConfig(level string, config *models.ServiceFeeEligibility) (*models.ServiceFeeEligibility, error) {
	switch level {
	case constants.ServiceFeeLevelGlobal:
		if config != nil && (!config.Include.Empty() || !config.Exinclude.Empty() || config.Vendors != nil || len(config.VendorGroup) > 0) {
			return nil, ErrServiceFeeConfig
		}
		return nil, nil
	case constants.ServiceFeeLevelItem:
		if config == nil {
			return &models.ServiceFeeEligibility{}, nil
		}
		if config.Vendors != nil || len(config.VendorGroup) > 0 {
			return nil, ErrServiceFeeConfig
		}
		return &models.ServiceFeeEligibility{
			Include:   normalizeScope(config.Include),
			Exinclude: normalizeScope(config.Exinclude),
		}, nil
	case constants.ServiceFeeLevelShop:
		if config == nil {
			return &models.ServiceFeeEligibility{}, nil
		}
		if !config.Include.Empty() || !config.Exinclude.Empty() {
			return nil, ErrServiceFeeConfig
		}
		out := &models.ServiceFeeEligibility{VendorGroup: normalizeIDs(config.VendorGroup)}
		if config.Vendors != nil {
			out.Vendors = &models.VendorSelector{All: config.Vendors.All}
			if !config.Vendors.All {
				out.Vendors.IDs = normalizeIDs(config.Vendors.IDs)
			}
		}
		return out, nil
	}
	return nil, ErrServiceFeeLevelInvalid
}

func normalizeScope(scope *models.EligibilityScope) *models.EligibilityScope {
	if scope.Empty() {
		return nil
	}
	return &models.EligibilityScope{
		Categories: normalizeIDs(scope.Categories),
		Collection: normalizeIDs(scope.Collection),
	}
}

// normalizeIDs 去空白、去重，保持原顺序
func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeFeeName(displayName string) string {
	fields := strings.Fields(strings.ToLower(displayName))
	return strings.Join(fields, "_")
}
