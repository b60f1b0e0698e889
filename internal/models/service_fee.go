package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/marketfee-next/internal/constants"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceFee 服务费规则表
type ServiceFee struct {
	ID                string                 `gorm:"primaryKey;type:varchar(64)" json:"id"`                 // 主键
	DisplayName       string                 `gorm:"not null" json:"display_name"`                          // 展示名称
	FeeName           string                 `gorm:"not null;index" json:"fee_name"`                        // 内部名称
	ChargingLevel     string                 `gorm:"type:varchar(20);not null;index" json:"charging_level"` // 收费层级
	Rate              decimal.NullDecimal    `gorm:"type:decimal(10,4)" json:"rate"`                        // 费率（百分比）
	ValidFrom         *time.Time             `gorm:"index" json:"valid_from"`                               // 生效时间
	ValidTo           *time.Time             `gorm:"index" json:"valid_to"`                                 // 失效时间
	Status            string                 `gorm:"type:varchar(20);not null;index" json:"status"`         // 状态
	EligibilityConfig *ServiceFeeEligibility `gorm:"type:json" json:"eligibility_config"`                   // 适用规则，结构取决于收费层级
	CreatedAt         time.Time              `gorm:"index" json:"date_created"`                             // 创建时间
	UpdatedAt         time.Time              `json:"date_updated"`                                          // 更新时间
	DeletedAt         gorm.DeletedAt         `gorm:"index" json:"-"`                                        // 软删除时间
}

// TableName 指定表名
func (ServiceFee) TableName() string {
	return "service_fees"
}

// BeforeCreate 生成ID
func (f *ServiceFee) BeforeCreate(tx *gorm.DB) error {
	ensureID(&f.ID, constants.IDPrefixServiceFee)
	return nil
}

// EligibilityScope 分类/合集集合
type EligibilityScope struct {
	Categories []string `json:"categories,omitempty"`
	Collection []string `json:"collection,omitempty"`
}

// Empty 是否未配置任何条件
func (s *EligibilityScope) Empty() bool {
	return s == nil || (len(s.Categories) == 0 && len(s.Collection) == 0)
}

// ServiceFeeEligibility 服务费适用规则。
// ITEM_LEVEL 使用 include/exinclude，SHOP_LEVEL 使用 vendors/vendor_group。
type ServiceFeeEligibility struct {
	Include     *EligibilityScope `json:"include,omitempty"`
	Exinclude   *EligibilityScope `json:"exinclude,omitempty"`
	Vendors     *VendorSelector   `json:"vendors,omitempty"`
	VendorGroup []string          `json:"vendor_group,omitempty"`
}

// Value 实现 driver.Valuer 接口
func (e *ServiceFeeEligibility) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(e)
}

// Scan 实现 sql.Scanner 接口
func (e *ServiceFeeEligibility) Scan(value interface{}) error {
	if value == nil {
		*e = ServiceFeeEligibility{}
		return nil
	}
	raw, err := scanBytes(value)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		*e = ServiceFeeEligibility{}
		return nil
	}
	return json.Unmarshal(raw, e)
}

// VendorSelector 商家选择：字面量 "all" 或商家ID列表
type VendorSelector struct {
	All bool
	IDs []string
}

// MarshalJSON 实现 json.Marshaler
func (v VendorSelector) MarshalJSON() ([]byte, error) {
	if v.All {
		return json.Marshal(constants.ServiceFeeVendorsAll)
	}
	if v.IDs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.IDs)
}

// UnmarshalJSON 实现 json.Unmarshaler
func (v *VendorSelector) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*v = VendorSelector{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(s), constants.ServiceFeeVendorsAll) {
			*v = VendorSelector{All: true}
			return nil
		}
		return fmt.Errorf("invalid vendors selector %q", s)
	}
	var ids []string
	if err := json.Unmarshal(trimmed, &ids); err != nil {
		return err
	}
	*v = VendorSelector{IDs: ids}
	return nil
}
