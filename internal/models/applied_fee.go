package models

import "github.com/shopspring/decimal"

// CalculatedPrice 规格展示价（运行时计算，不落库）
type CalculatedPrice struct {
	CalculatedAmount NullMoney `json:"calculated_amount"`        // 计算价
	FinalPrice       NullMoney `json:"final_price"`              // 含服务费价格
	ServiceFeeAmount Money     `json:"service_fee_amount"`       // 服务费金额
	ServiceFeeID     string    `json:"service_fee_id,omitempty"`
}

// AppliedServiceFee 订单详情中展示的服务费规则
type AppliedServiceFee struct {
	ID            string              `json:"id"`             // 规则ID
	DisplayName   string              `json:"display_name"`   // 展示名称
	ChargingLevel string              `json:"charging_level"` // 收费层级
	Rate          decimal.NullDecimal `json:"rate"`           // 费率（百分比）
	ProductIDs    []string            `json:"product_ids"`    // 适用商品
}
