package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money 统一金额类型（保留 2 位小数）
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// MarshalJSON 统一输出 2 位小数的字符串
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON 解析金额（字符串或数字）
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// Value 用于数据库写入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String 返回 2 位小数格式
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}

// NullMoney 可空金额，Valid=false 表示宿主对象未跟踪该字段
type NullMoney struct {
	decimal.NullDecimal
}

// NewNullMoney 从 decimal 创建有效金额
func NewNullMoney(amount decimal.Decimal) NullMoney {
	return NullMoney{NullDecimal: decimal.NewNullDecimal(amount.Round(2))}
}

// NullMoneyFrom 从可空 decimal 创建金额
func NullMoneyFrom(amount decimal.NullDecimal) NullMoney {
	if !amount.Valid {
		return NullMoney{}
	}
	return NewNullMoney(amount.Decimal)
}

// MarshalJSON 有效时输出 2 位小数字符串，否则输出 null
func (m NullMoney) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON 解析金额，null 视为缺失
func (m *NullMoney) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		m.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	var money Money
	if err := money.UnmarshalJSON(b); err != nil {
		return err
	}
	m.NullDecimal = decimal.NewNullDecimal(money.Decimal)
	return nil
}

// Value 用于数据库写入
func (m NullMoney) Value() (driver.Value, error) {
	if !m.Valid {
		return nil, nil
	}
	return m.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (m *NullMoney) Scan(value interface{}) error {
	if err := m.NullDecimal.Scan(value); err != nil {
		return err
	}
	if m.Valid {
		m.Decimal = m.Decimal.Round(2)
	}
	return nil
}
