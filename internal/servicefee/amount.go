package servicefee

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Amount 按百分比费率计算服务费，费率为空或非正数时返回 0。
// 这里不做舍入，展示层统一处理。
func Amount(base decimal.Decimal, ratePercent decimal.NullDecimal) decimal.Decimal {
	if !ratePercent.Valid || !ratePercent.Decimal.IsPositive() {
		return decimal.Zero
	}
	return base.Mul(ratePercent.Decimal).Div(hundred)
}

// ParseAmount 将宿主对象中的任意数值解析为可空金额，NaN/Inf/非数字视为缺失。
func ParseAmount(value interface{}) decimal.NullDecimal {
	switch v := value.(type) {
	case nil:
		return decimal.NullDecimal{}
	case decimal.Decimal:
		return decimal.NewNullDecimal(v)
	case *decimal.Decimal:
		if v == nil {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(*v)
	case decimal.NullDecimal:
		return v
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case *float64:
		if v == nil {
			return decimal.NullDecimal{}
		}
		return fromFloat(*v)
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(v)))
	case int8:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(v)))
	case int16:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(v)))
	case int32:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(v)))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(v))
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case json.Number:
		return fromString(v.String())
	case string:
		return fromString(v)
	default:
		return decimal.NullDecimal{}
	}
}

// ParseRate 解析费率，规则同 ParseAmount
func ParseRate(value interface{}) decimal.NullDecimal {
	return ParseAmount(value)
}

func fromFloat(v float64) decimal.NullDecimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

// fromUint 超出 int64 范围的值走大整数，避免转换溢出成负数
func fromUint(v uint64) decimal.NullDecimal {
	if v > math.MaxInt64 {
		return decimal.NewNullDecimal(decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0))
	}
	return decimal.NewNullDecimal(decimal.NewFromInt(int64(v)))
}

func fromString(raw string) decimal.NullDecimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
