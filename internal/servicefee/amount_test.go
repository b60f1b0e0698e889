package servicefee

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		name string
		base string
		rate decimal.NullDecimal
		want string
	}{
		{name: "ten percent", base: "1000", rate: price("10"), want: "100"},
		{name: "fractional rate", base: "19.99", rate: price("2.5"), want: "0.49975"},
		{name: "null rate", base: "1000", rate: decimal.NullDecimal{}, want: "0"},
		{name: "zero rate", base: "1000", rate: price("0"), want: "0"},
		{name: "negative rate", base: "1000", rate: price("-5"), want: "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Amount(dec(tc.base), tc.rate)
			require.True(t, dec(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	valid := []struct {
		in   interface{}
		want string
	}{
		{in: 12.5, want: "12.5"},
		{in: 7, want: "7"},
		{in: int64(9), want: "9"},
		{in: " 3.25 ", want: "3.25"},
		{in: json.Number("42"), want: "42"},
		{in: dec("1.1"), want: "1.1"},
	}
	for _, tc := range valid {
		got := ParseAmount(tc.in)
		require.True(t, got.Valid, "%v should parse", tc.in)
		require.True(t, dec(tc.want).Equal(got.Decimal), "%v parsed as %s", tc.in, got.Decimal)
	}

	invalid := []interface{}{nil, "", "abc", math.NaN(), math.Inf(1), []int{1}, (*float64)(nil)}
	for _, in := range invalid {
		require.False(t, ParseAmount(in).Valid, "%v should be null", in)
	}
}

func TestParseAmountIntegerWidths(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "int8", in: int8(-8), want: "-8"},
		{name: "int16", in: int16(1600), want: "1600"},
		{name: "uint", in: uint(12), want: "12"},
		{name: "uint8", in: uint8(255), want: "255"},
		{name: "uint16", in: uint16(65535), want: "65535"},
		{name: "uint32", in: uint32(4294967295), want: "4294967295"},
		{name: "uint64 max int64", in: uint64(math.MaxInt64), want: "9223372036854775807"},
		{name: "uint64 above int64", in: uint64(math.MaxUint64), want: "18446744073709551615"},
		{name: "uint64 just above int64", in: uint64(math.MaxInt64) + 1, want: "9223372036854775808"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAmount(tc.in)
			require.True(t, got.Valid)
			require.True(t, dec(tc.want).Equal(got.Decimal), "got %s", got.Decimal)
			require.False(t, got.Decimal.IsNegative() && tc.want[0] != '-', "must not overflow to negative")
		})
	}
}
