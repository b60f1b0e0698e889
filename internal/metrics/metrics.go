package metrics

import (
	"net/http"

	"github.com/marketfee-next/internal/servicefee"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "marketfee"

// FeeMetrics 服务费应用指标
type FeeMetrics struct {
	registry *prometheus.Registry
	applied  *prometheus.CounterVec
	amount   *prometheus.CounterVec
}

// NewFeeMetrics 创建并注册服务费指标
func NewFeeMetrics() *FeeMetrics {
	registry := prometheus.NewRegistry()
	m := &FeeMetrics{
		registry: registry,
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_fee_applied_total",
			Help:      "Number of lines or variants a service fee was applied to.",
		}, []string{"scope", "level"}),
		amount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_fee_amount_total",
			Help:      "Sum of service fee amounts applied, in major currency units.",
		}, []string{"scope", "level"}),
	}
	registry.MustRegister(
		m.applied,
		m.amount,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveFee 实现 servicefee.Observer
func (m *FeeMetrics) ObserveFee(scope string, fee *servicefee.Fee, amount decimal.Decimal) {
	if m == nil {
		return
	}
	level := "none"
	if fee != nil {
		level = string(fee.Level)
	}
	m.applied.WithLabelValues(scope, level).Inc()
	if amount.IsPositive() {
		m.amount.WithLabelValues(scope, level).Add(amount.InexactFloat64())
	}
}

// Handler 返回 /metrics 处理器
func (m *FeeMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry 返回指标注册表
func (m *FeeMetrics) Registry() *prometheus.Registry {
	return m.registry
}
