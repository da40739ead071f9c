package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics — счётчики сервиса. Регистрируются в переданном Registerer, чтобы
// тесты могли использовать отдельный реестр.
type Metrics struct {
	Estimates *prometheus.CounterVec
	StoreOps  *prometheus.CounterVec
	StoreTime *prometheus.HistogramVec
	Notifies  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "estimates_total",
			Help:      "Material estimates computed, by kind.",
		}, []string{"kind"}),
		StoreOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "store_ops_total",
			Help:      "Document store operations, by op and result.",
		}, []string{"op", "result"}),
		StoreTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "assistant",
			Name:      "store_op_seconds",
			Help:      "Document store operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		Notifies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "notifications_total",
			Help:      "Notifications sent, by channel and result.",
		}, []string{"channel", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.Estimates, m.StoreOps, m.StoreTime, m.Notifies)
	}
	return m
}

// Nop — метрики без регистрации (для тестов и CLI).
func Nop() *Metrics { return New(nil) }

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
