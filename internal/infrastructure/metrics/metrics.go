package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SettlementMetrics counts payment confirmations by outcome.
type SettlementMetrics struct {
	settlements *prometheus.CounterVec
}

func NewSettlementMetrics(reg prometheus.Registerer) *SettlementMetrics {
	m := &SettlementMetrics{
		settlements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "zapshift",
				Name:      "settlements_total",
				Help:      "Payment confirmations by outcome (settled, replayed, unpaid, failed).",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.settlements)
	return m
}

func (m *SettlementMetrics) ObserveSettlement(outcome string) {
	m.settlements.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
