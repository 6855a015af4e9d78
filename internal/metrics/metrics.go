// Package metrics собирает Prometheus-метрики сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector хранит счетчики доменных событий. Регистрируется в
// глобальном реестре, который отдает promhttp на /metrics.
type Collector struct {
	tokensIssued *prometheus.CounterVec
	predictions  *prometheus.CounterVec
}

// NewCollector создает Collector и регистрирует метрики в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		tokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "symptom_checker_tokens_issued_total",
			Help: "Количество выданных токенов по классам (access, refresh)",
		}, []string{"kind"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "symptom_checker_predictions_total",
			Help: "Количество предсказаний по результату (ok, upstream_error, storage_error)",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.tokensIssued, c.predictions)
	return c
}

// RecordTokenIssued учитывает выдачу токена указанного класса.
func (c *Collector) RecordTokenIssued(kind string) {
	c.tokensIssued.WithLabelValues(kind).Inc()
}

// RecordPrediction учитывает исход предсказания.
func (c *Collector) RecordPrediction(outcome string) {
	c.predictions.WithLabelValues(outcome).Inc()
}
