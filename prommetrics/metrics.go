// Package prommetrics implements the personnummer.Metrics hook with
// Prometheus counters.
package prommetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PromMetrics counts identity number validation outcomes.
// Attach it to a scheme via personnummer.WithMetrics.
type PromMetrics struct {
	country     string
	validations *prometheus.CounterVec
}

// New creates a PromMetrics instance and registers its collector with
// the provided registry. Namespace and subsystem prefix the metric
// name; country labels every observation.
//
// Metrics registered:
//   - {namespace}_{subsystem}_validations_total{country, result} -
//     counter of validations by outcome (valid/format_error/date_error/
//     checksum_error)
//
// Returns an error if reg is nil or if registration fails (except
// AlreadyRegisteredError).
func New(reg prometheus.Registerer, namespace, subsystem, country string) (*PromMetrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	pm := &PromMetrics{
		country: country,
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "validations_total", Help: "Identity number validations by outcome",
		}, []string{"country", "result"}),
	}

	if err := registerCollector(reg, pm.validations); err != nil {
		return nil, err
	}
	return pm, nil
}

// ObserveValidation implements personnummer.Metrics.
func (m *PromMetrics) ObserveValidation(result string) {
	m.validations.WithLabelValues(m.country, result).Inc()
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return fmt.Errorf("register collector: %w", err)
	}
	return nil
}
