// Package metrics exposes Prometheus counters for duration admissions.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bella-notify/bella-go/pkg/duration"
	"github.com/bella-notify/bella-go/pkg/log"
)

// Metrics holds the admission counters.
type Metrics struct {
	gatherer prometheus.Gatherer

	// Admissions counts admissions by source, outcome and resulting tier.
	Admissions *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	return &Metrics{
		gatherer: reg,
		Admissions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "bella_duration_admissions_total",
				Help: "Total number of raw duration magnitudes admitted at a boundary",
			},
			[]string{"source", "outcome", "tier"},
		),
	}
}

// Record counts one admission. Rejected admissions carry tier "none".
func (m *Metrics) Record(source log.Source, outcome log.Outcome, tier duration.Tier) {
	label := "none"
	if tier.Valid() {
		label = strings.ToLower(tier.String())
	}
	m.Admissions.WithLabelValues(
		strings.ToLower(source.String()),
		strings.ToLower(outcome.String()),
		label,
	).Inc()
}

// Summary writes one line per non-empty counter, sorted by label set.
func (m *Metrics) Summary(w io.Writer) error {
	families, err := m.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g",
				mf.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
