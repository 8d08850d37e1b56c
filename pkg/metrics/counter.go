// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a prometheus.CounterVec whose labels are all constrained.
type Counter struct {
	metric *prometheus.CounterVec
	labels []ConstrainedLabel
}

func NewCounter(opts Opts) (*Counter, error) {
	labels, err := getVariableLabels(&opts)
	if err != nil {
		return nil, err
	}
	return &Counter{
		metric: prometheus.V2.NewCounterVec(prometheus.CounterVecOpts{
			CounterOpts:    prometheus.CounterOpts(opts.Opts),
			VariableLabels: labels,
		}),
		labels: opts.ConstrainedLabels,
	}, nil
}

func MustNewCounter(opts Opts) *Counter {
	result, err := NewCounter(opts)
	if err != nil {
		panic(err)
	}
	return result
}

// Describe implements CollectorWithInit (prometheus.Collector).
func (m *Counter) Describe(ch chan<- *prometheus.Desc) {
	m.metric.Describe(ch)
}

// Collect implements CollectorWithInit (prometheus.Collector).
func (m *Counter) Collect(ch chan<- prometheus.Metric) {
	m.metric.Collect(ch)
}

// IsConstrained implements CollectorWithInit.
func (m *Counter) IsConstrained() bool {
	return true
}

// Init implements CollectorWithInit. It creates a zero-valued series for
// every combination of the constrained label values.
func (m *Counter) Init() {
	forEachCombination(m.labels, func(lvs []string) {
		m.metric.WithLabelValues(lvs...).Add(0)
	})
}

func (m *Counter) WithLabelValues(lvs ...string) prometheus.Counter {
	return m.metric.WithLabelValues(lvs...)
}

func forEachCombination(labels []ConstrainedLabel, fn func([]string)) {
	lvs := make([]string, len(labels))
	var walk func(int)
	walk = func(i int) {
		if i == len(labels) {
			fn(append([]string(nil), lvs...))
			return
		}
		for _, v := range labels[i].Values {
			lvs[i] = v
			walk(i + 1)
		}
	}
	walk(0)
}
