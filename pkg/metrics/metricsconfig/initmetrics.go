// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package metricsconfig

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/cilium/oserror/pkg/metrics"
	"github.com/cilium/oserror/pkg/metrics/resolvemetrics"
)

var (
	resolveGroup = metrics.NewMetricsGroup(true)
	defaultOnce  sync.Once
)

func init() {
	resolvemetrics.RegisterMetrics(resolveGroup)
}

// InitAllMetrics registers the library's metrics, and the common Go runtime
// collectors, into the given registry.
func InitAllMetrics(registry *prometheus.Registry) {
	registry.MustRegister(resolveGroup)
	resolveGroup.Init()

	// register common third-party collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// InitDefaultMetrics registers everything into the root registry returned by
// metrics.GetRegistry. It is safe to call more than once.
func InitDefaultMetrics() *prometheus.Registry {
	registry := metrics.GetRegistry()
	defaultOnce.Do(func() {
		InitAllMetrics(registry)
	})
	return registry
}
