// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// initializer contains methods for metrics initialization and checking
// constraints.
type initializer interface {
	IsConstrained() bool
	Init()
}

// CollectorWithInit extends prometheus.Collector with initializer.
type CollectorWithInit interface {
	prometheus.Collector
	initializer
}

// Group extends prometheus.Registerer with CollectorWithInit.
// It represents a sub-registry of the root prometheus.Registry.
type Group interface {
	prometheus.Registerer
	CollectorWithInit
	ExtendInit(func())
}

// metricsGroup wraps prometheus.Registry and implements Group
type metricsGroup struct {
	registry *prometheus.Registry
	// If constrained is true, group will accept collectors implementing
	// initializer only if they are constrained.
	constrained bool
	initFunc    func()
}

// NewMetricsGroup creates a new Group.
func NewMetricsGroup(constrained bool) Group {
	return &metricsGroup{
		registry:    prometheus.NewPedanticRegistry(),
		constrained: constrained,
		initFunc:    func() {},
	}
}

// Describe implements Group (prometheus.Collector).
func (r *metricsGroup) Describe(ch chan<- *prometheus.Desc) {
	r.registry.Describe(ch)
}

// Collect implements Group (prometheus.Collector).
func (r *metricsGroup) Collect(ch chan<- prometheus.Metric) {
	r.registry.Collect(ch)
}

// Register implements Group (prometheus.Registerer).
//
// It wraps the Register method of the underlying registry. Additionally, if
// the collector implements initializer, it:
//   - checks constraints - attempt to register an unconstrained collector in
//     a constrained group results in an error
//   - extends the Init method with initialization of the registered collector
func (r *metricsGroup) Register(c prometheus.Collector) error {
	cc, hasInit := c.(initializer)
	if hasInit && r.IsConstrained() && !cc.IsConstrained() {
		return errors.New("can't register unconstrained metrics in a constrained group")
	}
	if err := r.registry.Register(c); err != nil {
		return err
	}
	if hasInit {
		r.ExtendInit(cc.Init)
	}
	return nil
}

// MustRegister implements Group (prometheus.Registerer).
func (r *metricsGroup) MustRegister(cs ...prometheus.Collector) {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Unregister implements Group (prometheus.Registerer).
func (r *metricsGroup) Unregister(c prometheus.Collector) bool {
	return r.registry.Unregister(c)
}

// IsConstrained implements Group (initializer).
func (r *metricsGroup) IsConstrained() bool {
	return r.constrained
}

// Init implements Group (initializer).
func (r *metricsGroup) Init() {
	if r.initFunc != nil {
		r.initFunc()
	}
}

// ExtendInit extends the metricsGroup Init method.
//
// For metrics implementing CollectorWithInit this happens on registration,
// so it only needs calling explicitly for plain prometheus collectors.
func (r *metricsGroup) ExtendInit(init func()) {
	if init == nil {
		return
	}
	if r.initFunc == nil {
		r.initFunc = init
		return
	}
	oldInit := r.initFunc
	r.initFunc = func() {
		oldInit()
		init()
	}
}
