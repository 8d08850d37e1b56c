// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

// The metrics package provides a small set of helpers (wrappers around
// [prometheus Go library](https://pkg.go.dev/github.com/prometheus/client_golang/prometheus))
// for defining and registering the library's prometheus metrics.
//
// `Group` interface and `metricsGroup` struct implementing it are wrappers
// around `prometheus.Registry` intended to define sub-registries of the root
// registry. Collectors registered in a group that implement `initializer`
// are initialized together when the group is, so every known label
// combination is exported from the first scrape.
//
// `Opts` struct is a wrapper around `prometheus.Opts` that additionally
// carries `ConstrainedLabel`s, i.e. labels whose values are known upfront.
// Values outside of the list are replaced with an empty string, which keeps
// cardinality fixed.
//
// `Counter` struct is a wrapper around `prometheus.CounterVec` with
// constrained labels only.
package metrics
