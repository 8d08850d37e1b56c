// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package resolvemetrics

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cilium/oserror/pkg/metrics"
	"github.com/cilium/oserror/pkg/metrics/consts"
)

type Outcome int

const (
	// Message found in a caller-supplied module
	Module Outcome = iota
	// Message found through the NT status heuristic
	NTModule
	// Message found in the system message table
	System
	// Message returned by the errno lookup
	Strerror
	// Every lookup came back empty or failed; a placeholder was synthesized
	LookupFailed
	// The message could not be decoded as text
	InvalidText
)

var outcomeLabelValues = map[Outcome]string{
	Module:       "module",
	NTModule:     "nt_module",
	System:       "system",
	Strerror:     "strerror",
	LookupFailed: "lookup_failed",
	InvalidText:  "invalid_text",
}

func (o Outcome) String() string {
	return outcomeLabelValues[o]
}

var (
	// Constrained label for resolution outcome
	outcomeLabel = metrics.ConstrainedLabel{
		Name:   "outcome",
		Values: slices.Sorted(maps.Values(outcomeLabelValues)),
	}

	ResolutionsTotal = metrics.MustNewCounter(
		metrics.NewOpts(
			consts.MetricsNamespace, "", "resolutions_total",
			"The total number of error code resolutions by outcome.",
			nil, []metrics.ConstrainedLabel{outcomeLabel},
		),
	)
)

func RegisterMetrics(group metrics.Group) {
	group.MustRegister(ResolutionsTotal)
}

// Get a new handle on a ResolutionsTotal metric for an Outcome
func GetResolutionsTotal(o Outcome) prometheus.Counter {
	return ResolutionsTotal.WithLabelValues(o.String())
}

// Increment ResolutionsTotal for an Outcome
func ResolutionsTotalInc(o Outcome) {
	GetResolutionsTotal(o).Inc()
}
