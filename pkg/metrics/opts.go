// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package metrics

import (
	"errors"
	"fmt"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

// ConstrainedLabel is a label whose possible values are known upfront.
type ConstrainedLabel struct {
	Name   string
	Values []string
}

// Opts extends prometheus.Opts with constrained labels.
//
// Constrained labels will be replaced with an empty string if a value outside
// of the list is passed.
type Opts struct {
	prometheus.Opts
	ConstrainedLabels []ConstrainedLabel
}

func NewOpts(
	namespace, subsystem, name, help string,
	constLabels prometheus.Labels, constrainedLabels []ConstrainedLabel,
) Opts {
	return Opts{
		Opts: prometheus.Opts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		},
		ConstrainedLabels: constrainedLabels,
	}
}

// getVariableLabels is a helper function to retrieve the full label list for
// a metric.
//
// The return type is prometheus.ConstrainedLabels, which can be passed (as
// prometheus.ConstrainableLabels) to functions from prometheus library that
// define metrics with variable labels.
func getVariableLabels(opts *Opts) (prometheus.ConstrainedLabels, error) {
	promLabels := make(prometheus.ConstrainedLabels, len(opts.ConstrainedLabels))
	seen := make([]string, 0, len(opts.ConstrainedLabels))
	for i, label := range opts.ConstrainedLabels {
		if label.Name == "" {
			return nil, errors.New("label name can't be empty")
		}
		if slices.Contains(seen, label.Name) {
			return nil, fmt.Errorf("duplicate label %q", label.Name)
		}
		if len(label.Values) == 0 {
			return nil, fmt.Errorf("constrained label %q has no values", label.Name)
		}
		seen = append(seen, label.Name)
		promLabels[i] = prometheus.ConstrainedLabel{
			Name: label.Name,
			Constraint: func(value string) string {
				if slices.Contains(label.Values, value) {
					return value
				}
				// If the value is not in the list of possible values,
				// replace it with an empty string.
				return ""
			},
		}
	}
	return promLabels, nil
}
