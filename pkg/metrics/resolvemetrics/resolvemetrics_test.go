// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package resolvemetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/cilium/oserror/pkg/metrics"
)

func TestOutcomeLabels(t *testing.T) {
	for o := Module; o <= InvalidText; o++ {
		assert.NotEmpty(t, o.String(), "outcome %d has no label", o)
	}
	assert.Len(t, outcomeLabel.Values, len(outcomeLabelValues))
}

func TestResolutionsTotalInc(t *testing.T) {
	group := metrics.NewMetricsGroup(true)
	RegisterMetrics(group)
	group.Init()
	assert.Equal(t, len(outcomeLabelValues), testutil.CollectAndCount(group, "oserror_resolutions_total"))

	before := testutil.ToFloat64(GetResolutionsTotal(System))
	ResolutionsTotalInc(System)
	assert.InDelta(t, before+1, testutil.ToFloat64(GetResolutionsTotal(System)), 0)
}
