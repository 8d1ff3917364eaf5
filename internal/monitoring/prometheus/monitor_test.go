// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/onboarding-service/internal/logging"
)

func TestMonitorMetrics(t *testing.T) {
	// metrics register against the default registry, so build the
	// monitor once for all subtests
	monitor := NewMonitor("onboarding-service", logging.NewNoopLogger())

	t.Run("dependency availability accepts the client tag key", func(t *testing.T) {
		if err := monitor.SetDependencyAvailability(map[string]string{"dependency": "uaa"}, 1); err != nil {
			t.Fatalf("expected metric to be set, got %v", err)
		}

		if got := testutil.ToFloat64(monitor.dependencyAvailability); got != 1 {
			t.Fatalf("expected gauge value 1, got %v", got)
		}

		if err := monitor.SetDependencyAvailability(map[string]string{"dependency": "uaa"}, 0); err != nil {
			t.Fatalf("expected metric to be set, got %v", err)
		}

		if got := testutil.ToFloat64(monitor.dependencyAvailability); got != 0 {
			t.Fatalf("expected gauge value 0, got %v", got)
		}
	})

	t.Run("response time observes by route and status", func(t *testing.T) {
		if err := monitor.SetResponseTimeMetric(map[string]string{"route": "/api/v0/status", "status": "200"}, 0.02); err != nil {
			t.Fatalf("expected metric to be observed, got %v", err)
		}
	})

	t.Run("unknown tag key is rejected", func(t *testing.T) {
		if err := monitor.SetDependencyAvailability(map[string]string{"service": "uaa"}, 1); err == nil {
			t.Fatal("expected an error for a mismatched label name")
		}
	})
}
