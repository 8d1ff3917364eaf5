// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

// MonitorInterface collects the service metrics. Response times feed the
// request middleware, dependency availability is reported by the outbound
// clients (UAA, authorization gateway) as a 0/1 gauge per call outcome.
type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
}
