// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type NoopTracer struct {
	tracer trace.Tracer
}

func NewNoopTracer() *NoopTracer {
	return &NoopTracer{
		tracer: trace.NewNoopTracerProvider().Tracer(tracerName),
	}
}

func (t *NoopTracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}
