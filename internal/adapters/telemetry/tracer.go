// Package telemetry adapts OpenTelemetry tracing to ports.Tracer.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
)

// Tracer starts engine spans on an OpenTelemetry provider.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer named name on tp.
func NewTracer(tp trace.TracerProvider, name string) *Tracer {
	return &Tracer{tracer: tp.Tracer(name)}
}

// Start opens a span that ends when the returned span's End is called.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, s := t.tracer.Start(ctx, name)
	return ctx, span{s}
}

type span struct {
	trace.Span
}

// RecordError marks the span as failed. A nil error is ignored.
func (s span) RecordError(err error) {
	if err == nil {
		return
	}
	s.Span.RecordError(err)
	s.SetStatus(codes.Error, err.Error())
}

func (s span) End() {
	s.Span.End()
}

func (s span) SetAttribute(key string, value any) {
	s.SetAttributes(toAttribute(key, value))
}

// toAttribute maps engine values onto OpenTelemetry attribute types.
// Package ids are recorded by name.
func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case domain.PackageID:
		return attribute.String(key, v.String())
	case []domain.PackageID:
		names := make([]string, len(v))
		for i, id := range v {
			names[i] = id.String()
		}
		return attribute.StringSlice(key, names)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
