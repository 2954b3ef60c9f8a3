package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer opens spans around resolution, installation and repository sync.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one traced step. Attribute values may be package ids, which are
// recorded by name.
type Span interface {
	End()
	// RecordError marks the span as failed. A nil error is ignored.
	RecordError(err error)
	SetAttribute(key string, value any)
}
