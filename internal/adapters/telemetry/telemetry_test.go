package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/mcvm/internal/adapters/telemetry"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.Tracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewTracer(tp, "test")
}

func TestSpan_Attributes(t *testing.T) {
	sr, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "resolve instance")
	span.SetAttribute("instance", "client")
	span.SetAttribute("packages", 3)
	span.SetAttribute("forced", true)
	span.SetAttribute("ids", []string{"a", "b"})
	span.SetAttribute("package", domain.NewPackageID("sodium"))
	span.SetAttribute("chain", domain.NewPackageIDs([]string{"fabric-api", "sodium"}))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "resolve instance", ended[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("instance", "client"),
		attribute.Int("packages", 3),
		attribute.Bool("forced", true),
		attribute.StringSlice("ids", []string{"a", "b"}),
		attribute.String("package", "sodium"),
		attribute.StringSlice("chain", []string{"fabric-api", "sodium"}),
	}, ended[0].Attributes())
}

func TestSpan_RecordError(t *testing.T) {
	sr, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "install package")
	span.RecordError(nil)
	span.RecordError(errors.New("download failed"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "download failed", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
}

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Debug(gomock.Cond(func(x any) bool {
		msg, ok := x.(string)
		return ok && strings.HasPrefix(msg, "sync repository repository=core failed: offline (")
	})).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewTracer(tp, "test")

	_, span := tracer.Start(context.Background(), "sync repository")
	span.SetAttribute("repository", "core")
	span.RecordError(errors.New("offline"))
	span.End()
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	assert.NotPanics(t, func() {
		_, span := tp.Tracer("test").Start(context.Background(), "noop")
		span.End()
	})
}
