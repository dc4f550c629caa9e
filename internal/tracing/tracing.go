// Package tracing wires OpenTelemetry for the terminal. When no trace file is
// configured the no-op tracer is returned, so callers never branch on whether
// tracing is on.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	ServiceName    = "vfs-terminal"
	ServiceVersion = "0.1.0"
	tracerName     = "github.com/Neev4n/vfs-terminal-go"
)

// Shutdown flushes and releases the exporter.
type Shutdown func(ctx context.Context) error

// Setup returns a tracer writing spans as JSON to outputFile. An empty
// outputFile yields a no-op tracer.
func Setup(outputFile string) (trace.Tracer, Shutdown, error) {
	if outputFile == "" {
		return noop.NewTracerProvider().Tracer(tracerName), func(context.Context) error { return nil }, nil
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace file %s: %w", outputFile, err)
	}

	tracer, shutdown, err := setupWriter(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return tracer, func(ctx context.Context) error {
		defer f.Close()
		return shutdown(ctx)
	}, nil
}

func setupWriter(w io.Writer) (trace.Tracer, Shutdown, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	return WithExporter(exporter)
}

// WithExporter builds a tracer around any span exporter.
func WithExporter(exporter sdktrace.SpanExporter) (trace.Tracer, Shutdown, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", ServiceName),
			attribute.String("service.version", ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)

	return tp.Tracer(tracerName), tp.Shutdown, nil
}
