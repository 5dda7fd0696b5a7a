// Package mocks provides an otel.Otel whose spans are never recorded or exported.
package mocks

import (
	"context"

	"luxhome/infras/otel"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type noopOtel struct {
	tracer oteltrace.Tracer
}

func (o noopOtel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	ctx, span := o.tracer.Start(ctx, spanName)

	return ctx, otel.NewScope(span)
}

func (noopOtel) Shutdown(context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return noopOtel{tracer: noop.NewTracerProvider().Tracer("")}
}
