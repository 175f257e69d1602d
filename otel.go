package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/solidground/facade/internal/ver"
	"github.com/solidground/facade/server"
)

func newTracer(cfg server.OtelConfig, version ver.Version) error {
	if !cfg.Trace.Enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.Trace.Endpoint),
	}
	if cfg.Trace.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(server.Name),
			semconv.ServiceNamespace(server.Namespace),
			semconv.ServiceInstanceID(cfg.InstanceID),
			semconv.ServiceVersion(version.Version),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return nil
}

func newMeter(cfg server.OtelConfig, version ver.Version) error {
	if !cfg.Metrics.Enabled {
		return nil
	}
	exp, err := prometheus.New()
	if err != nil {
		return err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exp),
		sdkmetric.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(server.Name),
			semconv.ServiceNamespace(server.Namespace),
			semconv.ServiceInstanceID(cfg.InstanceID),
			semconv.ServiceVersion(version.Version),
		)),
	)
	otel.SetMeterProvider(mp)

	go func() {
		metricsServer := &http.Server{
			Addr:    cfg.Metrics.ListenAddr,
			Handler: promhttp.Handler(),
		}
		if listenErr := metricsServer.ListenAndServe(); listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
			slog.Error("failed to listen on metrics server", tint.Err(listenErr))
		}
	}()
	return nil
}
