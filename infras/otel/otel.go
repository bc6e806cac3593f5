package otel

import (
	"context"
	"fmt"
	"jamat/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
	Shutdown(ctx context.Context) error
}

type provider struct {
	tracers *trace.TracerProvider
}

func (p *provider) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := p.tracers.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// Shutdown flushes pending spans.
func (p *provider) Shutdown(ctx context.Context) error {
	if err := p.tracers.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}

	return nil
}

// New exports spans over OTLP gRPC. Without an endpoint spans are still created, so scopes keep
// working, but nothing leaves the process.
func New(cfg *config.Config) Otel {
	settings := cfg.External.Otel

	options := []trace.TracerProviderOption{
		trace.WithResource(serviceResource(cfg)),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(settings.SampleRatio))),
	}

	if settings.Endpoint == "" {
		log.Info().Msg("No OTLP endpoint configured, traces will not be exported")
	} else {
		exporter, err := otlptracegrpc.New(context.Background(),
			otlptracegrpc.WithEndpoint(settings.Endpoint),
			otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create OTLP exporter")
		}

		options = append(options, trace.WithBatcher(exporter))

		log.Info().Str("endpoint", settings.Endpoint).Float64("sample_ratio", settings.SampleRatio).Msg("Exporting traces")
	}

	tracers := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tracers)

	return &provider{tracers: tracers}
}

func serviceResource(cfg *config.Config) *resource.Resource {
	attributes := []attribute.KeyValue{semconv.ServiceNameKey.String(cfg.App.Name)}

	if cfg.Server.Env != "" {
		attributes = append(attributes, semconv.DeploymentEnvironmentKey.String(cfg.Server.Env))
	}

	return resource.NewWithAttributes(semconv.SchemaURL, attributes...)
}
