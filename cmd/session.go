package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/zjrosen/talentdb/internal/api"
	"github.com/zjrosen/talentdb/internal/config"
	"github.com/zjrosen/talentdb/internal/log"
	"github.com/zjrosen/talentdb/internal/tracing"
)

const tracingShutdownTimeout = 5 * time.Second

// session bundles the API client and the tracing provider behind it.
type session struct {
	client   *api.Client
	provider *tracing.Provider
}

// openSession validates the loaded configuration and builds a client for it.
func openSession(version string) (*session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing.ToTracing())
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	if provider.Enabled() {
		log.Info(log.CatTrace, "Tracing enabled", "exporter", cfg.Tracing.Exporter)
	}

	client := api.New(cfg.API.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		api.WithTracer(provider.Tracer()),
		api.WithUserAgent("talentdb/"+version),
	)
	return &session{client: client, provider: provider}, nil
}

// Close flushes pending spans.
func (s *session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
	defer cancel()
	if err := s.provider.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
	}
}
