// Package pubsub ships audit events to an external sink.
package pubsub

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fileauth/config"
	"fileauth/internal/domain/service"
)

// Supported audit providers.
const (
	ProviderNone   = "none"
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher is a no-op implementation when audit publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher(logger *slog.Logger) service.AuditPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Audit publishing disabled, skipping",
		slog.String("action", string(event.Action)),
		slog.String("event_id", event.ID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for AuditPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAuditPublisher creates an AuditPublisher based on configuration
func NewAuditPublisher(params PublisherParams) (service.AuditPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.Audit, params.Logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing AuditPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.AuditConfig, logger *slog.Logger) (service.AuditPublisher, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNone {
		logger.Info("Audit publishing not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for audit events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for audit events",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown audit provider: %s", cfg.Provider)
	}
}

// Module provides the audit publisher FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAuditPublisher),
)
