package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
)

// Config holds the configuration for the NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type jetStreamPublisher struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
}

// NewJetStreamPublisher connects to NATS and ensures the change-event stream
// exists
func NewJetStreamPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{"registry.changes.>"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure change stream: %w", err)
	}

	return &jetStreamPublisher{
		nc:   nc,
		js:   js,
		json: jsonAdapter,
	}, nil
}

// PublishChange publishes a record-change event to NATS JetStream
func (p *jetStreamPublisher) PublishChange(ctx context.Context, event *domain.ChangeEvent) error {
	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if _, err := p.js.Publish(ctx, buildSubject(event), data); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// buildSubject constructs the NATS subject for an event.
// Format: registry.changes.{subject_type}.{operation},
// e.g. registry.changes.household.create
func buildSubject(event *domain.ChangeEvent) string {
	return fmt.Sprintf("registry.changes.%s.%s", event.Subject, event.Operation)
}

// Close closes the NATS connection
func (p *jetStreamPublisher) Close() {
	if p.nc == nil {
		return
	}
	p.nc.Close()
}
