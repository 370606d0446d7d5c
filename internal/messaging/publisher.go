package messaging

import (
	"context"

	"github.com/openbarangay/registry/internal/domain"
)

// Publisher defines the interface for publishing record-change events
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishChange publishes a record-change event to the message broker
	PublishChange(ctx context.Context, event *domain.ChangeEvent) error
	// Close closes the connection
	Close()
}
