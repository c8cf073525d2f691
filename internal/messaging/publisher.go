package messaging

import (
	"context"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// Publisher defines the interface for publishing ledger events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a committed ledger event. Publishing the same event twice is
	// deduplicated by the broker using the event id.
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close closes the connection
	Close()
}
