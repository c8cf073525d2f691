package messaging

import (
	"context"
	"errors"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// ErrPermanent marks a handler failure that redelivery cannot fix
var ErrPermanent = errors.New("permanent failure")

// EventHandler is called for each received ledger event. Returning nil acknowledges the
// event, an error wrapping ErrPermanent drops it, and any other error requests redelivery.
type EventHandler func(ctx context.Context, event *domain.LedgerEvent) error

// Subscriber delivers ledger events in stream order, one at a time
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents blocks, passing events to handler until ctx is cancelled
	SubscribeEvents(ctx context.Context, handler EventHandler) error
	// Close closes the connection and cleans up resources
	Close()
}
