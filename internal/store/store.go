package store

import (
	"context"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// Store defines the interface for ledger persistence
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,Tx=MockTx
type Store interface {
	// Transaction runs fn atomically. Every write made through tx is committed when fn returns
	// nil and discarded when it returns an error.
	Transaction(ctx context.Context, fn func(tx Tx) error) error
	// GetProperty retrieves a property by its record address
	GetProperty(ctx context.Context, address domain.Address) (*domain.Property, error)
	// GetProperties retrieves properties matching filter with the total count
	GetProperties(ctx context.Context, filter PropertyQueryFilter) ([]*domain.Property, uint64, error)
	// GetShareUnit retrieves a share unit by id
	GetShareUnit(ctx context.Context, id domain.Address) (*domain.ShareUnit, error)
	// GetShareBalance retrieves the share balance of owner, zero when none
	GetShareBalance(ctx context.Context, unitID, owner domain.Address) (uint64, error)
	// GetCurrencyBalance retrieves the base currency balance of owner, zero when none
	GetCurrencyBalance(ctx context.Context, owner domain.Address) (uint64, error)
	// GetLedgerEvents retrieves committed events in sequence order
	GetLedgerEvents(ctx context.Context, filter LedgerEventQueryFilter) ([]*domain.LedgerEvent, error)
	// GetRelayCursor retrieves the last relayed event sequence for a relay
	GetRelayCursor(ctx context.Context, name string) (uint64, error)
	// SetRelayCursor stores the last relayed event sequence for a relay
	SetRelayCursor(ctx context.Context, name string, sequence uint64) error
}

// Tx is the write side of a Store transaction. Records read through a Lock method stay
// locked against other transactions until the transaction ends.
type Tx interface {
	// CreateProperty inserts a new property, failing with domain.ErrPropertyAlreadyExists
	CreateProperty(ctx context.Context, property *domain.Property) error
	// LockProperty reads a property for update, failing with domain.ErrPropertyNotFound
	LockProperty(ctx context.Context, address domain.Address) (*domain.Property, error)
	// SaveProperty writes back a property previously locked in this transaction
	SaveProperty(ctx context.Context, property *domain.Property) error
	// CreateShareUnit inserts a new share unit, failing with domain.ErrShareUnitAlreadyExists
	CreateShareUnit(ctx context.Context, unit *domain.ShareUnit) error
	// LockShareUnit reads a share unit for update, failing with domain.ErrShareUnitNotFound
	LockShareUnit(ctx context.Context, id domain.Address) (*domain.ShareUnit, error)
	// SaveShareUnit writes back a share unit previously locked in this transaction
	SaveShareUnit(ctx context.Context, unit *domain.ShareUnit) error
	// CreditShares adds amount to a share balance and returns the new balance
	CreditShares(ctx context.Context, unitID, owner domain.Address, amount uint64) (uint64, error)
	// CreditCurrency adds amount to a currency balance and returns the new balance
	CreditCurrency(ctx context.Context, owner domain.Address, amount uint64) (uint64, error)
	// TransferCurrency moves amount from one currency balance to another,
	// failing with domain.ErrInsufficientFunds
	TransferCurrency(ctx context.Context, from, to domain.Address, amount uint64) error
	// AppendLedgerEvent adds an event to the outbox. Sequence is set when the transaction commits.
	AppendLedgerEvent(ctx context.Context, event *domain.LedgerEvent) error
}

// PropertyQueryFilter narrows GetProperties
type PropertyQueryFilter struct {
	Owner  *domain.Address
	Listed *bool
	Limit  int
	Offset uint64
}

// LedgerEventQueryFilter narrows GetLedgerEvents
type LedgerEventQueryFilter struct {
	// After returns only events with a greater sequence
	After    uint64
	Property *domain.Address
	Limit    int
}

const (
	// DefaultQueryLimit is applied when a filter has no limit
	DefaultQueryLimit = 100
	// MaxQueryLimit caps any filter limit
	MaxQueryLimit = 1000
)

// normalizeLimit applies DefaultQueryLimit and MaxQueryLimit
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultQueryLimit
	}
	return min(limit, MaxQueryLimit)
}
