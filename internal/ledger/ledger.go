package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-propfi-ledger/internal/adapter"
	"github.com/feral-file/ff-propfi-ledger/internal/currency"
	"github.com/feral-file/ff-propfi-ledger/internal/derivation"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
	"github.com/feral-file/ff-propfi-ledger/internal/shareunit"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

// UpdatePropertyInput holds the optional changes of UpdateProperty. Nil fields are left unchanged.
type UpdatePropertyInput struct {
	SharePrice *uint64
	AddShares  *uint64
}

// Ledger applies the property operations. Each mutating call is one transaction: it either
// commits the record change, its collaborator effects and exactly one event, or nothing.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// InitializeProperty creates the caller's property with totalShares available
	InitializeProperty(ctx context.Context, caller domain.Address, totalShares uint64) (*domain.Property, error)
	// ListProperty opens the property for sale at price per share
	ListProperty(ctx context.Context, caller, address domain.Address, price uint64) (*domain.Property, error)
	// UpdateProperty changes the share price and/or issues additional shares
	UpdateProperty(ctx context.Context, caller, address domain.Address, input UpdatePropertyInput) (*domain.Property, error)
	// BuyProperty sells amount shares to buyer at the listed price
	BuyProperty(ctx context.Context, buyer, address domain.Address, amount uint64) (*domain.Property, error)
	// BuyShares issues amount shares to buyer without payment
	BuyShares(ctx context.Context, buyer, address domain.Address, amount uint64) (*domain.Property, error)
	// DepositRent adds amount to the rent pool
	DepositRent(ctx context.Context, caller, address domain.Address, amount uint64) (*domain.Property, error)
	// DistributeRent resets the rent pool
	DistributeRent(ctx context.Context, caller, address domain.Address) (*domain.Property, error)
	// GetProperty returns the committed property at address
	GetProperty(ctx context.Context, address domain.Address) (*domain.Property, error)
	// ListProperties returns committed properties matching filter and the total count
	ListProperties(ctx context.Context, filter store.PropertyQueryFilter) ([]*domain.Property, uint64, error)
	// PropertyAddress returns the record address of owner's property
	PropertyAddress(owner domain.Address) (domain.Address, error)
}

type ledger struct {
	store      store.Store
	deriver    derivation.Deriver
	shareUnits shareunit.Ledger
	bank       currency.Bank
	clock      adapter.Clock
	json       adapter.JSON
}

// NewLedger creates a property ledger
func NewLedger(
	st store.Store,
	deriver derivation.Deriver,
	shareUnits shareunit.Ledger,
	bank currency.Bank,
	clock adapter.Clock,
	json adapter.JSON,
) Ledger {
	return &ledger{
		store:      st,
		deriver:    deriver,
		shareUnits: shareUnits,
		bank:       bank,
		clock:      clock,
		json:       json,
	}
}

func (l *ledger) InitializeProperty(ctx context.Context, caller domain.Address, totalShares uint64) (*domain.Property, error) {
	if totalShares == 0 {
		return nil, domain.ErrZeroAmount
	}

	address, bump, err := l.deriver.FindAddress(domain.PropertySeeds(caller))
	if err != nil {
		return nil, fmt.Errorf("failed to derive property address: %w", err)
	}
	unitID, _, err := l.deriver.FindAddress(domain.ShareUnitSeeds(address))
	if err != nil {
		return nil, fmt.Errorf("failed to derive share unit id: %w", err)
	}

	property := &domain.Property{
		Address:         address,
		Owner:           caller,
		TotalShares:     totalShares,
		AvailableShares: totalShares,
		ShareUnitID:     unitID,
		Bump:            bump,
		CreatedAt:       l.clock.Now().UTC().Truncate(time.Second),
	}

	err = l.store.Transaction(ctx, func(tx store.Tx) error {
		if err := tx.CreateProperty(ctx, property); err != nil {
			return err
		}
		// The property record is the sole mint authority of its shares
		if _, err := l.shareUnits.CreateUnit(ctx, tx, unitID, address, address); err != nil {
			return err
		}
		return l.appendEvent(ctx, tx, domain.EventTypePropertyInitialized, address, domain.PropertyInitialized{
			Property:    address,
			Owner:       caller,
			TotalShares: totalShares,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Property initialized",
		zap.String("property", address.String()),
		zap.String("owner", caller.String()),
		zap.Uint64("totalShares", totalShares))

	return property, nil
}

func (l *ledger) ListProperty(ctx context.Context, caller, address domain.Address, price uint64) (*domain.Property, error) {
	return l.mutate(ctx, address, func(tx store.Tx, property *domain.Property) error {
		if !property.IsOwnedBy(caller) {
			return domain.ErrNotOwner
		}
		if price == 0 {
			return domain.ErrPriceTooLow
		}

		property.IsListed = true
		property.SharePrice = price

		if err := tx.SaveProperty(ctx, property); err != nil {
			return err
		}
		return l.appendEvent(ctx, tx, domain.EventTypePropertyListed, address, domain.PropertyListed{
			Property: address,
			Owner:    caller,
			Price:    price,
		})
	})
}

func (l *ledger) UpdateProperty(ctx context.Context, caller, address domain.Address, input UpdatePropertyInput) (*domain.Property, error) {
	return l.mutate(ctx, address, func(tx store.Tx, property *domain.Property) error {
		if !property.IsOwnedBy(caller) {
			return domain.ErrNotOwner
		}

		if input.SharePrice != nil {
			if *input.SharePrice == 0 {
				return domain.ErrPriceTooLow
			}
			property.SharePrice = *input.SharePrice
		}

		if input.AddShares != nil && *input.AddShares > 0 {
			total, err := domain.CheckedAdd(property.TotalShares, *input.AddShares)
			if err != nil {
				return err
			}
			available, err := domain.CheckedAdd(property.AvailableShares, *input.AddShares)
			if err != nil {
				return err
			}
			property.TotalShares = total
			property.AvailableShares = available
		}

		if err := tx.SaveProperty(ctx, property); err != nil {
			return err
		}
		return l.appendEvent(ctx, tx, domain.EventTypePropertyUpdated, address, domain.PropertyUpdated{
			Property:        address,
			Owner:           caller,
			SharePrice:      property.SharePrice,
			TotalShares:     property.TotalShares,
			AvailableShares: property.AvailableShares,
		})
	})
}

func (l *ledger) BuyProperty(ctx context.Context, buyer, address domain.Address, amount uint64) (*domain.Property, error) {
	if amount == 0 {
		return nil, domain.ErrZeroAmount
	}

	return l.mutate(ctx, address, func(tx store.Tx, property *domain.Property) error {
		if !property.IsListed {
			return domain.ErrNotListed
		}
		if amount > property.AvailableShares {
			return domain.ErrNotEnoughShares
		}
		// A listed record always carries a price
		if property.SharePrice == 0 {
			return domain.ErrNotListed
		}

		totalCost, err := domain.CheckedMul(amount, property.SharePrice)
		if err != nil {
			return err
		}

		if err := l.bank.Transfer(ctx, tx, buyer, property.Owner, totalCost); err != nil {
			return err
		}
		if err := l.issueShares(ctx, tx, property, buyer, amount); err != nil {
			return err
		}

		return l.appendEvent(ctx, tx, domain.EventTypePropertyPurchased, address, domain.PropertyPurchased{
			Property:  address,
			Buyer:     buyer,
			Amount:    amount,
			TotalCost: totalCost,
		})
	})
}

func (l *ledger) BuyShares(ctx context.Context, buyer, address domain.Address, amount uint64) (*domain.Property, error) {
	if amount == 0 {
		return nil, domain.ErrZeroAmount
	}

	return l.mutate(ctx, address, func(tx store.Tx, property *domain.Property) error {
		if amount > property.AvailableShares {
			return domain.ErrNotEnoughShares
		}

		if err := l.issueShares(ctx, tx, property, buyer, amount); err != nil {
			return err
		}

		return l.appendEvent(ctx, tx, domain.EventTypeSharesIssued, address, domain.SharesIssued{
			Property: address,
			Buyer:    buyer,
			Amount:   amount,
		})
	})
}

func (l *ledger) DepositRent(ctx context.Context, caller, address domain.Address, amount uint64) (*domain.Property, error) {
	if amount == 0 {
		return nil, domain.ErrZeroAmount
	}

	return l.mutate(ctx, address, func(tx store.Tx, property *domain.Property) error {
		pool, err := domain.CheckedAdd(property.RentPool, amount)
		if err != nil {
			return err
		}
		property.RentPool = pool

		if err := tx.SaveProperty(ctx, property); err != nil {
			return err
		}
		return l.appendEvent(ctx, tx, domain.EventTypeRentDeposited, address, domain.RentDeposited{
			Property:  address,
			Depositor: caller,
			Amount:    amount,
			RentPool:  pool,
		})
	})
}

func (l *ledger) DistributeRent(ctx context.Context, caller, address domain.Address) (*domain.Property, error) {
	return l.mutate(ctx, address, func(tx store.Tx, property *domain.Property) error {
		if !property.IsOwnedBy(caller) {
			return domain.ErrNotOwner
		}

		// No payout to shareholders yet; the pool is only reset
		amount := property.RentPool
		property.RentPool = 0

		if err := tx.SaveProperty(ctx, property); err != nil {
			return err
		}
		return l.appendEvent(ctx, tx, domain.EventTypeRentDistributed, address, domain.RentDistributed{
			Property: address,
			Owner:    caller,
			Amount:   amount,
		})
	})
}

func (l *ledger) GetProperty(ctx context.Context, address domain.Address) (*domain.Property, error) {
	return l.store.GetProperty(ctx, address)
}

func (l *ledger) ListProperties(ctx context.Context, filter store.PropertyQueryFilter) ([]*domain.Property, uint64, error) {
	return l.store.GetProperties(ctx, filter)
}

func (l *ledger) PropertyAddress(owner domain.Address) (domain.Address, error) {
	address, _, err := l.deriver.FindAddress(domain.PropertySeeds(owner))
	if err != nil {
		return domain.ZeroAddress, fmt.Errorf("failed to derive property address: %w", err)
	}
	return address, nil
}

// mutate locks the property at address, applies fn and returns the resulting record
func (l *ledger) mutate(ctx context.Context, address domain.Address, fn func(tx store.Tx, property *domain.Property) error) (*domain.Property, error) {
	var result *domain.Property
	err := l.store.Transaction(ctx, func(tx store.Tx) error {
		property, err := tx.LockProperty(ctx, address)
		if err != nil {
			return err
		}
		if err := fn(tx, property); err != nil {
			return err
		}
		result = property
		return nil
	})
	if err != nil {
		logger.DebugCtx(ctx, "Property operation rejected",
			zap.String("property", address.String()),
			zap.Error(err))
		return nil, err
	}
	return result, nil
}

// issueShares takes amount from the available shares and mints them to recipient
// under the property's authority
func (l *ledger) issueShares(ctx context.Context, tx store.Tx, property *domain.Property, recipient domain.Address, amount uint64) error {
	available, err := domain.CheckedSub(property.AvailableShares, amount)
	if err != nil {
		return err
	}
	property.AvailableShares = available

	if err := tx.SaveProperty(ctx, property); err != nil {
		return err
	}

	proof := domain.AuthorityProof{
		Seeds: domain.PropertySeeds(property.Owner),
		Bump:  property.Bump,
	}
	if _, err := l.shareUnits.Mint(ctx, tx, property.ShareUnitID, recipient, amount, proof); err != nil {
		return fmt.Errorf("failed to mint shares: %w", err)
	}
	return nil
}

// appendEvent records the event of the running operation in the outbox
func (l *ledger) appendEvent(ctx context.Context, tx store.Tx, eventType domain.EventType, property domain.Address, payload interface{}) error {
	data, err := l.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	now := l.clock.Now()
	return tx.AppendLedgerEvent(ctx, &domain.LedgerEvent{
		EventID:   ulid.MustNewDefault(now).String(),
		Type:      eventType,
		Property:  property,
		Payload:   data,
		CreatedAt: now.UTC(),
	})
}
