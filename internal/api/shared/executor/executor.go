package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/feral-file/ff-propfi-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-propfi-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-propfi-ledger/internal/currency"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/ledger"
	"github.com/feral-file/ff-propfi-ledger/internal/shareunit"
	"github.com/feral-file/ff-propfi-ledger/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// InitializeProperty creates the caller's property
	InitializeProperty(ctx context.Context, caller domain.Address, req dto.InitializePropertyRequest) (*dto.PropertyResponse, error)
	// ListProperty opens a property for sale
	ListProperty(ctx context.Context, caller, address domain.Address, req dto.ListPropertyRequest) (*dto.PropertyResponse, error)
	// UpdateProperty changes the share price and/or issues shares
	UpdateProperty(ctx context.Context, caller, address domain.Address, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	// BuyProperty buys shares at the listed price
	BuyProperty(ctx context.Context, buyer, address domain.Address, req dto.AmountRequest) (*dto.PropertyResponse, error)
	// BuyShares issues shares without payment
	BuyShares(ctx context.Context, address domain.Address, req dto.BuySharesRequest) (*dto.PropertyResponse, error)
	// DepositRent adds to the rent pool
	DepositRent(ctx context.Context, caller, address domain.Address, req dto.AmountRequest) (*dto.PropertyResponse, error)
	// DistributeRent resets the rent pool
	DistributeRent(ctx context.Context, caller, address domain.Address) (*dto.PropertyResponse, error)

	// GetProperty retrieves a property, nil when it does not exist
	GetProperty(ctx context.Context, address domain.Address) (*dto.PropertyResponse, error)
	// GetPropertyRecord retrieves the binary record of a property, nil when it does not exist
	GetPropertyRecord(ctx context.Context, address domain.Address) ([]byte, error)
	// ListProperties retrieves properties with optional filters
	ListProperties(ctx context.Context, owner *domain.Address, listed *bool, limit int, offset uint64) (*dto.PropertyListResponse, error)
	// GetBalances retrieves the currency balance and optionally a share balance of an account
	GetBalances(ctx context.Context, address domain.Address, unit *domain.Address) (*dto.BalanceResponse, error)
	// FundAccount credits base currency to an account
	FundAccount(ctx context.Context, address domain.Address, req dto.AmountRequest) (*dto.BalanceResponse, error)
	// GetEvents retrieves committed events after a sequence
	GetEvents(ctx context.Context, after uint64, limit int) (*dto.EventListResponse, error)
}

type executor struct {
	ledger     ledger.Ledger
	shareUnits shareunit.Ledger
	bank       currency.Bank
	store      store.Store
}

// NewExecutor creates a new API executor
func NewExecutor(l ledger.Ledger, shareUnits shareunit.Ledger, bank currency.Bank, st store.Store) Executor {
	return &executor{ledger: l, shareUnits: shareUnits, bank: bank, store: st}
}

func (e *executor) InitializeProperty(ctx context.Context, caller domain.Address, req dto.InitializePropertyRequest) (*dto.PropertyResponse, error) {
	property, err := e.ledger.InitializeProperty(ctx, caller, req.TotalShares)
	if err != nil {
		return nil, err
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) ListProperty(ctx context.Context, caller, address domain.Address, req dto.ListPropertyRequest) (*dto.PropertyResponse, error) {
	property, err := e.ledger.ListProperty(ctx, caller, address, req.Price)
	if err != nil {
		return nil, err
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) UpdateProperty(ctx context.Context, caller, address domain.Address, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	property, err := e.ledger.UpdateProperty(ctx, caller, address, ledger.UpdatePropertyInput{
		SharePrice: req.SharePrice,
		AddShares:  req.AddShares,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) BuyProperty(ctx context.Context, buyer, address domain.Address, req dto.AmountRequest) (*dto.PropertyResponse, error) {
	property, err := e.ledger.BuyProperty(ctx, buyer, address, req.Amount)
	if err != nil {
		return nil, err
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) BuyShares(ctx context.Context, address domain.Address, req dto.BuySharesRequest) (*dto.PropertyResponse, error) {
	buyer, err := req.Validate()
	if err != nil {
		return nil, err
	}

	property, err := e.ledger.BuyShares(ctx, buyer, address, req.Amount)
	if err != nil {
		return nil, err
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) DepositRent(ctx context.Context, caller, address domain.Address, req dto.AmountRequest) (*dto.PropertyResponse, error) {
	property, err := e.ledger.DepositRent(ctx, caller, address, req.Amount)
	if err != nil {
		return nil, err
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) DistributeRent(ctx context.Context, caller, address domain.Address) (*dto.PropertyResponse, error) {
	property, err := e.ledger.DistributeRent(ctx, caller, address)
	if err != nil {
		return nil, err
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) GetProperty(ctx context.Context, address domain.Address) (*dto.PropertyResponse, error) {
	property, err := e.ledger.GetProperty(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, nil
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get property: %v", err))
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) GetPropertyRecord(ctx context.Context, address domain.Address) ([]byte, error) {
	property, err := e.ledger.GetProperty(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, nil
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get property: %v", err))
	}

	record, err := property.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode property record: %w", err)
	}
	return record, nil
}

func (e *executor) ListProperties(ctx context.Context, owner *domain.Address, listed *bool, limit int, offset uint64) (*dto.PropertyListResponse, error) {
	properties, total, err := e.ledger.ListProperties(ctx, store.PropertyQueryFilter{
		Owner:  owner,
		Listed: listed,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list properties: %v", err))
	}

	response := &dto.PropertyListResponse{
		Properties: make([]*dto.PropertyResponse, 0, len(properties)),
		Total:      total,
	}
	for _, p := range properties {
		response.Properties = append(response.Properties, dto.MapPropertyToDTO(p))
	}

	next := offset + uint64(len(properties))
	if len(properties) > 0 && next < total {
		response.Offset = &next
	}

	return response, nil
}

func (e *executor) GetBalances(ctx context.Context, address domain.Address, unit *domain.Address) (*dto.BalanceResponse, error) {
	balance, err := e.bank.BalanceOf(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get currency balance: %v", err))
	}

	response := &dto.BalanceResponse{Address: address.String(), Currency: balance}
	if unit != nil {
		shares, err := e.shareUnits.BalanceOf(ctx, *unit, address)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get share balance: %v", err))
		}
		response.Shares = &dto.ShareBalance{Unit: unit.String(), Balance: shares}
	}

	return response, nil
}

func (e *executor) FundAccount(ctx context.Context, address domain.Address, req dto.AmountRequest) (*dto.BalanceResponse, error) {
	balance, err := e.bank.Fund(ctx, address, req.Amount)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{Address: address.String(), Currency: balance}, nil
}

func (e *executor) GetEvents(ctx context.Context, after uint64, limit int) (*dto.EventListResponse, error) {
	events, err := e.store.GetLedgerEvents(ctx, store.LedgerEventQueryFilter{After: after, Limit: limit})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get events: %v", err))
	}

	response := &dto.EventListResponse{Events: make([]*dto.EventResponse, 0, len(events))}
	for _, ev := range events {
		response.Events = append(response.Events, dto.MapEventToDTO(ev))
	}
	if len(events) > 0 {
		next := events[len(events)-1].Sequence
		response.Next = &next
	}

	return response, nil
}
