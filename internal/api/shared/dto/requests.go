package dto

import (
	"fmt"

	apierrors "github.com/feral-file/ff-propfi-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// InitializePropertyRequest represents the request body for creating a property
type InitializePropertyRequest struct {
	TotalShares uint64 `json:"total_shares"`
}

// ListPropertyRequest represents the request body for listing a property for sale
type ListPropertyRequest struct {
	Price uint64 `json:"price"`
}

// UpdatePropertyRequest represents the request body for updating a property.
// Omitted fields are left unchanged.
type UpdatePropertyRequest struct {
	SharePrice *uint64 `json:"share_price"`
	AddShares  *uint64 `json:"add_shares"`
}

// Validate validates the request body
func (r *UpdatePropertyRequest) Validate() error {
	if r.SharePrice == nil && r.AddShares == nil {
		return apierrors.NewValidationError("one of share_price or add_shares is required")
	}
	return nil
}

// AmountRequest represents a request body carrying a single amount
type AmountRequest struct {
	Amount uint64 `json:"amount"`
}

// BuySharesRequest represents the request body for the admin share issuance
type BuySharesRequest struct {
	Buyer  string `json:"buyer"`
	Amount uint64 `json:"amount"`
}

// Validate validates the request body and returns the parsed buyer
func (r *BuySharesRequest) Validate() (domain.Address, error) {
	if r.Buyer == "" {
		return domain.Address{}, apierrors.NewValidationError("buyer is required")
	}
	buyer, err := domain.ParseAddress(r.Buyer)
	if err != nil {
		return domain.Address{}, apierrors.NewValidationError(fmt.Sprintf("invalid buyer: %s", r.Buyer))
	}
	return buyer, nil
}
