package domain

import "errors"

// Ledger rule violations. Each is recoverable by the caller.
var (
	// ErrZeroAmount is returned when a quantity that must be positive is zero
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrNotEnoughShares is returned when a purchase exceeds the available shares
	ErrNotEnoughShares = errors.New("not enough shares available")

	// ErrMathError is returned when an arithmetic operation would overflow
	ErrMathError = errors.New("math error occurred")

	// ErrNotOwner is returned when the caller is not the property owner
	ErrNotOwner = errors.New("caller is not the property owner")

	// ErrNotListed is returned when buying a property that is not listed
	ErrNotListed = errors.New("property is not listed for sale")

	// ErrPriceTooLow is returned when a supplied price is not strictly positive
	ErrPriceTooLow = errors.New("price must be greater than zero")
)

// Collaborator errors
var (
	// ErrPropertyNotFound is returned when no record exists at the address
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyAlreadyExists is returned when the derived record address is already in use
	ErrPropertyAlreadyExists = errors.New("property already exists")

	// ErrShareUnitNotFound is returned when a share unit does not exist
	ErrShareUnitNotFound = errors.New("share unit not found")

	// ErrShareUnitAlreadyExists is returned when a share unit id is already in use
	ErrShareUnitAlreadyExists = errors.New("share unit already exists")

	// ErrInsufficientFunds is returned when a payer cannot cover a transfer
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAuthority is returned when an authority proof does not re-derive the mint authority
	ErrInvalidAuthority = errors.New("invalid mint authority")

	// ErrInvalidAddress is returned for malformed addresses
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidRecord is returned when a binary property record cannot be decoded
	ErrInvalidRecord = errors.New("invalid property record")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrZeroAmount, "zero_amount"},
	{ErrNotEnoughShares, "not_enough_shares"},
	{ErrMathError, "math_error"},
	{ErrNotOwner, "not_owner"},
	{ErrNotListed, "not_listed"},
	{ErrPriceTooLow, "price_too_low"},
	{ErrPropertyNotFound, "property_not_found"},
	{ErrPropertyAlreadyExists, "property_exists"},
	{ErrShareUnitNotFound, "share_unit_not_found"},
	{ErrShareUnitAlreadyExists, "share_unit_exists"},
	{ErrInsufficientFunds, "insufficient_funds"},
	{ErrInvalidAuthority, "invalid_authority"},
	{ErrInvalidAddress, "invalid_address"},
	{ErrInvalidRecord, "invalid_record"},
}

// Kind returns the stable code of the ledger error wrapped in err, or "" if err is not one
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}
