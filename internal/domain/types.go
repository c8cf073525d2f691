package domain

import (
	"encoding/json"
	"time"
)

// Property is the ledger record of one fractionally owned property
type Property struct {
	Address         Address   `json:"address"`          // derived record address
	Owner           Address   `json:"owner"`            // creator, immutable
	TotalShares     uint64    `json:"total_shares"`     // shares ever issued, never decreases
	AvailableShares uint64    `json:"available_shares"` // unsold shares, never above TotalShares
	RentPool        uint64    `json:"rent_pool"`        // rent awaiting distribution
	ShareUnitID     Address   `json:"share_unit_id"`    // share unit minted on purchase
	Bump            uint8     `json:"derivation_tag"`   // discriminator that re-derives Address
	IsListed        bool      `json:"is_listed"`
	SharePrice      uint64    `json:"share_price"` // base currency per share, > 0 while listed
	CreatedAt       time.Time `json:"created_at"`
}

// IsOwnedBy reports whether caller owns the property
func (p *Property) IsOwnedBy(caller Address) bool {
	return p.Owner == caller
}

// Clone returns a copy of p
func (p *Property) Clone() *Property {
	c := *p
	return &c
}

// ShareUnit is the fungible unit representing one property's shares
type ShareUnit struct {
	ID            Address `json:"id"`
	Property      Address `json:"property"`
	MintAuthority Address `json:"mint_authority"`
	Supply        uint64  `json:"supply"`
}

// AuthorityProof lets a derived address act as a signer: the seeds and bump must re-derive it
type AuthorityProof struct {
	Seeds [][]byte
	Bump  uint8
}

// PropertySeeds returns the derivation seeds of the property owned by owner
func PropertySeeds(owner Address) [][]byte {
	return [][]byte{[]byte(PROPERTY_SEED), owner.Bytes()}
}

// ShareUnitSeeds returns the derivation seeds of the share unit of a property
func ShareUnitSeeds(property Address) [][]byte {
	return [][]byte{[]byte(SHARE_UNIT_SEED), property.Bytes()}
}

// EventType represents the kind of committed ledger operation
type EventType string

const (
	EventTypePropertyInitialized EventType = "property.initialized"
	EventTypePropertyListed      EventType = "property.listed"
	EventTypePropertyUpdated     EventType = "property.updated"
	EventTypePropertyPurchased   EventType = "property.purchased"
	EventTypeSharesIssued        EventType = "property.shares_issued"
	EventTypeRentDeposited       EventType = "property.rent_deposited"
	EventTypeRentDistributed     EventType = "property.rent_distributed"
)

// LedgerEvent is the notification produced by exactly one committed operation
type LedgerEvent struct {
	Sequence  uint64          `json:"sequence"` // commit order, assigned by the store
	EventID   string          `json:"event_id"` // ULID
	Type      EventType       `json:"type"`
	Property  Address         `json:"property"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// PropertyInitialized is the payload of EventTypePropertyInitialized
type PropertyInitialized struct {
	Property    Address `json:"property"`
	Owner       Address `json:"owner"`
	TotalShares uint64  `json:"total_shares"`
}

// PropertyListed is the payload of EventTypePropertyListed
type PropertyListed struct {
	Property Address `json:"property"`
	Owner    Address `json:"owner"`
	Price    uint64  `json:"price"`
}

// PropertyUpdated is the payload of EventTypePropertyUpdated
type PropertyUpdated struct {
	Property        Address `json:"property"`
	Owner           Address `json:"owner"`
	SharePrice      uint64  `json:"share_price"`
	TotalShares     uint64  `json:"total_shares"`
	AvailableShares uint64  `json:"available_shares"`
}

// PropertyPurchased is the payload of EventTypePropertyPurchased
type PropertyPurchased struct {
	Property  Address `json:"property"`
	Buyer     Address `json:"buyer"`
	Amount    uint64  `json:"amount"`
	TotalCost uint64  `json:"total_cost"`
}

// SharesIssued is the payload of EventTypeSharesIssued
type SharesIssued struct {
	Property Address `json:"property"`
	Buyer    Address `json:"buyer"`
	Amount   uint64  `json:"amount"`
}

// RentDeposited is the payload of EventTypeRentDeposited
type RentDeposited struct {
	Property  Address `json:"property"`
	Depositor Address `json:"depositor"`
	Amount    uint64  `json:"amount"`
	RentPool  uint64  `json:"rent_pool"`
}

// RentDistributed is the payload of EventTypeRentDistributed.
// Amount is the pool value that was reset; nothing is paid out.
type RentDistributed struct {
	Property Address `json:"property"`
	Owner    Address `json:"owner"`
	Amount   uint64  `json:"amount"`
}
