package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

// PropertyResponse represents a property record in API responses
type PropertyResponse struct {
	Address         string    `json:"address"`
	Owner           string    `json:"owner"`
	TotalShares     uint64    `json:"total_shares"`
	AvailableShares uint64    `json:"available_shares"`
	RentPool        uint64    `json:"rent_pool"`
	ShareUnitID     string    `json:"share_unit_id"`
	DerivationTag   uint8     `json:"derivation_tag"`
	IsListed        bool      `json:"is_listed"`
	SharePrice      uint64    `json:"share_price"`
	CreatedAt       time.Time `json:"created_at"`
}

// MapPropertyToDTO maps a domain property to its response
func MapPropertyToDTO(p *domain.Property) *PropertyResponse {
	return &PropertyResponse{
		Address:         p.Address.String(),
		Owner:           p.Owner.String(),
		TotalShares:     p.TotalShares,
		AvailableShares: p.AvailableShares,
		RentPool:        p.RentPool,
		ShareUnitID:     p.ShareUnitID.String(),
		DerivationTag:   p.Bump,
		IsListed:        p.IsListed,
		SharePrice:      p.SharePrice,
		CreatedAt:       p.CreatedAt,
	}
}

// PropertyListResponse represents a page of properties
type PropertyListResponse struct {
	Properties []*PropertyResponse `json:"properties"`
	Offset     *uint64             `json:"offset,omitempty"` // next page offset, absent on the last page
	Total      uint64              `json:"total"`
}

// BalanceResponse represents the balances of an account
type BalanceResponse struct {
	Address  string `json:"address"`
	Currency uint64 `json:"currency"`
	// Shares is present when a share unit was requested
	Shares *ShareBalance `json:"shares,omitempty"`
}

// ShareBalance is the share balance of an account in one share unit
type ShareBalance struct {
	Unit    string `json:"unit"`
	Balance uint64 `json:"balance"`
}

// EventResponse represents a committed ledger event
type EventResponse struct {
	Sequence  uint64          `json:"sequence"`
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"`
	Property  string          `json:"property"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// MapEventToDTO maps a ledger event to its response
func MapEventToDTO(e *domain.LedgerEvent) *EventResponse {
	return &EventResponse{
		Sequence:  e.Sequence,
		EventID:   e.EventID,
		Type:      string(e.Type),
		Property:  e.Property.String(),
		Payload:   e.Payload,
		CreatedAt: e.CreatedAt,
	}
}

// EventListResponse represents a page of the event log
type EventListResponse struct {
	Events []*EventResponse `json:"events"`
	// Next is the cursor for the following page, absent when no events were returned
	Next *uint64 `json:"next,omitempty"`
}
