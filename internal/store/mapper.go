package store

import (
	"fmt"
	"strconv"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
	"github.com/feral-file/ff-propfi-ledger/internal/store/schema"
)

func formatAmount(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func parseAmount(field, v string) (uint64, error) {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %w", field, v, err)
	}
	return n, nil
}

func toPropertyRow(p *domain.Property) schema.Property {
	return schema.Property{
		Address:         p.Address.String(),
		OwnerAddress:    p.Owner.String(),
		TotalShares:     formatAmount(p.TotalShares),
		AvailableShares: formatAmount(p.AvailableShares),
		RentPool:        formatAmount(p.RentPool),
		ShareUnitID:     p.ShareUnitID.String(),
		Bump:            int16(p.Bump),
		IsListed:        p.IsListed,
		SharePrice:      formatAmount(p.SharePrice),
		CreatedAt:       p.CreatedAt,
	}
}

func fromPropertyRow(row *schema.Property) (*domain.Property, error) {
	var (
		p   domain.Property
		err error
	)
	if p.Address, err = domain.ParseAddress(row.Address); err != nil {
		return nil, err
	}
	if p.Owner, err = domain.ParseAddress(row.OwnerAddress); err != nil {
		return nil, err
	}
	if p.ShareUnitID, err = domain.ParseAddress(row.ShareUnitID); err != nil {
		return nil, err
	}
	if p.TotalShares, err = parseAmount("total_shares", row.TotalShares); err != nil {
		return nil, err
	}
	if p.AvailableShares, err = parseAmount("available_shares", row.AvailableShares); err != nil {
		return nil, err
	}
	if p.RentPool, err = parseAmount("rent_pool", row.RentPool); err != nil {
		return nil, err
	}
	if p.SharePrice, err = parseAmount("share_price", row.SharePrice); err != nil {
		return nil, err
	}
	p.Bump = uint8(row.Bump) //nolint:gosec,G115
	p.IsListed = row.IsListed
	p.CreatedAt = row.CreatedAt.UTC()
	return &p, nil
}

func toShareUnitRow(u *domain.ShareUnit) schema.ShareUnit {
	return schema.ShareUnit{
		ID:              u.ID.String(),
		PropertyAddress: u.Property.String(),
		MintAuthority:   u.MintAuthority.String(),
		Supply:          formatAmount(u.Supply),
	}
}

func fromShareUnitRow(row *schema.ShareUnit) (*domain.ShareUnit, error) {
	var (
		u   domain.ShareUnit
		err error
	)
	if u.ID, err = domain.ParseAddress(row.ID); err != nil {
		return nil, err
	}
	if u.Property, err = domain.ParseAddress(row.PropertyAddress); err != nil {
		return nil, err
	}
	if u.MintAuthority, err = domain.ParseAddress(row.MintAuthority); err != nil {
		return nil, err
	}
	if u.Supply, err = parseAmount("supply", row.Supply); err != nil {
		return nil, err
	}
	return &u, nil
}

func toLedgerEventRow(e *domain.LedgerEvent) schema.LedgerEvent {
	return schema.LedgerEvent{
		EventID:         e.EventID,
		EventType:       string(e.Type),
		PropertyAddress: e.Property.String(),
		Payload:         []byte(e.Payload),
		CreatedAt:       e.CreatedAt,
	}
}

func fromLedgerEventRow(row *schema.LedgerEvent) (*domain.LedgerEvent, error) {
	property, err := domain.ParseAddress(row.PropertyAddress)
	if err != nil {
		return nil, err
	}
	return &domain.LedgerEvent{
		Sequence:  uint64(row.Sequence), //nolint:gosec,G115
		EventID:   row.EventID,
		Type:      domain.EventType(row.EventType),
		Property:  property,
		Payload:   []byte(row.Payload),
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}
