package domain

import (
	"encoding/binary"
	"fmt"
	"time"
)

// MarshalBinary encodes the property in its fixed little-endian record layout:
// owner, total_shares, available_shares, rent_pool, share_unit_id, derivation_tag,
// is_listed, share_price, created_at (unix seconds).
func (p *Property) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, PROPERTY_RECORD_SIZE)
	buf = append(buf, p.Owner[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, p.TotalShares)
	buf = binary.LittleEndian.AppendUint64(buf, p.AvailableShares)
	buf = binary.LittleEndian.AppendUint64(buf, p.RentPool)
	buf = append(buf, p.ShareUnitID[:]...)
	buf = append(buf, p.Bump)
	if p.IsListed {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint64(buf, p.SharePrice)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(p.CreatedAt.Unix())) //nolint:gosec,G115
	return buf, nil
}

// UnmarshalBinary decodes a record produced by MarshalBinary. Address is not part of the
// record and is left untouched.
func (p *Property) UnmarshalBinary(data []byte) error {
	if len(data) != PROPERTY_RECORD_SIZE {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidRecord, PROPERTY_RECORD_SIZE, len(data))
	}

	off := 0
	next := func(n int) []byte {
		b := data[off : off+n]
		off += n
		return b
	}

	copy(p.Owner[:], next(AddressLength))
	p.TotalShares = binary.LittleEndian.Uint64(next(8))
	p.AvailableShares = binary.LittleEndian.Uint64(next(8))
	p.RentPool = binary.LittleEndian.Uint64(next(8))
	copy(p.ShareUnitID[:], next(AddressLength))
	p.Bump = next(1)[0]
	switch listed := next(1)[0]; listed {
	case 0:
		p.IsListed = false
	case 1:
		p.IsListed = true
	default:
		return fmt.Errorf("%w: invalid is_listed byte %d", ErrInvalidRecord, listed)
	}
	p.SharePrice = binary.LittleEndian.Uint64(next(8))
	p.CreatedAt = time.Unix(int64(binary.LittleEndian.Uint64(next(8))), 0).UTC() //nolint:gosec,G115

	if p.AvailableShares > p.TotalShares {
		return fmt.Errorf("%w: available shares exceed total shares", ErrInvalidRecord)
	}
	return nil
}
