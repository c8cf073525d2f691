package derivation

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-propfi-ledger/internal/domain"
)

const (
	// MaxSeeds is the maximum number of seeds accepted by a derivation
	MaxSeeds = 16
	// MaxSeedLength is the maximum length of a single seed
	MaxSeedLength = 32

	derivedAddressMarker = "ProgramDerivedAddress"
)

var (
	// ErrInvalidSeeds is returned when the seeds exceed MaxSeeds or MaxSeedLength
	ErrInvalidSeeds = errors.New("invalid derivation seeds")
	// ErrOnCurve is returned when a candidate address is a valid ed25519 point
	ErrOnCurve = errors.New("derived address is on the ed25519 curve")
	// ErrNoViableBump is returned when no bump yields an off-curve address
	ErrNoViableBump = errors.New("unable to find a viable bump")
)

// Deriver derives record addresses from seeds and a program identity. Derived addresses are
// never valid ed25519 public keys, so no private key can sign for them; the program proves
// authority over one by presenting its seeds and bump instead.
//
//go:generate mockgen -source=derivation.go -destination=../mocks/derivation.go -package=mocks -mock_names=Deriver=MockDeriver
type Deriver interface {
	// FindAddress returns the first off-curve address for seeds, searching bumps from 255 down
	FindAddress(seeds [][]byte) (domain.Address, uint8, error)
	// CreateAddress derives the address for seeds and an explicit bump
	CreateAddress(seeds [][]byte, bump uint8) (domain.Address, error)
	// ProgramID returns the program identity mixed into every derivation
	ProgramID() domain.Address
}

type deriver struct {
	programID domain.Address
}

// NewDeriver creates a deriver bound to programID
func NewDeriver(programID domain.Address) Deriver {
	return &deriver{programID: programID}
}

// FindAddress returns the first off-curve address for seeds, searching bumps from 255 down
func (d *deriver) FindAddress(seeds [][]byte) (domain.Address, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		addr, err := d.CreateAddress(seeds, uint8(bump))
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return domain.Address{}, 0, err
		}
	}
	return domain.Address{}, 0, ErrNoViableBump
}

// CreateAddress hashes seeds || bump || program id || marker with Keccak-256 and rejects
// results that decode as an ed25519 point
func (d *deriver) CreateAddress(seeds [][]byte, bump uint8) (domain.Address, error) {
	if len(seeds) > MaxSeeds {
		return domain.Address{}, fmt.Errorf("%w: %d seeds", ErrInvalidSeeds, len(seeds))
	}

	parts := make([][]byte, 0, len(seeds)+3)
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return domain.Address{}, fmt.Errorf("%w: seed %d has %d bytes", ErrInvalidSeeds, i, len(seed))
		}
		parts = append(parts, seed)
	}
	parts = append(parts, []byte{bump}, d.programID[:], []byte(derivedAddressMarker))

	var addr domain.Address
	copy(addr[:], crypto.Keccak256(parts...))

	if isOnCurve(addr) {
		return domain.Address{}, ErrOnCurve
	}
	return addr, nil
}

func (d *deriver) ProgramID() domain.Address {
	return d.programID
}

// VerifyAuthority checks that proof re-derives authority
func VerifyAuthority(d Deriver, authority domain.Address, proof domain.AuthorityProof) error {
	addr, err := d.CreateAddress(proof.Seeds, proof.Bump)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAuthority, err)
	}
	if addr != authority {
		return domain.ErrInvalidAuthority
	}
	return nil
}

func isOnCurve(addr domain.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}
