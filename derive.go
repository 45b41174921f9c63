package barter

import (
	"crypto/sha256"

	"github.com/iov-one/barter/errors"
	"github.com/jdgcs/ed25519/edwards25519"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included, accepted by
	// CreateProgramAddress.
	MaxSeeds = 16
	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32

	pdaMarker = "ProgramDerivedAddress"
)

var (
	// ErrNoBumpSeed is returned when no bump seed produces an address off
	// the ed25519 curve. It is fatal for the given seeds.
	ErrNoBumpSeed = errors.Register(20, "unable to find a viable program address bump seed")

	// ErrInvalidSeeds is returned when there are too many seeds or one of
	// them is too long.
	ErrInvalidSeeds = errors.Register(21, "invalid seeds")

	// ErrOnCurve is returned when the derived digest is a valid ed25519
	// public key and therefore cannot be used as a program address.
	ErrOnCurve = errors.Register(22, "address lies on the ed25519 curve")
)

// NewProgramID returns the identifier of a program (extension) by its name.
func NewProgramID(name string) Address {
	h := sha256.Sum256([]byte("program:" + name))
	return h[:]
}

// CreateProgramAddress computes the address owned by program for the given
// seeds. The digest is rejected with ErrOnCurve when it decodes to an ed25519
// point, so that no private key can ever exist for a program address.
func CreateProgramAddress(program Address, seeds ...[]byte) (Address, error) {
	if len(seeds) > MaxSeeds {
		return nil, errors.Wrapf(ErrInvalidSeeds, "%d seeds", len(seeds))
	}

	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return nil, errors.Wrapf(ErrInvalidSeeds, "seed %d is %d bytes long", i, len(s))
		}
		h.Write(s)
	}
	h.Write(program)
	h.Write([]byte(pdaMarker))

	addr := Address(h.Sum(nil))
	if IsOnCurve(addr) {
		return nil, ErrOnCurve
	}
	return addr, nil
}

// FindProgramAddress looks for the first bump seed, counting down from 255,
// that appended to seeds yields a valid program address. The result depends
// only on the arguments.
func FindProgramAddress(program Address, seeds ...[]byte) (Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return nil, 0, errors.Wrapf(ErrInvalidSeeds, "%d seeds leave no room for a bump", len(seeds))
	}
	all := make([][]byte, len(seeds)+1)
	copy(all, seeds)
	for bump := 255; bump >= 0; bump-- {
		all[len(seeds)] = []byte{byte(bump)}
		addr, err := CreateProgramAddress(program, all...)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !ErrOnCurve.Is(err) {
			return nil, 0, err
		}
	}
	return nil, 0, ErrNoBumpSeed
}

// IsOnCurve returns true if the address is a valid compressed ed25519 point.
func IsOnCurve(a Address) bool {
	if len(a) != AddressLength {
		return false
	}
	var pub [32]byte
	copy(pub[:], a)
	var p edwards25519.ExtendedGroupElement
	return p.FromBytes(&pub)
}
