package bartertest

import (
	"crypto/sha256"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/crypto"
)

// NewKey returns a random ed25519 key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewAddress returns the address of a random wallet.
func NewAddress() barter.Address {
	return NewKey().Address()
}

// KeyFromName returns a key that is always the same for a given name, to
// keep test failures reproducible.
func KeyFromName(name string) *crypto.PrivateKey {
	seed := sha256.Sum256([]byte(name))
	return crypto.PrivKeyEd25519FromSeed(seed[:])
}
