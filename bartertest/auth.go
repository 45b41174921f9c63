package bartertest

import (
	"github.com/iov-one/barter"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the referenced addresses.
// Signer is a shortcut for tests with a single signer, it comes first in
// GetSigners.
type Auth struct {
	Signer  barter.Address
	Signers []barter.Address
}

func (a *Auth) GetSigners(barter.Context) []barter.Address {
	if a.Signer != nil {
		return append([]barter.Address{a.Signer}, a.Signers...)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx barter.Context, addr barter.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
