package x

import (
	"context"

	"github.com/iov-one/barter"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// GetSigners reveals all addresses that authorized the transaction,
	// in signing order
	GetSigners(barter.Context) []barter.Address
	// HasAddress checks if any signer matches this address
	HasAddress(barter.Context, barter.Address) bool
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetSigners combines all signers from all Authenticators
func (m MultiAuth) GetSigners(ctx barter.Context) []barter.Address {
	var res []barter.Address
	for _, impl := range m.impls {
		res = append(res, impl.GetSigners(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx barter.Context, addr barter.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first signer if any, otherwise nil
func MainSigner(ctx barter.Context, auth Authenticator) barter.Address {
	signers := auth.GetSigners(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx barter.Context, auth Authenticator, required ...barter.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

type contextKey int

const contextKeyProgramSigners contextKey = iota

// WithProgramSigner derives the program address of seeds (bump included)
// and marks it as an authority of the calls made with the returned context.
// Only program code can reach this, so a vault can authorize a transfer out
// of itself without any private key.
func WithProgramSigner(ctx barter.Context, program barter.Address, seeds ...[]byte) (barter.Context, barter.Address, error) {
	addr, err := barter.CreateProgramAddress(program, seeds...)
	if err != nil {
		return ctx, nil, err
	}
	prev, _ := ctx.Value(contextKeyProgramSigners).([]barter.Address)
	signers := make([]barter.Address, 0, len(prev)+1)
	signers = append(signers, prev...)
	signers = append(signers, addr)
	return context.WithValue(ctx, contextKeyProgramSigners, signers), addr, nil
}

// ProgramAuth authenticates program derived addresses set with
// WithProgramSigner.
type ProgramAuth struct{}

var _ Authenticator = ProgramAuth{}

// GetSigners returns all program signers of the context.
func (ProgramAuth) GetSigners(ctx barter.Context) []barter.Address {
	signers, _ := ctx.Value(contextKeyProgramSigners).([]barter.Address)
	return signers
}

// HasAddress returns true if addr was set with WithProgramSigner.
func (a ProgramAuth) HasAddress(ctx barter.Context, addr barter.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if s.Equals(addr) {
			return true
		}
	}
	return false
}
