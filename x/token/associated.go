package token

import (
	"github.com/iov-one/barter"
)

var (
	// ProgramID owns every mint and token account.
	ProgramID = barter.NewProgramID("token")
	// AssociatedProgramID derives associated token account addresses.
	AssociatedProgramID = barter.NewProgramID("associated-token")
)

// AssociatedAddress returns the address of the associated token account of
// owner for mint, along with its bump seed.
func AssociatedAddress(owner, mint barter.Address) (barter.Address, uint8, error) {
	return barter.FindProgramAddress(AssociatedProgramID, owner, ProgramID, mint)
}
