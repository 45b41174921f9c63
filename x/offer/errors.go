package offer

import "github.com/iov-one/barter/errors"

var (
	ErrZeroAmount    = errors.Register(201, "zero amount")
	ErrOfferNotFound = errors.Register(202, "offer not found")
	ErrVaultInUse    = errors.Register(203, "vault in use")
	ErrInvalidBump   = errors.Register(204, "invalid bump seed")
)
