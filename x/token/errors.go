package token

import "github.com/iov-one/barter/errors"

// ErrMintMismatch is returned when a token account holds another mint than
// the one the operation is about.
var ErrMintMismatch = errors.Register(301, "mint mismatch")
