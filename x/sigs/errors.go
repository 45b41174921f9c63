package sigs

import "github.com/iov-one/barter/errors"

// ErrInvalidSequence is returned when the signature nonce does not match
// the stored one.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
