package item

import "github.com/iov-one/barter/errors"

// ErrNameTooLong is returned when the item name exceeds MaxNameLength bytes.
var ErrNameTooLong = errors.Register(101, "name too long")
