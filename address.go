package barter

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/barter/errors"
)

const (
	// AddressLength is the length of all addresses. It is the size of an
	// ed25519 public key.
	AddressLength = 32

	// AddressHRP is the human readable part of the bech32 address form.
	AddressHRP = "barter"

	hexPrefix = "hex:"
)

// Address identifies an account. It is either an ed25519 public key or a
// program derived address.
type Address []byte

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns a copy that does not share the underlying array.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	c := make(Address, len(a))
	copy(c, a)
	return c
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address length %d", len(a))
	}
	return nil
}

// String returns the base58 representation.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return base58.Encode(a)
}

// Bech32 returns the address encoded with the AddressHRP prefix.
func (a Address) Bech32() (string, error) {
	data, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	s, err := bech32.Encode(AddressHRP, data)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return s, nil
}

// MarshalJSON provides a base58 representation for JSON,
// to override the standard base64 []byte encoding
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(base58.Encode(a))
}

// UnmarshalJSON accepts any of the forms understood by ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "address must be a string")
	}
	if s == "" {
		*a = nil
		return nil
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress decodes an address from its base58 form (default), from a hex
// form prefixed with "hex:" or from bech32 with the AddressHRP prefix.
func ParseAddress(s string) (Address, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case strings.HasPrefix(s, hexPrefix):
		raw, err = hex.DecodeString(s[len(hexPrefix):])
	case strings.HasPrefix(s, AddressHRP+"1"):
		raw, err = decodeBech32(s)
	default:
		raw = base58.Decode(s)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode %q: %s", s, err)
	}
	addr := Address(raw)
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %q", s)
	}
	return addr, nil
}

// MustParseAddress is like ParseAddress but panics on error. Only use with
// constants.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func decodeBech32(s string) ([]byte, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return nil, err
	}
	if hrp != AddressHRP {
		return nil, errors.Wrapf(errors.ErrInput, "unexpected prefix %q", hrp)
	}
	return bech32.ConvertBits(data, 5, 8, false)
}

// Set implements flag.Value.
func (a *Address) Set(s string) error {
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
