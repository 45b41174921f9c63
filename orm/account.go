package orm

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"reflect"
	"sync"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

const (
	// DiscriminatorLength is the size of the record kind tag that prefixes
	// every stored account.
	DiscriminatorLength = 8

	accountPrefix = "acct:"
)

// Model is implemented by any entity that can be stored in the account space.
type Model interface {
	proto.Message
	Validate() error
}

// Discriminator returns the tag identifying records of the given kind.
func Discriminator(kind string) []byte {
	h := sha256.Sum256([]byte("account:" + kind))
	return h[:DiscriminatorLength]
}

// AccountKey is the database key of the account stored under addr.
func AccountKey(addr []byte) []byte {
	out := make([]byte, len(accountPrefix)+len(addr))
	copy(out, accountPrefix)
	copy(out[len(accountPrefix):], addr)
	return out
}

// kinds maps the discriminator of every registered kind to its type.
var kinds = struct {
	sync.RWMutex
	byDisc map[string]kindInfo
}{byDisc: make(map[string]kindInfo)}

type kindInfo struct {
	name string
	typ  reflect.Type
}

// RegisterKind declares that records of kind are represented by the type of m.
// Registering the same pair twice is fine, registering a kind with a
// different type panics.
func RegisterKind(kind string, m Model) {
	typ := reflect.TypeOf(m)
	if typ.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("kind %q: %T is not a pointer", kind, m))
	}
	disc := string(Discriminator(kind))

	kinds.Lock()
	defer kinds.Unlock()
	if k, ok := kinds.byDisc[disc]; ok {
		if k.typ != typ || k.name != kind {
			panic(fmt.Sprintf("kind %q already registered with %s", kind, k.typ))
		}
		return
	}
	kinds.byDisc[disc] = kindInfo{name: kind, typ: typ}
}

func lookupKind(disc []byte) (kindInfo, bool) {
	kinds.RLock()
	defer kinds.RUnlock()
	k, ok := kinds.byDisc[string(disc)]
	return k, ok
}

// EncodeAccount serializes a record of the given kind with its discriminator.
func EncodeAccount(kind string, m Model) ([]byte, error) {
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	out := make([]byte, 0, DiscriminatorLength+len(raw))
	out = append(out, Discriminator(kind)...)
	return append(out, raw...), nil
}

// DecodeAccount parses any stored account value into a new instance of the
// registered type. It returns the kind name together with the record.
func DecodeAccount(raw []byte) (string, Model, error) {
	if len(raw) < DiscriminatorLength {
		return "", nil, errors.Wrap(errors.ErrModel, "account data too short")
	}
	k, ok := lookupKind(raw[:DiscriminatorLength])
	if !ok {
		return "", nil, errors.Wrapf(errors.ErrType, "unknown discriminator %X", raw[:DiscriminatorLength])
	}
	m := reflect.New(k.typ.Elem()).Interface().(Model)
	if err := proto.Unmarshal(raw[DiscriminatorLength:], m); err != nil {
		return "", nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal %s: %s", k.name, err)
	}
	return k.name, m, nil
}

// decodeInto parses a stored value of the expected kind into dest.
func decodeInto(kind string, raw []byte, dest Model) error {
	if len(raw) < DiscriminatorLength {
		return errors.Wrap(errors.ErrModel, "account data too short")
	}
	if !bytes.Equal(raw[:DiscriminatorLength], Discriminator(kind)) {
		name := "unknown"
		if k, ok := lookupKind(raw[:DiscriminatorLength]); ok {
			name = k.name
		}
		return errors.Wrapf(errors.ErrType, "account holds %s, not %s", name, kind)
	}
	if err := proto.Unmarshal(raw[DiscriminatorLength:], dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %s: %s", kind, err)
	}
	return nil
}

// LoadAccount returns whatever record lives at addr, whichever its kind.
func LoadAccount(db barter.ReadOnlyKVStore, addr barter.Address) (string, Model, error) {
	raw := db.Get(AccountKey(addr))
	if raw == nil {
		return "", nil, errors.Wrapf(errors.ErrNotFound, "account %s", addr)
	}
	return DecodeAccount(raw)
}

// AccountKind returns the kind of the record stored at addr, if any.
func AccountKind(db barter.ReadOnlyKVStore, addr barter.Address) (string, bool) {
	raw := db.Get(AccountKey(addr))
	if len(raw) < DiscriminatorLength {
		return "", false
	}
	k, ok := lookupKind(raw[:DiscriminatorLength])
	if !ok {
		return "unknown", true
	}
	return k.name, true
}

// Exists returns true if any record is stored at addr.
func Exists(db barter.ReadOnlyKVStore, addr barter.Address) bool {
	return db.Has(AccountKey(addr))
}
