package system

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
)

// Kind is the account kind of wallets.
const Kind = "system"

var _ orm.Model = (*Wallet)(nil)

// Validate is always fine, any balance is valid.
func (*Wallet) Validate() error {
	return nil
}

// NewBucket returns the bucket of all wallets.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(Kind, &Wallet{})
}

// Validate requires both addresses.
func (a *Allocation) Validate() error {
	if err := a.Payer.Validate(); err != nil {
		return errors.Wrap(err, "payer")
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// allocations are stored next to the account space, so the record at an
// address and its deposit live side by side.
var allocationPrefix = []byte("rent:")

func allocationKey(addr barter.Address) []byte {
	return append(append([]byte{}, allocationPrefix...), addr...)
}

func loadAllocation(db barter.ReadOnlyKVStore, addr barter.Address) (*Allocation, error) {
	raw := db.Get(allocationKey(addr))
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "allocation %s", addr)
	}
	var a Allocation
	if err := proto.Unmarshal(raw, &a); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &a, nil
}

func saveAllocation(db barter.KVStore, addr barter.Address, a *Allocation) error {
	if err := a.Validate(); err != nil {
		return err
	}
	raw, err := proto.Marshal(a)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	db.Set(allocationKey(addr), raw)
	return nil
}
