package item

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/x/system"
	"github.com/iov-one/barter/x/token"
)

// ProgramID owns every item record.
var ProgramID = barter.NewProgramID("item")

// TokenLedger is the part of the token ledger the registry relies on.
type TokenLedger interface {
	Mint(db barter.ReadOnlyKVStore, addr barter.Address) (*token.Mint, error)
	Account(db barter.ReadOnlyKVStore, addr barter.Address) (*token.TokenAccount, error)
	Balance(db barter.ReadOnlyKVStore, addr barter.Address) (uint64, error)
}

// Controller registers and reads items.
type Controller struct {
	system system.Controller
	ledger TokenLedger
	bucket orm.ModelBucket
}

// NewController returns an item controller.
func NewController(sys system.Controller, ledger TokenLedger) Controller {
	return Controller{system: sys, ledger: ledger, bucket: NewBucket()}
}

// Create records it at addr, paid by the seller. The token account must
// hold the item mint and belong to the seller.
func (c Controller) Create(db barter.KVStore, addr barter.Address, it *Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if _, err := c.ledger.Mint(db, it.Mint); err != nil {
		return errors.Wrap(err, "mint")
	}
	acc, err := c.ledger.Account(db, it.TokenAccount)
	if err != nil {
		return errors.Wrap(err, "token account")
	}
	if !acc.Mint.Equals(it.Mint) {
		return errors.Wrapf(token.ErrMintMismatch, "token account holds %s", acc.Mint)
	}
	if !acc.Owner.Equals(it.Seller) {
		return errors.Wrap(errors.ErrUnauthorized, "token account does not belong to the seller")
	}
	if err := c.system.Allocate(db, it.Seller, addr, ProgramID, Space); err != nil {
		return err
	}
	return c.bucket.Create(db, addr, it)
}

// Get loads the item at addr.
func (c Controller) Get(db barter.ReadOnlyKVStore, addr barter.Address) (*Item, error) {
	var it Item
	if err := c.bucket.One(db, addr, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Supply returns the balance of the item's token account.
func (c Controller) Supply(db barter.ReadOnlyKVStore, addr barter.Address) (uint64, error) {
	it, err := c.Get(db, addr)
	if err != nil {
		return 0, err
	}
	return c.ledger.Balance(db, it.TokenAccount)
}

// All returns every item with its address.
func (c Controller) All(db barter.ReadOnlyKVStore) ([][]byte, []*Item, error) {
	var items []*Item
	keys, err := c.bucket.All(db, &items)
	return keys, items, err
}

// BySeller returns the items listed by seller.
func (c Controller) BySeller(db barter.ReadOnlyKVStore, seller barter.Address) ([][]byte, []*Item, error) {
	var items []*Item
	keys, err := c.bucket.ByIndex(db, "seller", seller, &items)
	return keys, items, err
}

// ByMint returns the item of a mint, if any.
func (c Controller) ByMint(db barter.ReadOnlyKVStore, mint barter.Address) (barter.Address, *Item, error) {
	var items []*Item
	keys, err := c.bucket.ByIndex(db, "mint", mint, &items)
	if err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "no item for mint %s", mint)
	}
	return keys[0], items[0], nil
}
