package item

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
)

const (
	// Kind is the account kind of items.
	Kind = "item"

	// MaxNameLength is the longest item name in bytes.
	MaxNameLength = 32
	// MaxMarketLength is the longest market name in bytes.
	MaxMarketLength = 32

	// Space is the storage declared for an item: discriminator, three
	// addresses and two length prefixed strings.
	Space = orm.DiscriminatorLength + 3*barter.AddressLength + 2*(4+MaxNameLength)
)

var _ orm.Model = (*Item)(nil)

// Validate checks the addresses and the name bounds.
func (i *Item) Validate() error {
	if err := i.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := i.TokenAccount.Validate(); err != nil {
		return errors.Wrap(err, "token account")
	}
	if err := i.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	return validateNames(i.Name, i.Market)
}

func validateNames(name, market string) error {
	if len(name) == 0 {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if len(name) > MaxNameLength {
		return errors.Wrapf(ErrNameTooLong, "%d bytes, max %d", len(name), MaxNameLength)
	}
	if len(market) == 0 {
		return errors.Wrap(errors.ErrEmpty, "market")
	}
	if len(market) > MaxMarketLength {
		return errors.Wrapf(errors.ErrInput, "market is %d bytes, max %d", len(market), MaxMarketLength)
	}
	return nil
}

// NewBucket returns the bucket of all items, indexed by seller, mint and
// token account.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(Kind, &Item{},
		orm.WithIndex("seller", func(m orm.Model) ([]byte, error) {
			return field(m, func(i *Item) []byte { return i.Seller })
		}, false),
		orm.WithIndex("mint", func(m orm.Model) ([]byte, error) {
			return field(m, func(i *Item) []byte { return i.Mint })
		}, true),
		orm.WithIndex("tokenaccount", func(m orm.Model) ([]byte, error) {
			return field(m, func(i *Item) []byte { return i.TokenAccount })
		}, true),
	)
}

func field(m orm.Model, get func(*Item) []byte) ([]byte, error) {
	i, ok := m.(*Item)
	if !ok {
		return nil, errors.WithType(errors.ErrType, m)
	}
	return get(i), nil
}
