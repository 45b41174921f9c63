package offer

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
)

const (
	// Kind is the account kind of offers.
	Kind = "offer"

	// Space is the storage declared for an offer: discriminator, four
	// addresses, two amounts and two bumps.
	Space = orm.DiscriminatorLength + 4*barter.AddressLength + 2*8 + 2
)

// State is the lifecycle step of an offer. Only pending offers are stored,
// the terminal states are reported in the transaction tags.
type State string

const (
	StatePending   State = "pending"
	StateAccepted  State = "accepted"
	StateCancelled State = "cancelled"
)

var _ orm.Model = (*Offer)(nil)

// Validate checks the addresses, the amounts and the bump range.
func (o *Offer) Validate() error {
	if err := o.Initializer.Validate(); err != nil {
		return errors.Wrap(err, "initializer")
	}
	if err := o.InitializerTokenAccount.Validate(); err != nil {
		return errors.Wrap(err, "initializer token account")
	}
	if err := o.TakerTokenAccount.Validate(); err != nil {
		return errors.Wrap(err, "taker token account")
	}
	if err := o.Vault.Validate(); err != nil {
		return errors.Wrap(err, "vault")
	}
	if o.GiveAmount == 0 || o.ReceiveAmount == 0 {
		return errors.Wrap(ErrZeroAmount, "both amounts must be positive")
	}
	if o.OfferBump > 255 || o.VaultBump > 255 {
		return errors.Wrap(ErrInvalidBump, "bump out of range")
	}
	return nil
}

// NewBucket returns the bucket of all offers, indexed by initializer and
// by taker token account.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(Kind, &Offer{},
		orm.WithIndex("initializer", func(m orm.Model) ([]byte, error) {
			o, ok := m.(*Offer)
			if !ok {
				return nil, errors.WithType(errors.ErrType, m)
			}
			return o.Initializer, nil
		}, false),
		orm.WithIndex("taker", func(m orm.Model) ([]byte, error) {
			o, ok := m.(*Offer)
			if !ok {
				return nil, errors.WithType(errors.ErrType, m)
			}
			return o.TakerTokenAccount, nil
		}, false),
	)
}
