package token

import (
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
)

const (
	// MintKind is the account kind of mints.
	MintKind = "token.mint"
	// AccountKind is the account kind of token accounts.
	AccountKind = "token.account"

	// MintSpace is the storage declared for a mint.
	MintSpace = 82
	// AccountSpace is the storage declared for a token account.
	AccountSpace = 165

	// MaxDecimals bounds the precision of a mint.
	MaxDecimals = 18
)

var _ orm.Model = (*Mint)(nil)

// Validate checks the decimals and, when set, the authority.
func (m *Mint) Validate() error {
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrInput, "at most %d decimals", MaxDecimals)
	}
	if len(m.MintAuthority) != 0 {
		if err := m.MintAuthority.Validate(); err != nil {
			return errors.Wrap(err, "mint authority")
		}
	}
	return nil
}

var _ orm.Model = (*TokenAccount)(nil)

// Validate requires the mint and the owner.
func (m *TokenAccount) Validate() error {
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// NewMintBucket returns the bucket of all mints.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket(MintKind, &Mint{})
}

// NewAccountBucket returns the bucket of all token accounts, indexed by
// owner and by mint.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket(AccountKind, &TokenAccount{},
		orm.WithIndex("owner", ownerIndexer, false),
		orm.WithIndex("mint", mintIndexer, false),
	)
}

func ownerIndexer(m orm.Model) ([]byte, error) {
	acc, ok := m.(*TokenAccount)
	if !ok {
		return nil, errors.WithType(errors.ErrType, m)
	}
	return acc.Owner, nil
}

func mintIndexer(m orm.Model) ([]byte, error) {
	acc, ok := m.(*TokenAccount)
	if !ok {
		return nil, errors.WithType(errors.ErrType, m)
	}
	return acc.Mint, nil
}
