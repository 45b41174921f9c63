package token

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/x"
	"github.com/iov-one/barter/x/system"
)

// Controller is the entry point of other extensions into the ledger.
// Every state changing call re-reads the accounts it touches.
type Controller struct {
	system   system.Controller
	mints    orm.ModelBucket
	accounts orm.ModelBucket
}

// NewController returns a controller paying rent through sys.
func NewController(sys system.Controller) Controller {
	return Controller{
		system:   sys,
		mints:    NewMintBucket(),
		accounts: NewAccountBucket(),
	}
}

// Mint loads the mint at addr.
func (c Controller) Mint(db barter.ReadOnlyKVStore, addr barter.Address) (*Mint, error) {
	var m Mint
	if err := c.mints.One(db, addr, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Account loads the token account at addr.
func (c Controller) Account(db barter.ReadOnlyKVStore, addr barter.Address) (*TokenAccount, error) {
	var a TokenAccount
	if err := c.accounts.One(db, addr, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Balance returns the amount held by a token account.
func (c Controller) Balance(db barter.ReadOnlyKVStore, addr barter.Address) (uint64, error) {
	a, err := c.Account(db, addr)
	if err != nil {
		return 0, err
	}
	return a.Amount, nil
}

// AccountsByOwner returns every token account of owner with its address.
func (c Controller) AccountsByOwner(db barter.ReadOnlyKVStore, owner barter.Address) ([][]byte, []*TokenAccount, error) {
	var accounts []*TokenAccount
	keys, err := c.accounts.ByIndex(db, "owner", owner, &accounts)
	return keys, accounts, err
}

// AccountsByMint returns every token account holding mint.
func (c Controller) AccountsByMint(db barter.ReadOnlyKVStore, mint barter.Address) ([][]byte, []*TokenAccount, error) {
	var accounts []*TokenAccount
	keys, err := c.accounts.ByIndex(db, "mint", mint, &accounts)
	return keys, accounts, err
}

// CreateMint allocates a mint at addr with no supply.
func (c Controller) CreateMint(db barter.KVStore, payer, addr, authority barter.Address, decimals uint32) error {
	m := &Mint{Decimals: decimals, MintAuthority: authority}
	if err := m.Validate(); err != nil {
		return err
	}
	if err := c.system.Allocate(db, payer, addr, ProgramID, MintSpace); err != nil {
		return err
	}
	return c.mints.Create(db, addr, m)
}

// CreateAccount allocates an empty token account of mint for owner at addr.
func (c Controller) CreateAccount(db barter.KVStore, payer, addr, mint, owner barter.Address) error {
	if _, err := c.Mint(db, mint); err != nil {
		return errors.Wrap(err, "mint")
	}
	acc := &TokenAccount{Mint: mint, Owner: owner}
	if err := acc.Validate(); err != nil {
		return err
	}
	if err := c.system.Allocate(db, payer, addr, ProgramID, AccountSpace); err != nil {
		return err
	}
	return c.accounts.Create(db, addr, acc)
}

// CreateAssociatedAccount creates the associated token account of owner for
// mint and returns its address.
func (c Controller) CreateAssociatedAccount(db barter.KVStore, payer, owner, mint barter.Address) (barter.Address, error) {
	addr, _, err := AssociatedAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	if err := c.CreateAccount(db, payer, addr, mint, owner); err != nil {
		return nil, err
	}
	return addr, nil
}

// EnsureAssociatedAccount returns the associated token account of owner for
// mint, creating it when missing.
func (c Controller) EnsureAssociatedAccount(db barter.KVStore, payer, owner, mint barter.Address) (barter.Address, error) {
	addr, _, err := AssociatedAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	if c.accounts.Has(db, addr) {
		return addr, nil
	}
	return c.CreateAssociatedAccount(db, payer, owner, mint)
}

// MintTo issues amount tokens of mint into dest. The mint authority must
// be authenticated.
func (c Controller) MintTo(ctx barter.Context, auth x.Authenticator, db barter.KVStore, mint, dest barter.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero amount")
	}
	m, err := c.Mint(db, mint)
	if err != nil {
		return err
	}
	if len(m.MintAuthority) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "supply is fixed")
	}
	if !auth.HasAddress(ctx, m.MintAuthority) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	acc, err := c.Account(db, dest)
	if err != nil {
		return err
	}
	if !acc.Mint.Equals(mint) {
		return errors.Wrapf(ErrMintMismatch, "%s holds %s", dest, acc.Mint)
	}
	if m.Supply+amount < m.Supply {
		return errors.Wrap(errors.ErrOverflow, "supply")
	}
	m.Supply += amount
	acc.Amount += amount
	if err := c.mints.Put(db, mint, m); err != nil {
		return err
	}
	return c.accounts.Put(db, dest, acc)
}

// Transfer moves amount tokens between two accounts of the same mint. The
// owner of the source must be authenticated.
func (c Controller) Transfer(ctx barter.Context, auth x.Authenticator, db barter.KVStore, from, to barter.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero amount")
	}
	if from.Equals(to) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same")
	}
	src, err := c.Account(db, from)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if !auth.HasAddress(ctx, src.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "source owner signature missing")
	}
	dst, err := c.Account(db, to)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !src.Mint.Equals(dst.Mint) {
		return errors.Wrapf(ErrMintMismatch, "cannot move %s tokens into a %s account", src.Mint, dst.Mint)
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %d, need %d", from, src.Amount, amount)
	}
	src.Amount -= amount
	dst.Amount += amount
	if err := c.accounts.Put(db, from, src); err != nil {
		return err
	}
	return c.accounts.Put(db, to, dst)
}

// CloseAccount deletes an empty token account and returns its rent deposit
// to recipient. The owner must be authenticated.
func (c Controller) CloseAccount(ctx barter.Context, auth x.Authenticator, db barter.KVStore, addr, recipient barter.Address) error {
	acc, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, acc.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	if acc.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "account still holds %d tokens", acc.Amount)
	}
	if err := c.accounts.Delete(db, addr); err != nil {
		return err
	}
	_, err = c.system.Reclaim(db, addr, recipient)
	return err
}
