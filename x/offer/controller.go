package offer

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/x"
	"github.com/iov-one/barter/x/system"
	"github.com/iov-one/barter/x/token"
)

// TokenLedger is the part of the token ledger offers move tokens with.
type TokenLedger interface {
	Account(db barter.ReadOnlyKVStore, addr barter.Address) (*token.TokenAccount, error)
	CreateAccount(db barter.KVStore, payer, addr, mint, owner barter.Address) error
	EnsureAssociatedAccount(db barter.KVStore, payer, owner, mint barter.Address) (barter.Address, error)
	Transfer(ctx barter.Context, auth x.Authenticator, db barter.KVStore, from, to barter.Address, amount uint64) error
	CloseAccount(ctx barter.Context, auth x.Authenticator, db barter.KVStore, addr, recipient barter.Address) error
}

// Controller runs the offer state machine.
type Controller struct {
	system system.Controller
	ledger TokenLedger
	vault  Vault
	bucket orm.ModelBucket
}

// NewController returns an offer controller.
func NewController(sys system.Controller, ledger TokenLedger) Controller {
	return Controller{
		system: sys,
		ledger: ledger,
		vault:  Vault{ledger: ledger},
		bucket: NewBucket(),
	}
}

// Create opens the offer described by msg and escrows the given tokens.
// It returns the offer address.
func (c Controller) Create(ctx barter.Context, auth x.Authenticator, db barter.KVStore, msg *CreateMsg) (barter.Address, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, msg.Initializer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "initializer signature missing")
	}
	give, err := c.ledger.Account(db, msg.GiveAccount)
	if err != nil {
		return nil, errors.Wrap(err, "give account")
	}
	if !give.Owner.Equals(msg.Initializer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "give account does not belong to the initializer")
	}
	if !give.Mint.Equals(msg.Mint) {
		return nil, errors.Wrapf(token.ErrMintMismatch, "give account holds %s", give.Mint)
	}
	if _, err := c.ledger.Account(db, msg.TakerAccount); err != nil {
		return nil, errors.Wrap(err, "taker account")
	}

	addr, bump, err := DeriveOfferAddress(msg.GiveAccount, msg.GiveAmount, msg.TakerAccount, msg.ReceiveAmount)
	if err != nil {
		return nil, err
	}
	if uint32(bump) != msg.OfferBump {
		return nil, errors.Wrapf(ErrInvalidBump, "offer bump is %d", bump)
	}
	vault, vbump, err := DeriveVaultAddress(msg.GiveAccount, msg.TakerAccount)
	if err != nil {
		return nil, err
	}
	if uint32(vbump) != msg.VaultBump {
		return nil, errors.Wrapf(ErrInvalidBump, "vault bump is %d", vbump)
	}
	if c.system.InUse(db, addr) {
		return nil, errors.Wrapf(errors.ErrDuplicate, "offer %s", addr)
	}
	if c.system.InUse(db, vault) {
		return nil, errors.Wrapf(ErrVaultInUse, "vault %s", vault)
	}

	o := &Offer{
		Initializer:             msg.Initializer,
		InitializerTokenAccount: msg.GiveAccount,
		TakerTokenAccount:       msg.TakerAccount,
		GiveAmount:              msg.GiveAmount,
		ReceiveAmount:           msg.ReceiveAmount,
		Vault:                   vault,
		OfferBump:               msg.OfferBump,
		VaultBump:               msg.VaultBump,
	}
	if err := c.system.Allocate(db, msg.Initializer, addr, ProgramID, Space); err != nil {
		return nil, err
	}
	if err := c.bucket.Create(db, addr, o); err != nil {
		return nil, err
	}
	if err := c.vault.Fund(ctx, auth, db, o, msg.Mint); err != nil {
		return nil, err
	}
	return addr, nil
}

// Accept swaps both sides of the offer and closes it. Receive accounts
// that do not exist yet are created when they are the associated accounts
// of their owner, rent paid by the taker.
func (c Controller) Accept(ctx barter.Context, auth x.Authenticator, db barter.KVStore, msg *AcceptMsg) (*Offer, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, msg.Taker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}
	o, err := c.Get(db, msg.Offer)
	if err != nil {
		return nil, err
	}
	if msg.GiveAmount != o.ReceiveAmount {
		return nil, errors.Wrapf(errors.ErrAmount, "offer asks for %d", o.ReceiveAmount)
	}
	if !msg.TakerGiveAccount.Equals(o.TakerTokenAccount) {
		return nil, errors.Wrap(errors.ErrInput, "offer expects another taker account")
	}

	takerGive, err := c.ledger.Account(db, msg.TakerGiveAccount)
	if err != nil {
		return nil, errors.Wrap(err, "taker give account")
	}
	if !takerGive.Owner.Equals(msg.Taker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "taker give account does not belong to the taker")
	}
	if !takerGive.Mint.Equals(msg.TakerMint) {
		return nil, errors.Wrapf(token.ErrMintMismatch, "taker give account holds %s", takerGive.Mint)
	}
	vault, err := c.ledger.Account(db, o.Vault)
	if err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	if !vault.Mint.Equals(msg.InitializerMint) {
		return nil, errors.Wrapf(token.ErrMintMismatch, "vault holds %s", vault.Mint)
	}
	initGive, err := c.ledger.Account(db, o.InitializerTokenAccount)
	if err != nil {
		return nil, errors.Wrap(err, "initializer token account")
	}
	if !initGive.Mint.Equals(msg.InitializerMint) {
		return nil, errors.Wrapf(token.ErrMintMismatch, "initializer token account holds %s", initGive.Mint)
	}

	if err := c.receiveAccount(db, msg.Taker, msg.TakerReceiveAccount, msg.Taker, msg.InitializerMint); err != nil {
		return nil, errors.Wrap(err, "taker receive account")
	}
	if err := c.receiveAccount(db, msg.Taker, msg.InitializerReceiveAccount, o.Initializer, msg.TakerMint); err != nil {
		return nil, errors.Wrap(err, "initializer receive account")
	}

	if err := c.vault.Release(ctx, db, o, msg.TakerReceiveAccount); err != nil {
		return nil, err
	}
	if err := c.ledger.Transfer(ctx, auth, db, msg.TakerGiveAccount, msg.InitializerReceiveAccount, o.ReceiveAmount); err != nil {
		return nil, errors.Wrap(err, "pay initializer")
	}
	if err := c.close(ctx, db, msg.Offer, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Cancel returns the escrowed tokens to the initializer and closes the
// offer. Only the initializer can cancel.
func (c Controller) Cancel(ctx barter.Context, auth x.Authenticator, db barter.KVStore, msg *CancelMsg) (*Offer, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	o, err := c.Get(db, msg.Offer)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, o.Initializer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the initializer can cancel")
	}
	if err := c.vault.Release(ctx, db, o, o.InitializerTokenAccount); err != nil {
		return nil, err
	}
	if err := c.close(ctx, db, msg.Offer, o); err != nil {
		return nil, err
	}
	return o, nil
}

// receiveAccount makes sure addr is a token account of owner holding mint.
func (c Controller) receiveAccount(db barter.KVStore, payer, addr, owner, mint barter.Address) error {
	if !c.system.InUse(db, addr) {
		assoc, _, err := token.AssociatedAddress(owner, mint)
		if err != nil {
			return err
		}
		if !assoc.Equals(addr) {
			return errors.Wrapf(errors.ErrNotFound, "token account %s", addr)
		}
		if _, err := c.ledger.EnsureAssociatedAccount(db, payer, owner, mint); err != nil {
			return err
		}
	}
	acc, err := c.ledger.Account(db, addr)
	if err != nil {
		return err
	}
	if !acc.Mint.Equals(mint) {
		return errors.Wrapf(token.ErrMintMismatch, "account holds %s", acc.Mint)
	}
	if !acc.Owner.Equals(owner) {
		return errors.Wrap(errors.ErrUnauthorized, "wrong owner")
	}
	return nil
}

func (c Controller) close(ctx barter.Context, db barter.KVStore, addr barter.Address, o *Offer) error {
	if err := c.vault.Close(ctx, db, o); err != nil {
		return errors.Wrap(err, "close vault")
	}
	if err := c.bucket.Delete(db, addr); err != nil {
		return err
	}
	_, err := c.system.Reclaim(db, addr, o.Initializer)
	return err
}

// Get loads the pending offer at addr.
func (c Controller) Get(db barter.ReadOnlyKVStore, addr barter.Address) (*Offer, error) {
	var o Offer
	if err := c.bucket.One(db, addr, &o); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrOfferNotFound, "offer %s", addr)
		}
		return nil, err
	}
	return &o, nil
}

// All returns every pending offer with its address.
func (c Controller) All(db barter.ReadOnlyKVStore) ([][]byte, []*Offer, error) {
	var offers []*Offer
	keys, err := c.bucket.All(db, &offers)
	return keys, offers, err
}

// ByInitializer returns the pending offers opened by initializer.
func (c Controller) ByInitializer(db barter.ReadOnlyKVStore, initializer barter.Address) ([][]byte, []*Offer, error) {
	var offers []*Offer
	keys, err := c.bucket.ByIndex(db, "initializer", initializer, &offers)
	return keys, offers, err
}

// ByTakerAccount returns the pending offers expecting payment from the
// given token account.
func (c Controller) ByTakerAccount(db barter.ReadOnlyKVStore, account barter.Address) ([][]byte, []*Offer, error) {
	var offers []*Offer
	keys, err := c.bucket.ByIndex(db, "taker", account, &offers)
	return keys, offers, err
}
