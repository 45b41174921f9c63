package offer

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
)

// Vault escrows the given tokens of one offer. The vault token account is
// owned by its own address, which only this package can sign for.
type Vault struct {
	ledger TokenLedger
}

// Fund creates the vault account of o, rent paid by the initializer, and
// moves the give amount into it. The initializer must be authenticated.
func (v Vault) Fund(ctx barter.Context, auth x.Authenticator, db barter.KVStore, o *Offer, mint barter.Address) error {
	if err := v.ledger.CreateAccount(db, o.Initializer, o.Vault, mint, o.Vault); err != nil {
		return errors.Wrap(err, "create vault")
	}
	if err := v.ledger.Transfer(ctx, auth, db, o.InitializerTokenAccount, o.Vault, o.GiveAmount); err != nil {
		return errors.Wrap(err, "fund vault")
	}
	return nil
}

// Release moves the whole vault balance to the given token account, tokens
// sent to the vault on top of the give amount included.
func (v Vault) Release(ctx barter.Context, db barter.KVStore, o *Offer, to barter.Address) error {
	acc, err := v.ledger.Account(db, o.Vault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	if acc.Amount < o.GiveAmount {
		return errors.Wrapf(errors.ErrState, "vault holds %d, offer gives %d", acc.Amount, o.GiveAmount)
	}
	ctx, err = signAsVault(ctx, o)
	if err != nil {
		return err
	}
	return v.ledger.Transfer(ctx, x.ProgramAuth{}, db, o.Vault, to, acc.Amount)
}

// Close deletes the emptied vault account. Its rent goes to the initializer.
func (v Vault) Close(ctx barter.Context, db barter.KVStore, o *Offer) error {
	ctx, err := signAsVault(ctx, o)
	if err != nil {
		return err
	}
	return v.ledger.CloseAccount(ctx, x.ProgramAuth{}, db, o.Vault, o.Initializer)
}

func signAsVault(ctx barter.Context, o *Offer) (barter.Context, error) {
	seeds := append(vaultSeeds(o.InitializerTokenAccount, o.TakerTokenAccount), []byte{uint8(o.VaultBump)})
	ctx, addr, err := x.WithProgramSigner(ctx, ProgramID, seeds...)
	if err != nil {
		return nil, errors.Wrap(err, "vault signer")
	}
	if !addr.Equals(o.Vault) {
		return nil, errors.Wrapf(errors.ErrState, "vault %s does not match its seeds", o.Vault)
	}
	return ctx, nil
}
