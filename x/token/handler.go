package token

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
)

const (
	createCost   = 300
	mintToCost   = 100
	transferCost = 100
	closeCost    = 100
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r barter.Registry, auth x.Authenticator, control Controller) {
	h := handler{auth: auth, control: control}
	r.Handle(PathCreateMintMsg, createMintHandler{h})
	r.Handle(PathCreateAccountMsg, createAccountHandler{h})
	r.Handle(PathCreateAssociatedAccountMsg, createAssociatedHandler{h})
	r.Handle(PathMintToMsg, mintToHandler{h})
	r.Handle(PathTransferMsg, transferHandler{h})
	r.Handle(PathCloseAccountMsg, closeHandler{h})
}

// RegisterQuery will register
//   /mints
//   /tokenaccounts, /tokenaccounts/owner, /tokenaccounts/mint
func RegisterQuery(qr barter.QueryRouter) {
	NewMintBucket().Register("mints", qr)
	NewAccountBucket().Register("tokenaccounts", qr)
}

type handler struct {
	auth    x.Authenticator
	control Controller
}

func (h handler) requireSigners(ctx barter.Context, addrs ...barter.Address) error {
	for _, a := range addrs {
		if !h.auth.HasAddress(ctx, a) {
			return errors.Wrapf(errors.ErrUnauthorized, "%s signature missing", a)
		}
	}
	return nil
}

type createMintHandler struct{ handler }

func (h createMintHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return barter.NewCheck(createCost, ""), nil
}

func (h createMintHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.CreateMint(db, msg.Payer, msg.Mint, msg.MintAuthority, msg.Decimals); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: msg.Mint}, nil
}

func (h createMintHandler) validate(ctx barter.Context, tx barter.Tx) (*CreateMintMsg, error) {
	var msg CreateMintMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// the mint key proves nobody else controls the address
	return &msg, h.requireSigners(ctx, msg.Payer, msg.Mint)
}

type createAccountHandler struct{ handler }

func (h createAccountHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return barter.NewCheck(createCost, ""), nil
}

func (h createAccountHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.CreateAccount(db, msg.Payer, msg.Account, msg.Mint, msg.Owner); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: msg.Account}, nil
}

func (h createAccountHandler) validate(ctx barter.Context, tx barter.Tx) (*CreateAccountMsg, error) {
	var msg CreateAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, h.requireSigners(ctx, msg.Payer, msg.Account)
}

type createAssociatedHandler struct{ handler }

func (h createAssociatedHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return barter.NewCheck(createCost, ""), nil
}

func (h createAssociatedHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	addr, err := h.control.CreateAssociatedAccount(db, msg.Payer, msg.Owner, msg.Mint)
	if err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: addr}, nil
}

func (h createAssociatedHandler) validate(ctx barter.Context, tx barter.Tx) (*CreateAssociatedAccountMsg, error) {
	var msg CreateAssociatedAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, h.requireSigners(ctx, msg.Payer)
}

type mintToHandler struct{ handler }

func (h mintToHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg MintToMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return barter.NewCheck(mintToCost, ""), nil
}

func (h mintToHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg MintToMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.MintTo(ctx, h.auth, db, msg.Mint, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{}, nil
}

type transferHandler struct{ handler }

func (h transferHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg TransferMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return barter.NewCheck(transferCost, ""), nil
}

func (h transferHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg TransferMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.Transfer(ctx, h.auth, db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{}, nil
}

type closeHandler struct{ handler }

func (h closeHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg CloseAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return barter.NewCheck(closeCost, ""), nil
}

func (h closeHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg CloseAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.control.CloseAccount(ctx, h.auth, db, msg.Account, msg.Recipient); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{}, nil
}
