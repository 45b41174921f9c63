package item

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
)

const createCost = 300

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r barter.Registry, auth x.Authenticator, control Controller) {
	r.Handle(PathCreateMsg, CreateHandler{auth: auth, control: control})
}

// RegisterQuery will register
//   /items, /items/seller, /items/mint, /items/tokenaccount
func RegisterQuery(qr barter.QueryRouter) {
	NewBucket().Register("items", qr)
}

// CreateHandler lists new items.
type CreateHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ barter.Handler = CreateHandler{}

// Check verifies the message and the signatures.
func (h CreateHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return barter.NewCheck(createCost, ""), nil
}

// Deliver records the item.
func (h CreateHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Create(db, msg.Item, msg.toItem()); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: msg.Item}, nil
}

func (h CreateHandler) validate(ctx barter.Context, tx barter.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !x.HasAllAddresses(ctx, h.auth, msg.Seller, msg.Item) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "seller and item signatures required")
	}
	return &msg, nil
}
