package offer

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createCost = 500
	acceptCost = 800
	cancelCost = 300

	// TagOffer carries the offer address of a deliver result.
	TagOffer = "offer"
	// TagState carries the state the offer reached.
	TagState = "offer.state"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r barter.Registry, auth x.Authenticator, control Controller) {
	r.Handle(PathCreateMsg, CreateHandler{auth: auth, control: control})
	r.Handle(PathAcceptMsg, AcceptHandler{auth: auth, control: control})
	r.Handle(PathCancelMsg, CancelHandler{auth: auth, control: control})
}

// RegisterQuery will register
//   /offers, /offers/initializer, /offers/taker
func RegisterQuery(qr barter.QueryRouter) {
	NewBucket().Register("offers", qr)
}

func stateTags(addr barter.Address, s State) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(TagOffer), Value: []byte(addr.String())},
		{Key: []byte(TagState), Value: []byte(s)},
	}
}

// CreateHandler opens offers.
type CreateHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ barter.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg CreateMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Initializer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "initializer signature missing")
	}
	return barter.NewCheck(createCost, ""), nil
}

func (h CreateHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg CreateMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	addr, err := h.control.Create(ctx, h.auth, db, &msg)
	if err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: addr, Tags: stateTags(addr, StatePending)}, nil
}

// AcceptHandler completes offers.
type AcceptHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ barter.Handler = AcceptHandler{}

func (h AcceptHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg AcceptMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Taker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}
	if _, err := h.control.Get(db, msg.Offer); err != nil {
		return nil, err
	}
	return barter.NewCheck(acceptCost, ""), nil
}

func (h AcceptHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg AcceptMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.control.Accept(ctx, h.auth, db, &msg); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: msg.Offer, Tags: stateTags(msg.Offer, StateAccepted)}, nil
}

// CancelHandler withdraws offers.
type CancelHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ barter.Handler = CancelHandler{}

func (h CancelHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg CancelMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	o, err := h.control.Get(db, msg.Offer)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, o.Initializer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the initializer can cancel")
	}
	return barter.NewCheck(cancelCost, ""), nil
}

func (h CancelHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg CancelMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.control.Cancel(ctx, h.auth, db, &msg); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: msg.Offer, Tags: stateTags(msg.Offer, StateCancelled)}, nil
}
