package app

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp runs transactions through a handler on top of the state and
// queries of a StoreApp.
type BaseApp struct {
	*StoreApp
	decoder barter.TxDecoder
	handler barter.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application. With debug set, error
// logs returned to clients carry stack traces.
func NewBaseApp(store *StoreApp, decoder barter.TxDecoder, handler barter.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx executes tx against the block state.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	ctx, tx, err := b.prepare("deliver_tx", txBytes)
	if err != nil {
		return barter.DeliverOrError(nil, err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err != nil {
		// rejected deliveries still end up in the block
		barter.GetLogger(ctx).Info("tx rejected", "err", err)
	}
	return barter.DeliverOrError(res, err, b.debug)
}

// CheckTx validates tx against the mempool state.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	ctx, tx, err := b.prepare("check_tx", txBytes)
	if err != nil {
		return barter.CheckOrError(nil, err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return barter.CheckOrError(res, err, b.debug)
}

// prepare decodes the transaction and builds the context its handler runs
// in. A panicking decoder is reported as an error.
func (b BaseApp) prepare(call string, txBytes []byte) (ctx barter.Context, tx barter.Tx, err error) {
	defer errors.Recover(&err)

	tx, err = b.decoder(txBytes)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot decode tx")
	}
	ctx = barter.WithLogInfo(b.BlockContext(),
		"call", call,
		"path", barter.GetPath(tx),
		"size", len(txBytes))
	return ctx, tx, nil
}
