package barter

import (
	"encoding/json"
)

// Handler processes the messages routed to it, such as creating an offer
// or minting tokens.
type Handler interface {
	Checker
	Deliverer
}

// Checker validates a transaction without committing to its effects.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer applies a transaction to the block state.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around the next handler in the stack, for concerns shared
// by every message such as signature checks or logging. It receives only
// the half of next that matches the call.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds message paths to handlers.
type Registry interface {
	Handle(path string, h Handler)
}

// Options is the genesis app_state, one raw json section per extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the section named key into obj. A missing section
// leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw := o[key]
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Initializer writes the genesis state of one extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers runs several initializers in order, stopping at the
// first failure.
type ChainInitializers []Initializer

func (c ChainInitializers) FromGenesis(opts Options, db KVStore) error {
	for _, init := range c {
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
