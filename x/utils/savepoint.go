package utils

import (
	"github.com/iov-one/barter"
)

// Savepoint runs the rest of the chain on a cache of the store and writes
// the cache back only when the chain succeeds. A failed offer leaves no
// allocation, vault or bumped nonce behind.
type Savepoint struct {
	check   bool
	deliver bool
}

var _ barter.Decorator = Savepoint{}

// NewSavepoint returns a savepoint that is off for both phases until
// OnCheck or OnDeliver turns it on.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck isolates CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.check = true
	return s
}

// OnDeliver isolates DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.deliver = true
	return s
}

func (s Savepoint) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	if !s.check {
		return next.Check(ctx, db, tx)
	}
	var res *barter.CheckResult
	err := isolate(db, func(cache barter.KVStore) (err error) {
		res, err = next.Check(ctx, cache, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	if !s.deliver {
		return next.Deliver(ctx, db, tx)
	}
	var res *barter.DeliverResult
	err := isolate(db, func(cache barter.KVStore) (err error) {
		res, err = next.Deliver(ctx, cache, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn with a cache wrap of db. Stores that cannot be wrapped
// are handed over as they are.
func isolate(db barter.KVStore, fn func(barter.KVStore) error) error {
	cacheable, ok := db.(barter.CacheableKVStore)
	if !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}
