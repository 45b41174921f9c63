package app

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// state keeps one cache per ABCI phase over the committed tree. Deliver
// writes are flushed on commit, check writes are thrown away.
type state struct {
	db      barter.CommitKVStore
	deliver barter.KVCacheWrap
	check   barter.KVCacheWrap
}

// newState panics when the latest version cannot be loaded, a node cannot
// start without it.
func newState(db barter.CommitKVStore) *state {
	if err := db.LoadLatestVersion(); err != nil {
		panic(err)
	}
	s := &state{db: db}
	s.reset()
	return s
}

func (s *state) reset() {
	s.deliver = s.db.CacheWrap()
	s.check = s.db.CacheWrap()
}

func (s *state) latest() barter.CommitID {
	return s.db.LatestVersion()
}

func (s *state) commit() barter.CommitID {
	s.deliver.Write()
	s.check.Discard()
	id := s.db.Commit()
	s.reset()
	return id
}

// Reserved for node metadata, no extension bucket uses the underscore.
var chainIDKey = []byte("_bt:chainID")

func loadChainID(db barter.ReadOnlyKVStore) string {
	return string(db.Get(chainIDKey))
}

// saveChainID writes the chain id once, at genesis.
func saveChainID(db barter.KVStore, chainID string) error {
	switch {
	case !barter.IsValidChainID(chainID):
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	case db.Has(chainIDKey):
		return errors.Wrap(errors.ErrUnauthorized, "chain id is fixed at genesis")
	}
	db.Set(chainIDKey, []byte(chainID))
	return nil
}
