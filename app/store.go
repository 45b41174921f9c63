package app

import (
	"fmt"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp answers the state side of ABCI: handshake, genesis, block
// boundaries, commits and queries. BaseApp embeds it to add transactions.
//
// Failures in calls that carry no user input leave the node in an unknown
// state, so they panic.
type StoreApp struct {
	name   string
	logger log.Logger
	state  *state

	initializer barter.Initializer
	queries     barter.QueryRouter

	// empty until genesis has been loaded
	chainID string

	// app holds values for the whole run, block is rebuilt on BeginBlock
	app   barter.Context
	block barter.Context
}

// NewStoreApp loads the latest committed version of db and restores the
// chain id saved at genesis. It panics if db cannot be loaded.
func NewStoreApp(name string, db barter.CommitKVStore,
	queries barter.QueryRouter, ctx barter.Context) *StoreApp {
	s := &StoreApp{
		name:    name,
		state:   newState(db),
		queries: queries,
		app:     ctx,
	}
	s.WithLogger(log.NewNopLogger())

	if id := loadChainID(s.DeliverStore()); id != "" {
		s.setChainID(id)
	}
	s.block = barter.WithHeight(s.app, s.state.latest().Version)
	return s
}

// GetChainID is empty until InitChain ran.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the genesis loader run by InitChain.
func (s *StoreApp) WithInit(init barter.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger replaces the logger of the app and of every context it hands
// out afterwards.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.app = barter.WithLogger(s.app, logger)
	return s
}

// BlockContext carries the header and height of the current block.
func (s *StoreApp) BlockContext() barter.Context {
	return s.block
}

// DeliverStore is the cache DeliverTx writes to.
func (s *StoreApp) DeliverStore() barter.CacheableKVStore {
	return s.state.deliver
}

// CheckStore is the cache CheckTx writes to.
func (s *StoreApp) CheckStore() barter.CacheableKVStore {
	return s.state.check
}

func (s *StoreApp) setChainID(id string) {
	s.chainID = id
	s.app = barter.WithChainID(s.app, id)
}

func (s *StoreApp) loadGenesis(raw []byte, chainID string) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", s.chainID)
	}
	if len(raw) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state missing from genesis")
	}
	opts, err := ReadOptions(raw)
	if err != nil {
		return err
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.setChainID(chainID)
	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// Info reports the last committed height and app hash for the handshake.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	id := s.state.latest()
	s.logger.Info("Info synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          barter.Version(),
		LastBlockHeight:  id.Version,
		LastBlockAppHash: id.Hash,
	}
}

// SetOption is not supported.
func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// Query resolves req.Path through the query router and runs it against the
// last committed state; req.Height is ignored. Paths look like "/accounts",
// "/<bucket>" or "/<bucket>/<index>", with an optional "?prefix" suffix.
//
// Key and Value are always encoded ResultSets of equal length, whatever the
// number of matches.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	h, mod, ok := s.queries.Route(req.Path)
	if !ok {
		return queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", req.Path))
	}

	db := s.state.db.CacheWrap()
	defer db.Discard()
	models, err := h.Query(db, mod, req.Data)
	if err != nil {
		return queryError(err)
	}

	keys, err := ResultsFromKeys(models).Marshal()
	if err != nil {
		return queryError(err)
	}
	values, err := ResultsFromValues(models).Marshal()
	if err != nil {
		return queryError(err)
	}
	return abci.ResponseQuery{
		Height: s.state.latest().Version,
		Key:    keys,
		Value:  values,
	}
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}

// Commit persists the block and opens fresh caches for the next one.
func (s *StoreApp) Commit() abci.ResponseCommit {
	id := s.state.commit()
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// InitChain stores the chain id and loads app_state from the genesis file.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.loadGenesis(req.AppStateBytes, req.ChainId); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock rebuilds the block context from the header.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := barter.WithHeader(s.app, req.Header)
	s.block = barter.WithHeight(ctx, req.Header.GetHeight())
	return abci.ResponseBeginBlock{}
}

// EndBlock keeps the genesis validator set.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
