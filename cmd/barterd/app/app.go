/*
Package app wires the barter extensions into an ABCI application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/app"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/store/iavl"
	"github.com/iov-one/barter/x"
	"github.com/iov-one/barter/x/batch"
	"github.com/iov-one/barter/x/item"
	"github.com/iov-one/barter/x/offer"
	"github.com/iov-one/barter/x/sigs"
	"github.com/iov-one/barter/x/system"
	"github.com/iov-one/barter/x/token"
	"github.com/iov-one/barter/x/utils"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// Name is reported by abci Info.
const Name = "barter"

// Authenticator returns the authentication used by every handler: wallet
// signatures and the program derived addresses a handler signs for.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, x.ProgramAuth{})
}

// Controllers groups the controllers the handlers share.
type Controllers struct {
	System system.Controller
	Token  token.Controller
	Item   item.Controller
	Offer  offer.Controller
}

// NewControllers builds every controller on top of the system program.
func NewControllers() Controllers {
	sys := system.NewController()
	tokens := token.NewController(sys)
	return Controllers{
		System: sys,
		Token:  tokens,
		Item:   item.NewController(sys, tokens),
		Offer:  offer.NewController(sys, tokens),
	}
}

// Chain returns a chain of decorators, to handle recovery, logging,
// atomicity, authentication and batches.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewRecovery(),
		utils.NewLogging(),
		// a failed tx leaves nothing behind, nonces included
		utils.NewSavepoint().OnCheck().OnDeliver(),
		sigs.NewDecorator(),
		utils.NewKeyTagger(),
		batch.NewDecorator(),
		utils.NewActionTagger(),
	)
}

// Router dispatches every message path of the chain.
func Router(authFn x.Authenticator, c Controllers) *app.Router {
	r := app.NewRouter()
	system.RegisterRoutes(r, authFn, c.System)
	token.RegisterRoutes(r, authFn, c.Token)
	item.RegisterRoutes(r, authFn, c.Item)
	offer.RegisterRoutes(r, authFn, c.Offer)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/mints", "/tokenaccounts",
// "/items", "/offers" and "/accounts"
func QueryRouter() barter.QueryRouter {
	r := barter.NewQueryRouter()
	r.RegisterAll(
		system.RegisterQuery,
		sigs.RegisterQuery,
		token.RegisterQuery,
		item.RegisterQuery,
		offer.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() barter.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, NewControllers()))
}

// Initializers loads the genesis state of every extension.
func Initializers() barter.Initializer {
	return barter.ChainInitializers{
		system.Initializer{},
	}
}

// Application constructs a basic ABCI application with
// the given arguments.
func Application(h barter.Handler, kv barter.CommitKVStore, debug bool) app.BaseApp {
	store := app.NewStoreApp(Name, kv, QueryRouter(), context.Background())
	store.WithInit(Initializers())
	return app.NewBaseApp(store, TxDecoder, h, debug)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path. An empty path keeps everything in memory.
func CommitKVStore(dbPath string) (barter.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewCommitStoreFromDB(dbm.NewMemDB()), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path)), nil
}
