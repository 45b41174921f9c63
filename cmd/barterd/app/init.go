package app

import (
	"encoding/json"
	"path/filepath"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/commands/server"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/system"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenesisLamports is what every wallet named on the init command line
// starts with.
const GenesisLamports = 1000 * 1000000000

// GenInitOptions funds every base58 address given as argument.
func GenInitOptions(args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "at least one address to fund is required")
	}
	wallets := make([]system.GenesisWallet, 0, len(args))
	for _, a := range args {
		addr, err := barter.ParseAddress(a)
		if err != nil {
			return nil, errors.Wrapf(err, "address %q", a)
		}
		wallets = append(wallets, system.GenesisWallet{Address: addr, Lamports: GenesisLamports})
	}
	return json.Marshal(map[string]interface{}{
		"system": wallets,
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	application := Application(Stack(), kv, options.Debug)
	application.WithLogger(options.Logger)
	return application, nil
}
