package system

import (
	"github.com/iov-one/barter"
)

const optKey = "system"

// GenesisWallet is used to parse the json from genesis file.
// Addresses are in base58, like everywhere else.
type GenesisWallet struct {
	Address  barter.Address `json:"address"`
	Lamports uint64         `json:"lamports"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ barter.Initializer = Initializer{}

// FromGenesis will parse initial wallets from genesis
// and save them to the database
func (Initializer) FromGenesis(opts barter.Options, kv barter.KVStore) error {
	var wallets []GenesisWallet
	if err := opts.ReadOptions(optKey, &wallets); err != nil {
		return err
	}
	control := NewController()
	for _, w := range wallets {
		if err := w.Address.Validate(); err != nil {
			return err
		}
		if err := control.Issue(kv, w.Address, w.Lamports); err != nil {
			return err
		}
	}
	return nil
}
