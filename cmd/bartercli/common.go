package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/client"
	"github.com/iov-one/barter/crypto"
)

// dial connects to the node at addr. Tests replace it with an in process
// chain.
var dial = func(addr string) (*client.Client, error) {
	return client.NewClient(client.NewHTTPConnection(addr))
}

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *barter.Address {
	var a barter.Address
	if defaultVal != "" {
		var err error
		a, err = barter.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

func flKey(fl *flag.FlagSet) *string {
	return fl.String("key", defaultKeyPath(),
		"Path to the private key file that transaction should be signed with. You can use BARTERCLI_PRIV_KEY environment variable to set it.")
}

func flNode(fl *flag.FlagSet) *string {
	return fl.String("tm", defaultNodeAddr(),
		"Tendermint node address. You can use BARTERCLI_TM_ADDR environment variable to set it.")
}

// connect loads the signing key and dials the node.
func connect(keyPath, nodeAddr string) (*crypto.PrivateKey, *client.Client, error) {
	key, err := crypto.LoadKeyFile(keyPath)
	if err != nil {
		return nil, nil, err
	}
	c, err := dial(nodeAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to %s: %s", nodeAddr, err)
	}
	return key, c, nil
}
