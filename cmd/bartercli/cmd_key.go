package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/barter/crypto"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new key file is created and the address of the key is
printed. This command fails if the key file already exists.
`)
		fl.PrintDefaults()
	}
	keyPathFl := flKey(fl)
	fl.Parse(args)

	key := crypto.GenPrivKeyEd25519()
	if err := crypto.SaveKeyFile(*keyPathFl, key); err != nil {
		return err
	}
	fmt.Fprintln(output, key.Address())
	return nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address of your private key.
`)
		fl.PrintDefaults()
	}
	keyPathFl := flKey(fl)
	fl.Parse(args)

	key, err := crypto.LoadKeyFile(*keyPathFl)
	if err != nil {
		return err
	}
	fmt.Fprintln(output, key.Address())
	return nil
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the lamports held by a wallet. Defaults to the wallet of your key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		nodeFl    = flNode(fl)
		walletFl  = flAddress(fl, "wallet", "", "Wallet to inspect.")
	)
	fl.Parse(args)

	key, c, err := connect(*keyPathFl, *nodeFl)
	if err != nil {
		return err
	}
	wallet := *walletFl
	if len(wallet) == 0 {
		wallet = key.Address()
	}
	lamports, err := c.Balance(context.Background(), wallet)
	if err != nil {
		return err
	}
	fmt.Fprintln(output, lamports)
	return nil
}
