package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
)

func cmdCreateItem(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List a new item. A mint and a token account holding the whole supply are
created for it and owned by your key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		nodeFl    = flNode(fl)
		nameFl    = fl.String("name", "", "Name of the item.")
		marketFl  = fl.String("market", "", "Market the item is sold on.")
		supplyFl  = fl.Uint64("supply", 1, "Number of tokens to issue.")
	)
	fl.Parse(args)

	key, c, err := connect(*keyPathFl, *nodeFl)
	if err != nil {
		return err
	}
	it, err := c.CreateItemAccount(context.Background(), key, *nameFl, *marketFl, *supplyFl)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "item %s\nmint %s\naccount %s\n", it.Address, it.Mint, it.TokenAccount)
	return nil
}

func cmdItems(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print every listed item along with its remaining supply.
`)
		fl.PrintDefaults()
	}
	nodeFl := flNode(fl)
	fl.Parse(args)

	c, err := dial(*nodeFl)
	if err != nil {
		return err
	}
	items, err := c.ItemsWithSupply(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tNAME\tMARKET\tACCOUNT\tSUPPLY")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", it.Address, it.Name, it.Market, it.TokenAccount, it.Supply)
	}
	return w.Flush()
}

func cmdMyItems(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the token accounts of your key and the item each one holds.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		nodeFl    = flNode(fl)
	)
	fl.Parse(args)

	key, c, err := connect(*keyPathFl, *nodeFl)
	if err != nil {
		return err
	}
	owned, err := c.MyItems(context.Background(), key.Address())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tNAME\tMINT\tAMOUNT")
	for _, o := range owned {
		name := "-"
		if o.Item != nil {
			name = o.Item.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", o.Account.Address, name, o.Account.Mint, o.Account.Amount)
	}
	return w.Flush()
}
