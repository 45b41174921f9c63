package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iov-one/barter/client"
)

func cmdOffers(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print open offers. Without a filter every offer is printed.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl  = flKey(fl)
		nodeFl     = flNode(fl)
		madeFl     = fl.Bool("made", false, "Only offers made by your key.")
		receivedFl = fl.Bool("received", false, "Only offers that ask for tokens of your key.")
	)
	fl.Parse(args)

	if *madeFl && *receivedFl {
		return fmt.Errorf("-made and -received cannot be used together")
	}

	var (
		offers []client.OfferInfo
		ctx    = context.Background()
	)
	if *madeFl || *receivedFl {
		key, c, err := connect(*keyPathFl, *nodeFl)
		if err != nil {
			return err
		}
		if *madeFl {
			offers, err = c.OffersMade(ctx, key.Address())
		} else {
			offers, err = c.OffersReceived(ctx, key.Address())
		}
		if err != nil {
			return err
		}
	} else {
		c, err := dial(*nodeFl)
		if err != nil {
			return err
		}
		if offers, err = c.ListOffers(ctx); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OFFER\tINITIALIZER\tGIVE\tRECEIVE\tFROM")
	for _, o := range offers {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", o.Address, o.Initializer, o.GiveAmount, o.ReceiveAmount, o.TakerTokenAccount)
	}
	return w.Flush()
}

func cmdCreateOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Offer tokens of one of your accounts in exchange for tokens of another
account. The offered tokens are held in escrow until the offer is accepted
or cancelled.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl       = flKey(fl)
		nodeFl          = flNode(fl)
		giveFl          = flAddress(fl, "give", "", "Your token account to give from.")
		giveAmountFl    = fl.Uint64("give-amount", 0, "Number of tokens to give.")
		receiveFl       = flAddress(fl, "receive", "", "Token account the counterparty pays from.")
		receiveAmountFl = fl.Uint64("receive-amount", 0, "Number of tokens to receive.")
	)
	fl.Parse(args)

	key, c, err := connect(*keyPathFl, *nodeFl)
	if err != nil {
		return err
	}
	addr, err := c.CreateOffer(context.Background(), key, *giveFl, *giveAmountFl, *receiveFl, *receiveAmountFl)
	if err != nil {
		return err
	}
	fmt.Fprintln(output, addr)
	return nil
}

func cmdAcceptOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Accept an open offer. The escrowed tokens go to your associated account and
your tokens go to the associated account of the initializer.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		nodeFl    = flNode(fl)
		offerFl   = flAddress(fl, "offer", "", "Offer to accept.")
	)
	fl.Parse(args)

	key, c, err := connect(*keyPathFl, *nodeFl)
	if err != nil {
		return err
	}
	return c.AcceptOffer(context.Background(), key, *offerFl)
}

func cmdCancelOffer(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Cancel an offer you made and get the escrowed tokens back.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		nodeFl    = flNode(fl)
		offerFl   = flAddress(fl, "offer", "", "Offer to cancel.")
	)
	fl.Parse(args)

	key, c, err := connect(*keyPathFl, *nodeFl)
	if err != nil {
		return err
	}
	return c.CancelOffer(context.Background(), key, *offerFl)
}
