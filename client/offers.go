package client

import (
	"context"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/offer"
	"github.com/iov-one/barter/x/token"
	"golang.org/x/sync/errgroup"
)

// OfferInfo is an open offer with its address.
type OfferInfo struct {
	Address barter.Address
	*offer.Offer
}

func decodeOffers(models []barter.Model) ([]OfferInfo, error) {
	out := make([]OfferInfo, 0, len(models))
	for _, m := range models {
		var o offer.Offer
		if err := proto.Unmarshal(m.Value, &o); err != nil {
			return nil, errors.Wrap(errors.ErrModel, err.Error())
		}
		out = append(out, OfferInfo{Address: m.Key, Offer: &o})
	}
	return out, nil
}

// ListOffers returns every open offer.
func (c *Client) ListOffers(ctx context.Context) ([]OfferInfo, error) {
	models, err := c.query(ctx, "/offers?"+barter.PrefixQueryMod, nil)
	if err != nil {
		return nil, err
	}
	return decodeOffers(models)
}

// Offer returns the open offer at addr. A closed or unknown offer yields
// offer.ErrOfferNotFound.
func (c *Client) Offer(ctx context.Context, addr barter.Address) (*OfferInfo, error) {
	var o offer.Offer
	found, err := c.queryOne(ctx, "/offers", addr, &o)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(offer.ErrOfferNotFound, "offer %s", addr)
	}
	return &OfferInfo{Address: addr, Offer: &o}, nil
}

// OffersMade returns the open offers initialized by wallet.
func (c *Client) OffersMade(ctx context.Context, wallet barter.Address) ([]OfferInfo, error) {
	models, err := c.query(ctx, "/offers/initializer", wallet)
	if err != nil {
		return nil, err
	}
	return decodeOffers(models)
}

// OffersReceived returns the open offers that pay out from one of the
// token accounts of wallet.
func (c *Client) OffersReceived(ctx context.Context, wallet barter.Address) ([]OfferInfo, error) {
	accounts, err := c.TokenAccounts(ctx, wallet)
	if err != nil {
		return nil, err
	}
	found := make([][]OfferInfo, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	for i := range accounts {
		i := i
		g.Go(func() error {
			models, err := c.query(gctx, "/offers/taker", accounts[i].Address)
			if err != nil {
				return err
			}
			found[i], err = decodeOffers(models)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []OfferInfo
	for _, offers := range found {
		out = append(out, offers...)
	}
	return out, nil
}

// CreateOffer escrows giveAmount tokens of giveAccount and asks for
// receiveAmount tokens out of receiveAccount in exchange. It returns the
// address of the new offer.
func (c *Client) CreateOffer(ctx context.Context, initializer Signer, giveAccount barter.Address, giveAmount uint64, receiveAccount barter.Address, receiveAmount uint64) (barter.Address, error) {
	give, err := c.TokenAccount(ctx, giveAccount)
	if err != nil {
		return nil, errors.Wrap(err, "give account")
	}
	o, err := c.deriver.Offer(giveAccount, giveAmount, receiveAccount, receiveAmount)
	if err != nil {
		return nil, err
	}
	v, err := c.deriver.Vault(giveAccount, receiveAccount)
	if err != nil {
		return nil, err
	}
	msg := &offer.CreateMsg{
		Initializer:   initializer.PublicKey().Address(),
		GiveAccount:   giveAccount,
		TakerAccount:  receiveAccount,
		Mint:          give.Mint,
		GiveAmount:    giveAmount,
		ReceiveAmount: receiveAmount,
		OfferBump:     uint32(o.Bump),
		VaultBump:     uint32(v.Bump),
	}
	if _, err := c.Commit(ctx, []Signer{initializer}, msg); err != nil {
		return nil, err
	}
	return o.Address, nil
}

// AcceptOffer completes the swap of an open offer. The taker receives the
// escrowed tokens in its associated account of the offered mint and the
// initializer is paid into its associated account of the asked mint.
// Missing associated accounts are created at the expense of the taker.
func (c *Client) AcceptOffer(ctx context.Context, taker Signer, addr barter.Address) error {
	o, err := c.Offer(ctx, addr)
	if err != nil {
		return err
	}
	vault, err := c.TokenAccount(ctx, o.Vault)
	switch {
	case errors.ErrNotFound.Is(err):
		// The vault closes along with its offer.
		return errors.Wrapf(offer.ErrOfferNotFound, "offer %s", addr)
	case err != nil:
		return errors.Wrap(err, "vault")
	}
	takerGive, err := c.TokenAccount(ctx, o.TakerTokenAccount)
	if err != nil {
		return errors.Wrap(err, "taker account")
	}
	takerAddr := taker.PublicKey().Address()
	takerReceive, _, err := token.AssociatedAddress(takerAddr, vault.Mint)
	if err != nil {
		return err
	}
	initReceive, _, err := token.AssociatedAddress(o.Initializer, takerGive.Mint)
	if err != nil {
		return err
	}
	msg := &offer.AcceptMsg{
		Taker:                     takerAddr,
		Offer:                     addr,
		TakerGiveAccount:          o.TakerTokenAccount,
		TakerReceiveAccount:       takerReceive,
		InitializerReceiveAccount: initReceive,
		InitializerMint:           vault.Mint,
		TakerMint:                 takerGive.Mint,
		GiveAmount:                o.ReceiveAmount,
	}
	_, err = c.Commit(ctx, []Signer{taker}, msg)
	return err
}

// CancelOffer closes an open offer and returns the escrowed tokens to the
// initializer.
func (c *Client) CancelOffer(ctx context.Context, initializer Signer, addr barter.Address) error {
	_, err := c.Commit(ctx, []Signer{initializer}, &offer.CancelMsg{Offer: addr})
	return err
}
