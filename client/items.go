package client

import (
	"context"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/item"
	"github.com/iov-one/barter/x/token"
	"golang.org/x/sync/errgroup"
)

// ItemInfo is an item with the address it lives at.
type ItemInfo struct {
	Address barter.Address
	*item.Item
}

// ItemSupply is an item together with the balance of its token account.
type ItemSupply struct {
	ItemInfo
	Supply uint64
}

// TokenAccountInfo is a token account with its address.
type TokenAccountInfo struct {
	Address barter.Address
	*token.TokenAccount
}

// OwnedItem is a token account of a wallet. Item is nil when the mint of
// the account was never listed.
type OwnedItem struct {
	Account TokenAccountInfo
	Item    *ItemInfo
}

// CreateItemAccount lists a new item whose whole supply sits in a fresh
// token account of the seller. The mint, the token account and the item
// record are created in a single transaction.
func (c *Client) CreateItemAccount(ctx context.Context, seller Signer, name, market string, supply uint64) (*ItemInfo, error) {
	mintKey := crypto.GenPrivKeyEd25519()
	accountKey := crypto.GenPrivKeyEd25519()
	itemKey := crypto.GenPrivKeyEd25519()
	owner := seller.PublicKey().Address()

	it := &item.Item{
		Mint:         mintKey.Address(),
		TokenAccount: accountKey.Address(),
		Name:         name,
		Market:       market,
		Seller:       owner,
	}
	msgs := []barter.Msg{
		&token.CreateMintMsg{
			Payer:         owner,
			Mint:          it.Mint,
			MintAuthority: owner,
		},
		&token.CreateAccountMsg{
			Payer:   owner,
			Account: it.TokenAccount,
			Mint:    it.Mint,
			Owner:   owner,
		},
	}
	if supply > 0 {
		msgs = append(msgs, &token.MintToMsg{
			Mint:        it.Mint,
			Destination: it.TokenAccount,
			Amount:      supply,
		})
	}
	msgs = append(msgs, &item.CreateMsg{
		Item:         itemKey.Address(),
		Seller:       owner,
		Mint:         it.Mint,
		TokenAccount: it.TokenAccount,
		Name:         name,
		Market:       market,
	})

	signers := []Signer{seller, mintKey, accountKey, itemKey}
	if _, err := c.Commit(ctx, signers, msgs...); err != nil {
		return nil, err
	}
	info := ItemInfo{Address: itemKey.Address(), Item: it}
	c.remember(info)
	return &info, nil
}

func (c *Client) remember(info ItemInfo) {
	c.items.Add("item:"+info.Address.String(), info)
	c.items.Add("mint:"+info.Mint.String(), info)
}

// ListItems returns every listed item.
func (c *Client) ListItems(ctx context.Context) ([]ItemInfo, error) {
	models, err := c.query(ctx, "/items?"+barter.PrefixQueryMod, nil)
	if err != nil {
		return nil, err
	}
	out := make([]ItemInfo, 0, len(models))
	for _, m := range models {
		var it item.Item
		if err := proto.Unmarshal(m.Value, &it); err != nil {
			return nil, errors.Wrap(errors.ErrModel, err.Error())
		}
		info := ItemInfo{Address: m.Key, Item: &it}
		c.remember(info)
		out = append(out, info)
	}
	return out, nil
}

// Item returns the item at addr.
func (c *Client) Item(ctx context.Context, addr barter.Address) (*ItemInfo, error) {
	if info, ok := c.items.Get("item:" + addr.String()); ok {
		return &info, nil
	}
	var it item.Item
	found, err := c.queryOne(ctx, "/items", addr, &it)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(errors.ErrNotFound, "item %s", addr)
	}
	info := ItemInfo{Address: addr, Item: &it}
	c.remember(info)
	return &info, nil
}

// ItemByMint returns the item listed for mint, or nil if there is none.
func (c *Client) ItemByMint(ctx context.Context, mint barter.Address) (*ItemInfo, error) {
	if info, ok := c.items.Get("mint:" + mint.String()); ok {
		return &info, nil
	}
	models, err := c.query(ctx, "/items/mint", mint)
	if err != nil || len(models) == 0 {
		return nil, err
	}
	var it item.Item
	if err := proto.Unmarshal(models[0].Value, &it); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	info := ItemInfo{Address: models[0].Key, Item: &it}
	c.remember(info)
	return &info, nil
}

// GetSupply returns how many tokens of the item its seller account holds.
func (c *Client) GetSupply(ctx context.Context, addr barter.Address) (uint64, error) {
	info, err := c.Item(ctx, addr)
	if err != nil {
		return 0, err
	}
	acc, err := c.TokenAccount(ctx, info.TokenAccount)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

// ItemsWithSupply lists every item along with its supply. The supplies are
// fetched concurrently.
func (c *Client) ItemsWithSupply(ctx context.Context) ([]ItemSupply, error) {
	items, err := c.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ItemSupply, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i := range items {
		i := i
		out[i].ItemInfo = items[i]
		g.Go(func() error {
			acc, err := c.TokenAccount(gctx, items[i].TokenAccount)
			if err != nil {
				return errors.Wrapf(err, "item %s", items[i].Address)
			}
			out[i].Supply = acc.Amount
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// TokenAccount returns the token account at addr.
func (c *Client) TokenAccount(ctx context.Context, addr barter.Address) (*token.TokenAccount, error) {
	var acc token.TokenAccount
	found, err := c.queryOne(ctx, "/tokenaccounts", addr, &acc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(errors.ErrNotFound, "token account %s", addr)
	}
	return &acc, nil
}

// TokenAccounts returns the token accounts owned by owner.
func (c *Client) TokenAccounts(ctx context.Context, owner barter.Address) ([]TokenAccountInfo, error) {
	models, err := c.query(ctx, "/tokenaccounts/owner", owner)
	if err != nil {
		return nil, err
	}
	out := make([]TokenAccountInfo, 0, len(models))
	for _, m := range models {
		var acc token.TokenAccount
		if err := proto.Unmarshal(m.Value, &acc); err != nil {
			return nil, errors.Wrap(errors.ErrModel, err.Error())
		}
		out = append(out, TokenAccountInfo{Address: m.Key, TokenAccount: &acc})
	}
	return out, nil
}

// MyItems returns the token accounts of owner with the item of their mint.
func (c *Client) MyItems(ctx context.Context, owner barter.Address) ([]OwnedItem, error) {
	accounts, err := c.TokenAccounts(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]OwnedItem, len(accounts))
	for i, acc := range accounts {
		info, err := c.ItemByMint(ctx, acc.Mint)
		if err != nil {
			return nil, err
		}
		out[i] = OwnedItem{Account: acc, Item: info}
	}
	return out, nil
}
