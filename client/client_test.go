package client

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/iov-one/barter"
	barterd "github.com/iov-one/barter/cmd/barterd/app"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/item"
	"github.com/iov-one/barter/x/offer"
	"github.com/iov-one/barter/x/system"
	"github.com/iov-one/barter/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainID = "barter-test"

type market struct {
	client         *Client
	alice, bob     *crypto.PrivateKey
	apples, orange *ItemInfo
}

// newMarket starts an in process chain where alice sells apples and bob
// sells oranges, 200 of each.
func newMarket(t *testing.T) *market {
	t.Helper()
	alice := crypto.GenPrivKeyEd25519()
	bob := crypto.GenPrivKeyEd25519()

	state, err := json.Marshal(map[string]interface{}{
		"system": []system.GenesisWallet{
			{Address: alice.Address(), Lamports: barterd.GenesisLamports},
			{Address: bob.Address(), Lamports: barterd.GenesisLamports},
		},
	})
	require.NoError(t, err)

	kv, err := barterd.CommitKVStore("")
	require.NoError(t, err)
	application := barterd.Application(barterd.Stack(), kv, true)
	conn, err := NewLocalConn(application, chainID, state)
	require.NoError(t, err)
	c, err := NewClient(conn)
	require.NoError(t, err)

	ctx := context.Background()
	apples, err := c.CreateItemAccount(ctx, alice, "Apples", "Fruit", 200)
	require.NoError(t, err)
	oranges, err := c.CreateItemAccount(ctx, bob, "Oranges", "Fruit", 200)
	require.NoError(t, err)

	return &market{client: c, alice: alice, bob: bob, apples: apples, orange: oranges}
}

func (m *market) amount(t *testing.T, acc barter.Address) uint64 {
	t.Helper()
	ta, err := m.client.TokenAccount(context.Background(), acc)
	require.NoError(t, err)
	return ta.Amount
}

func TestCreateItemAccount(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	items, err := m.client.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	supply, err := m.client.GetSupply(ctx, m.apples.Address)
	require.NoError(t, err)
	assert.EqualValues(t, 200, supply)

	withSupply, err := m.client.ItemsWithSupply(ctx)
	require.NoError(t, err)
	require.Len(t, withSupply, 2)
	for _, s := range withSupply {
		assert.EqualValues(t, 200, s.Supply)
		assert.Equal(t, "Fruit", s.Market)
	}

	mine, err := m.client.MyItems(ctx, m.alice.Address())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Item)
	assert.Equal(t, "Apples", mine[0].Item.Name)
	assert.EqualValues(t, 200, mine[0].Account.Amount)
}

func TestItemNameTooLong(t *testing.T) {
	m := newMarket(t)
	name := strings.Repeat("a", item.MaxNameLength+1)
	_, err := m.client.CreateItemAccount(context.Background(), m.alice, name, "Fruit", 1)
	require.Error(t, err)
	assert.True(t, item.ErrNameTooLong.Is(err), "got %+v", err)

	items, err := m.client.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestApplesForOranges(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	addr, err := m.client.CreateOffer(ctx, m.alice, m.apples.TokenAccount, 20, m.orange.TokenAccount, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 180, m.amount(t, m.apples.TokenAccount))

	made, err := m.client.OffersMade(ctx, m.alice.Address())
	require.NoError(t, err)
	require.Len(t, made, 1)
	assert.Equal(t, addr, made[0].Address)
	assert.EqualValues(t, 20, made[0].GiveAmount)
	assert.EqualValues(t, 20, m.amount(t, made[0].Vault))

	received, err := m.client.OffersReceived(ctx, m.bob.Address())
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, addr, received[0].Address)

	none, err := m.client.OffersReceived(ctx, m.alice.Address())
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, m.client.AcceptOffer(ctx, m.bob, addr))

	assert.EqualValues(t, 180, m.amount(t, m.apples.TokenAccount))
	assert.EqualValues(t, 150, m.amount(t, m.orange.TokenAccount))
	bobApples, _, err := token.AssociatedAddress(m.bob.Address(), m.apples.Mint)
	require.NoError(t, err)
	assert.EqualValues(t, 20, m.amount(t, bobApples))
	aliceOranges, _, err := token.AssociatedAddress(m.alice.Address(), m.orange.Mint)
	require.NoError(t, err)
	assert.EqualValues(t, 50, m.amount(t, aliceOranges))

	offers, err := m.client.ListOffers(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
	_, err = m.client.Offer(ctx, addr)
	assert.True(t, offer.ErrOfferNotFound.Is(err), "got %+v", err)

	// alice now owns apples and oranges
	mine, err := m.client.MyItems(ctx, m.alice.Address())
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestCancelOffer(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	before, err := m.client.Balance(ctx, m.alice.Address())
	require.NoError(t, err)

	addr, err := m.client.CreateOffer(ctx, m.alice, m.apples.TokenAccount, 20, m.orange.TokenAccount, 50)
	require.NoError(t, err)

	err = m.client.CancelOffer(ctx, m.bob, addr)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)

	require.NoError(t, m.client.CancelOffer(ctx, m.alice, addr))
	assert.EqualValues(t, 200, m.amount(t, m.apples.TokenAccount))

	// every rent deposit is back
	after, err := m.client.Balance(ctx, m.alice.Address())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	err = m.client.AcceptOffer(ctx, m.bob, addr)
	assert.True(t, offer.ErrOfferNotFound.Is(err), "got %+v", err)
}

func TestAcceptRacesCancel(t *testing.T) {
	m := newMarket(t)
	ctx := context.Background()

	addr, err := m.client.CreateOffer(ctx, m.alice, m.apples.TokenAccount, 20, m.orange.TokenAccount, 50)
	require.NoError(t, err)

	var (
		wg                   sync.WaitGroup
		acceptErr, cancelErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		acceptErr = m.client.AcceptOffer(ctx, m.bob, addr)
	}()
	go func() {
		defer wg.Done()
		cancelErr = m.client.CancelOffer(ctx, m.alice, addr)
	}()
	wg.Wait()

	if acceptErr == nil {
		assert.True(t, offer.ErrOfferNotFound.Is(cancelErr), "got %+v", cancelErr)
		assert.EqualValues(t, 180, m.amount(t, m.apples.TokenAccount))
	} else {
		require.NoError(t, cancelErr)
		assert.True(t, offer.ErrOfferNotFound.Is(acceptErr), "got %+v", acceptErr)
		assert.EqualValues(t, 200, m.amount(t, m.apples.TokenAccount))
	}
	offers, err := m.client.ListOffers(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestBuildTx(t *testing.T) {
	_, err := BuildTx()
	assert.True(t, errors.ErrEmpty.Is(err))

	tx, err := BuildTx(&offer.CancelMsg{Offer: crypto.GenPrivKeyEd25519().Address()})
	require.NoError(t, err)
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, offer.PathCancelMsg, msg.Path())
}
