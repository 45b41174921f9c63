package item

import (
	"context"
	"strings"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/iov-one/barter/x/system"
	"github.com/iov-one/barter/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db     barter.KVStore
	tokens token.Controller
	items  Controller
	seller barter.Address
	mint   barter.Address
	acc    barter.Address
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sys := system.NewController()
	f := &fixture{
		db:     store.MemStore(),
		tokens: token.NewController(sys),
		seller: bartertest.NewAddress(),
		mint:   bartertest.NewAddress(),
		acc:    bartertest.NewAddress(),
	}
	f.items = NewController(sys, f.tokens)
	require.NoError(t, sys.Issue(f.db, f.seller, 1000000000))
	require.NoError(t, f.tokens.CreateMint(f.db, f.seller, f.mint, f.seller, 0))
	require.NoError(t, f.tokens.CreateAccount(f.db, f.seller, f.acc, f.mint, f.seller))
	auth := &bartertest.Auth{Signer: f.seller}
	require.NoError(t, f.tokens.MintTo(context.Background(), auth, f.db, f.mint, f.acc, 200))
	return f
}

func (f *fixture) msg(name string) *CreateMsg {
	return &CreateMsg{
		Item:         bartertest.NewAddress(),
		Seller:       f.seller,
		Mint:         f.mint,
		TokenAccount: f.acc,
		Name:         name,
		Market:       "Fruit",
	}
}

func TestCreateItem(t *testing.T) {
	f := newFixture(t)
	msg := f.msg("Apples")
	h := CreateHandler{auth: &bartertest.Auth{Signers: []barter.Address{f.seller, msg.Item}}, control: f.items}

	ctx := context.Background()
	_, err := h.Check(ctx, f.db, &bartertest.Tx{Msg: msg})
	require.NoError(t, err)
	res, err := h.Deliver(ctx, f.db, &bartertest.Tx{Msg: msg})
	require.NoError(t, err)
	assert.Equal(t, []byte(msg.Item), res.Data)

	it, err := f.items.Get(f.db, msg.Item)
	require.NoError(t, err)
	assert.Equal(t, "Apples", it.Name)
	assert.Equal(t, "Fruit", it.Market)

	supply, err := f.items.Supply(f.db, msg.Item)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), supply)

	keys, items, err := f.items.All(f.db)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []byte(msg.Item), keys[0])

	_, items, err = f.items.BySeller(f.db, f.seller)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	addr, _, err := f.items.ByMint(f.db, f.mint)
	require.NoError(t, err)
	assert.Equal(t, msg.Item, addr)

	// one item per mint
	again := f.msg("Pears")
	err = f.items.Create(f.db, again.Item, again.toItem())
	assert.True(t, errors.ErrDuplicate.Is(err))
}

func TestNameBoundary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	long := f.msg(strings.Repeat("a", MaxNameLength+1))
	h := CreateHandler{auth: &bartertest.Auth{Signers: []barter.Address{f.seller, long.Item}}, control: f.items}
	_, err := h.Deliver(ctx, f.db, &bartertest.Tx{Msg: long})
	assert.True(t, ErrNameTooLong.Is(err))
	assert.Equal(t, uint32(101), ErrNameTooLong.ABCICode())

	exact := f.msg(strings.Repeat("a", MaxNameLength))
	h = CreateHandler{auth: &bartertest.Auth{Signers: []barter.Address{f.seller, exact.Item}}, control: f.items}
	_, err = h.Deliver(ctx, f.db, &bartertest.Tx{Msg: exact})
	assert.NoError(t, err)
}

func TestCreateItemChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]struct {
		mutate  func(*CreateMsg)
		signers func(*CreateMsg) []barter.Address
		wantErr *errors.Error
	}{
		"item key must sign": {
			signers: func(m *CreateMsg) []barter.Address { return []barter.Address{m.Seller} },
			wantErr: errors.ErrUnauthorized,
		},
		"seller must own the token account": {
			mutate:  func(m *CreateMsg) { m.Seller = bartertest.NewAddress() },
			wantErr: errors.ErrUnauthorized,
		},
		"token account must hold the mint": {
			mutate:  func(m *CreateMsg) { m.Mint = f.acc },
			wantErr: errors.ErrType,
		},
		"empty market": {
			mutate:  func(m *CreateMsg) { m.Market = "" },
			wantErr: errors.ErrEmpty,
		},
		"missing token account": {
			mutate:  func(m *CreateMsg) { m.TokenAccount = bartertest.NewAddress() },
			wantErr: errors.ErrNotFound,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := f.msg("Apples")
			if tc.mutate != nil {
				tc.mutate(msg)
			}
			signers := []barter.Address{msg.Seller, msg.Item}
			if tc.signers != nil {
				signers = tc.signers(msg)
			}
			h := CreateHandler{auth: &bartertest.Auth{Signers: signers}, control: f.items}
			_, err := h.Deliver(ctx, f.db, &bartertest.Tx{Msg: msg})
			assert.True(t, tc.wantErr.Is(err), "got %+v", err)
		})
	}
}

func TestMintMismatch(t *testing.T) {
	f := newFixture(t)
	other := bartertest.NewAddress()
	require.NoError(t, f.tokens.CreateMint(f.db, f.seller, other, f.seller, 0))

	msg := f.msg("Apples")
	msg.Mint = other
	err := f.items.Create(f.db, msg.Item, msg.toItem())
	assert.True(t, token.ErrMintMismatch.Is(err))
}
