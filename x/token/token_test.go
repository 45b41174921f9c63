package token

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/store"
	"github.com/iov-one/barter/x"
	"github.com/iov-one/barter/x/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db      barter.KVStore
	sys     system.BaseController
	control Controller
	payer   barter.Address
	mint    barter.Address
	alice   barter.Address
	bob     barter.Address
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:    store.MemStore(),
		sys:   system.NewController(),
		payer: bartertest.NewAddress(),
		mint:  bartertest.NewAddress(),
		alice: bartertest.NewAddress(),
		bob:   bartertest.NewAddress(),
	}
	f.control = NewController(f.sys)
	require.NoError(t, f.sys.Issue(f.db, f.payer, 1000000000))
	require.NoError(t, f.control.CreateMint(f.db, f.payer, f.mint, f.alice, 0))
	return f
}

func (f *fixture) account(t *testing.T, owner barter.Address) barter.Address {
	t.Helper()
	addr := bartertest.NewAddress()
	require.NoError(t, f.control.CreateAccount(f.db, f.payer, addr, f.mint, owner))
	return addr
}

func TestCreateMintChargesRent(t *testing.T) {
	f := newFixture(t)
	got, err := f.sys.Balance(f.db, f.payer)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000000)-system.RentExemptMinimum(MintSpace), got)

	err = f.control.CreateMint(f.db, f.payer, f.mint, f.alice, 0)
	assert.True(t, errors.ErrDuplicate.Is(err))
}

func TestMintAndTransfer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	aliceAcc := f.account(t, f.alice)
	bobAcc := f.account(t, f.bob)

	asAlice := &bartertest.Auth{Signer: f.alice}
	asBob := &bartertest.Auth{Signer: f.bob}

	err := f.control.MintTo(ctx, asBob, f.db, f.mint, aliceAcc, 200)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	require.NoError(t, f.control.MintTo(ctx, asAlice, f.db, f.mint, aliceAcc, 200))

	m, err := f.control.Mint(f.db, f.mint)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), m.Supply)

	err = f.control.Transfer(ctx, asBob, f.db, aliceAcc, bobAcc, 20)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	require.NoError(t, f.control.Transfer(ctx, asAlice, f.db, aliceAcc, bobAcc, 20))
	err = f.control.Transfer(ctx, asBob, f.db, bobAcc, aliceAcc, 21)
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	got, err := f.control.Balance(f.db, aliceAcc)
	require.NoError(t, err)
	assert.Equal(t, uint64(180), got)
	got, err = f.control.Balance(f.db, bobAcc)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), got)
}

func TestTransferMintMismatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := bartertest.NewAddress()
	require.NoError(t, f.control.CreateMint(f.db, f.payer, other, f.alice, 0))

	aliceAcc := f.account(t, f.alice)
	otherAcc := bartertest.NewAddress()
	require.NoError(t, f.control.CreateAccount(f.db, f.payer, otherAcc, other, f.alice))

	auth := &bartertest.Auth{Signer: f.alice}
	require.NoError(t, f.control.MintTo(ctx, auth, f.db, f.mint, aliceAcc, 5))
	err := f.control.Transfer(ctx, auth, f.db, aliceAcc, otherAcc, 1)
	assert.True(t, ErrMintMismatch.Is(err))
	err = f.control.MintTo(ctx, auth, f.db, f.mint, otherAcc, 1)
	assert.True(t, ErrMintMismatch.Is(err))
}

func TestProgramOwnedAccount(t *testing.T) {
	f := newFixture(t)
	program := barter.NewProgramID("vaults")
	pda, bump, err := barter.FindProgramAddress(program, []byte("vault"))
	require.NoError(t, err)

	vault := f.account(t, pda)
	aliceAcc := f.account(t, f.alice)
	ctx := context.Background()
	require.NoError(t, f.control.MintTo(ctx, &bartertest.Auth{Signer: f.alice}, f.db, f.mint, vault, 10))

	auth := x.ChainAuth(&bartertest.Auth{Signer: f.alice}, x.ProgramAuth{})
	err = f.control.Transfer(ctx, auth, f.db, vault, aliceAcc, 10)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	signed, _, err := x.WithProgramSigner(ctx, program, []byte("vault"), []byte{bump})
	require.NoError(t, err)
	require.NoError(t, f.control.Transfer(signed, auth, f.db, vault, aliceAcc, 10))
	require.NoError(t, f.control.CloseAccount(signed, auth, f.db, vault, f.alice))
	assert.False(t, orm.Exists(f.db, vault))

	got, err := f.sys.Balance(f.db, f.alice)
	require.NoError(t, err)
	assert.Equal(t, system.RentExemptMinimum(AccountSpace), got)
}

func TestAssociatedAccount(t *testing.T) {
	f := newFixture(t)
	addr, err := f.control.EnsureAssociatedAccount(f.db, f.payer, f.bob, f.mint)
	require.NoError(t, err)

	want, _, err := AssociatedAddress(f.bob, f.mint)
	require.NoError(t, err)
	assert.Equal(t, want, addr)
	assert.False(t, barter.IsOnCurve(addr))

	again, err := f.control.EnsureAssociatedAccount(f.db, f.payer, f.bob, f.mint)
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	_, err = f.control.CreateAssociatedAccount(f.db, f.payer, f.bob, f.mint)
	assert.True(t, errors.ErrDuplicate.Is(err))

	keys, accounts, err := f.control.AccountsByOwner(f.db, f.bob)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, []byte(addr), keys[0])
}

func TestCloseAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acc := f.account(t, f.alice)
	auth := &bartertest.Auth{Signer: f.alice}
	require.NoError(t, f.control.MintTo(ctx, auth, f.db, f.mint, acc, 1))

	err := f.control.CloseAccount(ctx, auth, f.db, acc, f.alice)
	assert.True(t, errors.ErrState.Is(err))
	err = f.control.CloseAccount(ctx, &bartertest.Auth{Signer: f.bob}, f.db, acc, f.bob)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestHandlers(t *testing.T) {
	db := store.MemStore()
	sys := system.NewController()
	control := NewController(sys)
	payer, mint, acc := bartertest.NewAddress(), bartertest.NewAddress(), bartertest.NewAddress()
	require.NoError(t, sys.Issue(db, payer, 100000000))

	routes := routerFunc{}
	auth := &bartertest.Auth{Signers: []barter.Address{payer, mint, acc}}
	RegisterRoutes(routes, auth, control)
	ctx := context.Background()

	deliver := func(msg barter.Msg) error {
		_, err := routes[msg.Path()].Deliver(ctx, db, &bartertest.Tx{Msg: msg})
		return err
	}
	require.NoError(t, deliver(&CreateMintMsg{Payer: payer, Mint: mint, MintAuthority: payer}))
	require.NoError(t, deliver(&CreateAccountMsg{Payer: payer, Account: acc, Mint: mint, Owner: payer}))
	require.NoError(t, deliver(&MintToMsg{Mint: mint, Destination: acc, Amount: 7}))
	require.NoError(t, deliver(&CreateAssociatedAccountMsg{Payer: payer, Owner: payer, Mint: mint}))

	ata, _, err := AssociatedAddress(payer, mint)
	require.NoError(t, err)
	require.NoError(t, deliver(&TransferMsg{Source: acc, Destination: ata, Amount: 7}))
	require.NoError(t, deliver(&CloseAccountMsg{Account: acc, Recipient: payer}))

	got, err := control.Balance(db, ata)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)

	// the mint key must sign
	other := bartertest.NewAddress()
	err = deliver(&CreateMintMsg{Payer: payer, Mint: other})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	acc := f.account(t, f.alice)

	qr := barter.NewQueryRouter()
	RegisterQuery(qr)
	res, err := qr.Handler("/tokenaccounts/owner").Query(f.db, "", f.alice)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []byte(acc), res[0].Key)

	res, err = qr.Handler("/mints").Query(f.db, "", f.mint)
	require.NoError(t, err)
	require.Len(t, res, 1)
}

type routerFunc map[string]barter.Handler

func (r routerFunc) Handle(path string, h barter.Handler) { r[path] = h }
