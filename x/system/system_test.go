package system

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentExemptMinimum(t *testing.T) {
	assert.Equal(t, uint64(890880), RentExemptMinimum(0))
	assert.Equal(t, uint64(2039280), RentExemptMinimum(165))
}

func TestTransfer(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice, bob := bartertest.NewAddress(), bartertest.NewAddress()

	require.NoError(t, c.Issue(db, alice, 100))
	require.NoError(t, c.Transfer(db, alice, bob, 40))

	got, err := c.Balance(db, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), got)
	got, err = c.Balance(db, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), got)

	err = c.Transfer(db, bob, alice, 41)
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
	err = c.Transfer(db, bob, alice, 0)
	assert.True(t, errors.ErrAmount.Is(err))

	got, err = c.Balance(db, bartertest.NewAddress())
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestAllocateAndReclaim(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	payer, addr, program := bartertest.NewAddress(), bartertest.NewAddress(), barter.NewProgramID("test")
	rent := RentExemptMinimum(10)

	err := c.Allocate(db, payer, addr, program, 10)
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	require.NoError(t, c.Issue(db, payer, rent*2))
	require.NoError(t, c.Allocate(db, payer, addr, program, 10))

	a, err := c.Allocation(db, addr)
	require.NoError(t, err)
	assert.Equal(t, &Allocation{Payer: payer, Owner: program, Space: 10, Lamports: rent}, a)

	err = c.Allocate(db, payer, addr, program, 10)
	assert.True(t, errors.ErrDuplicate.Is(err))

	assert.True(t, c.InUse(db, addr))

	recipient := bartertest.NewAddress()
	n, err := c.Reclaim(db, addr, recipient)
	require.NoError(t, err)
	assert.Equal(t, rent, n)
	got, err := c.Balance(db, recipient)
	require.NoError(t, err)
	assert.Equal(t, rent, got)

	_, err = c.Reclaim(db, addr, recipient)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestAllocateFoldsWallet(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	payer, addr, program := bartertest.NewAddress(), bartertest.NewAddress(), barter.NewProgramID("test")
	rent := RentExemptMinimum(4)
	require.NoError(t, c.Issue(db, payer, rent))

	// someone sent lamports to the address before it was allocated
	require.NoError(t, c.Issue(db, addr, 7))
	assert.False(t, c.InUse(db, addr))

	require.NoError(t, c.Allocate(db, payer, addr, program, 4))
	assert.True(t, c.InUse(db, addr))
	a, err := c.Allocation(db, addr)
	require.NoError(t, err)
	assert.Equal(t, rent+7, a.Lamports)
	got, err := c.Balance(db, addr)
	require.NoError(t, err)
	assert.Zero(t, got)

	recipient := bartertest.NewAddress()
	n, err := c.Reclaim(db, addr, recipient)
	require.NoError(t, err)
	assert.Equal(t, rent+7, n)
}

func TestReclaimRequiresDeletedRecord(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	payer, program := bartertest.NewAddress(), barter.NewProgramID("test")
	require.NoError(t, c.Issue(db, payer, RentExemptMinimum(0)))

	// the payer wallet record is the account at that address
	addr := bartertest.NewAddress()
	require.NoError(t, c.Allocate(db, payer, addr, program, 0))
	require.NoError(t, c.Issue(db, addr, 1))
	_, err := c.Reclaim(db, addr, payer)
	assert.True(t, errors.ErrState.Is(err))
}

func TestSendHandler(t *testing.T) {
	db := store.MemStore()
	c := NewController()
	alice, bob := bartertest.NewAddress(), bartertest.NewAddress()
	require.NoError(t, c.Issue(db, alice, 50))

	auth := &bartertest.Auth{Signer: alice}
	rt := routerFunc{}
	RegisterRoutes(rt, auth, c)
	h := rt[PathSendMsg]

	ctx := context.Background()
	tx := &bartertest.Tx{Msg: &SendMsg{Source: alice, Destination: bob, Lamports: 20}}
	_, err := h.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = h.Deliver(ctx, db, tx)
	require.NoError(t, err)
	got, _ := c.Balance(db, bob)
	assert.Equal(t, uint64(20), got)

	stolen := &bartertest.Tx{Msg: &SendMsg{Source: bob, Destination: alice, Lamports: 20}}
	_, err = h.Deliver(ctx, db, stolen)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestGenesis(t *testing.T) {
	alice := bartertest.NewAddress()
	raw, err := json.Marshal([]GenesisWallet{{Address: alice, Lamports: 1000}})
	require.NoError(t, err)

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(barter.Options{"system": raw}, db))
	got, err := NewController().Balance(db, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), got)
}

func TestAllocationWireFormat(t *testing.T) {
	a := &Allocation{
		Payer:    bartertest.NewAddress(),
		Owner:    barter.NewProgramID("test"),
		Space:    10,
		Lamports: 5,
	}
	raw, err := a.Marshal()
	require.NoError(t, err)
	assert.Equal(t, a.Size(), len(raw))

	// fields added by a later version are skipped
	raw = append(raw, 0x28, 0x07)
	var got Allocation
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, a, &got)

	assert.Error(t, got.Unmarshal(raw[:len(raw)-3]))
}

type routerFunc map[string]barter.Handler

func (r routerFunc) Handle(path string, h barter.Handler) { r[path] = h }
