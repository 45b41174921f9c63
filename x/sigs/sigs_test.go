package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainID = "sigs-test"

// signedTx signs a plain payload.
type signedTx struct {
	bartertest.Tx
	payload    []byte
	signatures []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)

func (tx *signedTx) GetSignBytes() ([]byte, error)   { return tx.payload, nil }
func (tx *signedTx) GetSignatures() []*StdSignature { return tx.signatures }

func sign(t *testing.T, key crypto.Signer, tx *signedTx, seq int64) {
	t.Helper()
	sig, err := SignTx(key, tx, chainID, seq)
	require.NoError(t, err)
	tx.signatures = append(tx.signatures, sig)
}

func TestVerifySignatures(t *testing.T) {
	db := store.MemStore()
	alice, bob := bartertest.KeyFromName("alice"), bartertest.KeyFromName("bob")

	tx := &signedTx{payload: []byte("swap")}
	sign(t, alice, tx, 0)
	sign(t, bob, tx, 0)

	signers, err := VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Equal(t, []barter.Address{alice.Address(), bob.Address()}, signers)

	// replay is rejected
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	next, err := NextNonce(db, alice.Address())
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)

	// other chain
	other := &signedTx{payload: []byte("swap")}
	sig, err := SignTx(alice, other, "other-chain", 1)
	require.NoError(t, err)
	other.signatures = []*StdSignature{sig}
	_, err = VerifyTxSignatures(db, other, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// tampered payload
	tampered := &signedTx{payload: []byte("swap")}
	sign(t, alice, tampered, 1)
	tampered.payload = []byte("steal")
	_, err = VerifyTxSignatures(db, tampered, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestBuildSignBytes(t *testing.T) {
	a, err := BuildSignBytes([]byte("x"), chainID, 1)
	require.NoError(t, err)
	b, err := BuildSignBytes([]byte("x"), chainID, 2)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)

	_, err = BuildSignBytes([]byte("x"), chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes([]byte("x"), "no", 1)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestCheckAndIncrementSequence(t *testing.T) {
	u := &UserData{Sequence: 5}
	assert.True(t, ErrInvalidSequence.Is(u.CheckAndIncrementSequence(4)))
	require.NoError(t, u.CheckAndIncrementSequence(5))
	assert.Equal(t, int64(6), u.Sequence)

	u = &UserData{Sequence: (1 << 53) - 1}
	assert.True(t, errors.ErrOverflow.Is(u.CheckAndIncrementSequence((1<<53)-1)))
}

func TestDecorator(t *testing.T) {
	ctx := barter.WithChainID(context.Background(), chainID)
	db := store.MemStore()
	alice := bartertest.KeyFromName("alice")

	var seen []barter.Address
	h := handlerFunc(func(ctx barter.Context) {
		seen = Authenticate{}.GetSigners(ctx)
	})

	tx := &signedTx{payload: []byte("a")}
	sign(t, alice, tx, 0)
	res, err := NewDecorator().Check(ctx, db, tx, h)
	require.NoError(t, err)
	assert.Equal(t, int64(signatureVerifyCost), res.GasAllocated)
	assert.Equal(t, []barter.Address{alice.Address()}, seen)
	assert.True(t, Authenticate{}.HasAddress(withSigners(ctx, seen), alice.Address()))

	_, err = NewDecorator().Deliver(ctx, db, &signedTx{payload: []byte("b")}, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = NewDecorator().AllowMissingSigs().Deliver(ctx, db, &signedTx{payload: []byte("b")}, h)
	assert.NoError(t, err)

	_, err = NewDecorator().Deliver(ctx, db, &bartertest.Tx{}, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestQuery(t *testing.T) {
	db := store.MemStore()
	alice := bartertest.KeyFromName("alice")
	tx := &signedTx{payload: []byte("a")}
	sign(t, alice, tx, 0)
	_, err := VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)

	qr := barter.NewQueryRouter()
	RegisterQuery(qr)
	res, err := qr.Handler("/auth").Query(db, "", alice.Address())
	require.NoError(t, err)
	require.Len(t, res, 1)

	res, err = qr.Handler("/auth").Query(db, "", bartertest.NewAddress())
	require.NoError(t, err)
	assert.Empty(t, res)
}

type handlerFunc func(barter.Context)

func (f handlerFunc) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	f(ctx)
	return &barter.CheckResult{}, nil
}

func (f handlerFunc) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	f(ctx)
	return &barter.DeliverResult{}, nil
}
