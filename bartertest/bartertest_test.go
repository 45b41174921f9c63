package bartertest

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCounts(t *testing.T) {
	h := &Handler{CheckErr: errors.ErrUnauthorized}
	db := store.MemStore()
	ctx := context.Background()

	_, err := h.Check(ctx, db, &Tx{})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = h.Deliver(ctx, db, &Tx{})
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestWriteHandler(t *testing.T) {
	db := store.MemStore()
	h := WriteHandler{Key: []byte("k"), Value: []byte("v"), Err: errors.ErrState}
	_, err := h.Deliver(context.Background(), db, &Tx{})
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, []byte("v"), db.Get([]byte("k")))
}

func TestAuth(t *testing.T) {
	a, b, c := NewAddress(), NewAddress(), NewAddress()
	ctx := context.Background()

	auth := &Auth{Signer: a, Signers: []barter.Address{b}}
	assert.True(t, auth.HasAddress(ctx, a))
	assert.True(t, auth.HasAddress(ctx, b))
	assert.False(t, auth.HasAddress(ctx, c))
	assert.Equal(t, a, auth.GetSigners(ctx)[0])
}

func TestKeyFromName(t *testing.T) {
	assert.Equal(t, KeyFromName("alice").Address(), KeyFromName("alice").Address())
	assert.False(t, KeyFromName("alice").Address().Equals(KeyFromName("bob").Address()))
}
