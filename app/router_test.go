package app

import (
	"context"
	"testing"

	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	r.Handle("test/set", setHandler{})

	assert.Panics(t, func() { r.Handle("test/set", setHandler{}) })
	assert.Panics(t, func() { r.Handle("bad path!", setHandler{}) })

	db := store.MemStore()
	ctx := context.Background()

	res, err := r.Deliver(ctx, db, &testTx{Msg: &setMsg{Key: []byte("k"), Value: []byte("v")}})
	require.NoError(t, err)
	assert.Equal(t, []byte("k"), res.Data)
	assert.Equal(t, []byte("v"), db.Get([]byte("k")))

	_, err = r.Check(ctx, db, &testTx{Msg: &setMsg{Key: []byte("k"), Route: "test/unknown"}})
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = r.Check(ctx, db, &testTx{})
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestChainOrder(t *testing.T) {
	var log []string
	h := ChainDecorators(
		counting{name: "a", log: &log},
		nil,
		counting{name: "b", log: &log},
	).Chain(counting{name: "c", log: &log}).WithHandler(setHandler{})

	_, err := h.Check(context.Background(), store.MemStore(), &testTx{Msg: &setMsg{Key: []byte("k")}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, log)
}
