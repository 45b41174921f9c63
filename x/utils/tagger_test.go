package utils

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

func TestActionTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "offer/accept"}}

	res, err := NewActionTagger().Deliver(ctx, db, tx, &bartertest.Handler{})
	require.NoError(t, err)
	assert.Equal(t, []common.KVPair{{Key: []byte(ActionKey), Value: []byte("offer/accept")}}, res.Tags)

	_, err = NewActionTagger().Deliver(ctx, db, tx, &bartertest.Handler{DeliverErr: errors.ErrState})
	assert.True(t, errors.ErrState.Is(err))

	_, err = NewActionTagger().Deliver(ctx, db, &bartertest.Tx{Err: errors.ErrMsg}, &bartertest.Handler{})
	assert.True(t, errors.ErrMsg.Is(err))
}

type batchWriter struct{}

func (batchWriter) Check(barter.Context, barter.KVStore, barter.Tx) (*barter.CheckResult, error) {
	return &barter.CheckResult{}, nil
}

func (batchWriter) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	db.Set([]byte{0xab}, []byte("x"))
	b := db.NewBatch()
	b.Delete([]byte{0x01})
	b.Write()
	return &barter.DeliverResult{}, nil
}

func TestKeyTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	db.Set([]byte{0x01}, []byte("old"))

	res, err := NewKeyTagger().Deliver(ctx, db, &bartertest.Tx{}, batchWriter{})
	require.NoError(t, err)
	assert.Equal(t, []common.KVPair{
		{Key: []byte("01"), Value: []byte("d")},
		{Key: []byte("AB"), Value: []byte("s")},
	}, res.Tags)
	assert.False(t, db.Has([]byte{0x01}))
	assert.Equal(t, []byte("x"), db.Get([]byte{0xab}))

	// errors carry no tags
	_, err = NewKeyTagger().Deliver(ctx, db, &bartertest.Tx{}, bartertest.WriteHandler{Key: []byte{2}, Err: errors.ErrState})
	assert.True(t, errors.ErrState.Is(err))
}

func TestLogging(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "item/create"}}

	h := &bartertest.Handler{CheckResult: barter.CheckResult{Log: "ok"}}
	res, err := NewLogging().Check(ctx, db, tx, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Log)

	_, err = NewLogging().Deliver(ctx, db, tx, &bartertest.Handler{DeliverErr: errors.ErrState})
	assert.True(t, errors.ErrState.Is(err))
}
