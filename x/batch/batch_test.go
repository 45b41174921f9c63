package batch

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	barter.RegisterMsg(&bartertest.Msg{RoutePath: "test/batched"})
}

// recorder stores the payload of every message it sees.
type recorder struct {
	failOn string
	seen   []string
}

func (r *recorder) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	return &barter.CheckResult{GasAllocated: 1}, nil
}

func (r *recorder) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	payload := string(msg.(*bartertest.Msg).Serialized)
	r.seen = append(r.seen, payload)
	if payload == r.failOn {
		return nil, errors.ErrState.New("failing on " + payload)
	}
	db.Set([]byte(payload), []byte{1})
	return &barter.DeliverResult{Data: []byte(payload), Log: payload}, nil
}

func batchOf(t *testing.T, payloads ...string) *ExecuteBatchMsg {
	t.Helper()
	msgs := make([]barter.Msg, len(payloads))
	for i, p := range payloads {
		msgs[i] = &bartertest.Msg{RoutePath: "test/batched", Serialized: []byte(p)}
	}
	batch, err := NewExecuteBatchMsg(msgs...)
	require.NoError(t, err)
	return batch
}

func TestBatchDeliver(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	h := &recorder{}

	res, err := NewDecorator().Deliver(ctx, db, &bartertest.Tx{Msg: batchOf(t, "a", "b")}, h)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, h.seen)
	assert.Equal(t, "a\nb", res.Log)

	datas, err := SplitData(res.Data)
	require.NoError(t, err)
	require.Len(t, datas, 2)
	assert.Equal(t, []byte("a"), datas[0])
	assert.Equal(t, []byte("b"), datas[1])
}

func TestBatchCheck(t *testing.T) {
	res, err := NewDecorator().Check(context.Background(), store.MemStore(), &bartertest.Tx{Msg: batchOf(t, "a", "b", "c")}, &recorder{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.GasAllocated)
}

func TestBatchStopsOnError(t *testing.T) {
	h := &recorder{failOn: "b"}
	_, err := NewDecorator().Deliver(context.Background(), store.MemStore(), &bartertest.Tx{Msg: batchOf(t, "a", "b", "c")}, h)
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, []string{"a", "b"}, h.seen)
}

func TestNonBatchPassesThrough(t *testing.T) {
	h := &recorder{}
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "test/batched", Serialized: []byte("solo")}}
	_, err := NewDecorator().Deliver(context.Background(), store.MemStore(), tx, h)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, h.seen)
}

func TestBatchValidate(t *testing.T) {
	assert.True(t, errors.ErrEmpty.Is((&ExecuteBatchMsg{}).Validate()))

	nested, err := barter.Seal(batchOf(t, "a"))
	require.NoError(t, err)
	assert.True(t, errors.ErrMsg.Is((&ExecuteBatchMsg{Messages: []*barter.MsgEnvelope{nested}}).Validate()))

	unknown := &ExecuteBatchMsg{Messages: []*barter.MsgEnvelope{{Path: "nope"}}}
	assert.True(t, errors.ErrMsg.Is(unknown.Validate()))

	many := make([]string, MaxBatchMessages+1)
	assert.True(t, errors.ErrInput.Is(batchOf(t, many...).Validate()))
	assert.NoError(t, batchOf(t, "a").Validate())
}
