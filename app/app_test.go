package app

import (
	"context"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

func newTestApp(t *testing.T) BaseApp {
	t.Helper()
	qr := barter.NewQueryRouter()
	qr.Register("/raw", keyQuery{})
	r := NewRouter()
	r.Handle("test/set", setHandler{})

	s := NewStoreApp("test", iavl.NewCommitStore("", ""), qr, context.Background())
	res := s.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`{}`)})
	assert.Equal(t, abci.ResponseInitChain{}, res)
	return NewBaseApp(s, decodeTestTx, r, false)
}

func encodeSet(t *testing.T, key, value string) []byte {
	t.Helper()
	raw, err := proto.Marshal(&testTx{Msg: &setMsg{Key: []byte(key), Value: []byte(value)}})
	require.NoError(t, err)
	return raw
}

func TestBaseAppDeliverAndQuery(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, "test-chain", a.GetChainID())

	a.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, ChainID: "test-chain"}})

	chk := a.CheckTx(encodeSet(t, "apples", "200"))
	assert.EqualValues(t, 0, chk.Code, chk.Log)

	res := a.DeliverTx(encodeSet(t, "apples", "200"))
	require.EqualValues(t, 0, res.Code, res.Log)

	// not visible to queries before commit
	q := a.Query(abci.RequestQuery{Path: "/raw", Data: []byte("apples")})
	require.EqualValues(t, 0, q.Code, q.Log)
	var values ResultSet
	require.NoError(t, values.Unmarshal(q.Value))
	assert.Empty(t, values.Results)

	commit := a.Commit()
	assert.NotEmpty(t, commit.Data)

	q = a.Query(abci.RequestQuery{Path: "/raw", Data: []byte("apples")})
	require.EqualValues(t, 0, q.Code, q.Log)
	var keys ResultSet
	require.NoError(t, keys.Unmarshal(q.Key))
	require.NoError(t, values.Unmarshal(q.Value))
	models, err := JoinResults(&keys, &values)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "200", string(models[0].Value))

	info := a.Info(abci.RequestInfo{})
	assert.EqualValues(t, 1, info.LastBlockHeight)
	assert.Equal(t, "test", info.Data)
}

func TestBaseAppErrors(t *testing.T) {
	a := newTestApp(t)

	res := a.DeliverTx([]byte{0xff, 0xff})
	assert.NotEqual(t, uint32(0), res.Code)

	raw, err := proto.Marshal(&testTx{Msg: &setMsg{}})
	require.NoError(t, err)
	res = a.DeliverTx(raw)
	assert.Equal(t, errors.ErrEmpty.ABCICode(), res.Code)

	q := a.Query(abci.RequestQuery{Path: "/nothing"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), q.Code)
}

func TestInitChainTwicePanics(t *testing.T) {
	a := newTestApp(t)
	assert.Panics(t, func() {
		a.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`{}`)})
	})
}

func TestUnmarshalOneResult(t *testing.T) {
	raw, err := ResultsFromValues([]barter.Model{{Value: mustMarshal(t, &setMsg{Key: []byte("x")})}}).Marshal()
	require.NoError(t, err)
	var msg setMsg
	require.NoError(t, UnmarshalOneResult(raw, &msg))
	assert.Equal(t, []byte("x"), msg.Key)

	empty, err := ResultsFromValues(nil).Marshal()
	require.NoError(t, err)
	assert.True(t, errors.ErrNotFound.Is(UnmarshalOneResult(empty, &msg)))
}

func mustMarshal(t *testing.T, m proto.Message) []byte {
	raw, err := proto.Marshal(m)
	require.NoError(t, err)
	return raw
}
