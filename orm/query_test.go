package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketQueries(t *testing.T) {
	db := store.MemStore()
	counters := newCounterBucket()
	labels := NewModelBucket("label", &Label{})
	alice := addr("alice")

	require.NoError(t, counters.Create(db, addr("c1"), &Counter{Owner: alice, Count: 1}))
	require.NoError(t, counters.Create(db, addr("c2"), &Counter{Owner: alice, Count: 2}))
	require.NoError(t, labels.Create(db, addr("l1"), &Label{Text: "fruit"}))

	qr := barter.NewQueryRouter()
	counters.Register("", qr)
	RegisterQuery(qr)

	res, err := qr.Handler("/counters").Query(db, barter.KeyQueryMod, addr("c1"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	var c Counter
	require.NoError(t, proto.Unmarshal(res[0].Value, &c))
	assert.EqualValues(t, 1, c.Count)

	// a label is not a counter
	res, err = qr.Handler("/counters").Query(db, barter.KeyQueryMod, addr("l1"))
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = qr.Handler("/counters").Query(db, barter.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	res, err = qr.Handler("/counters/owner").Query(db, barter.KeyQueryMod, alice)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	res, err = qr.Handler("/accounts").Query(db, barter.KeyQueryMod, addr("l1"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	kind, m, err := DecodeAccount(res[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "label", kind)
	assert.Equal(t, "fruit", m.(*Label).Text)

	_, err = qr.Handler("/counters").Query(db, "range", nil)
	assert.Error(t, err)
}
