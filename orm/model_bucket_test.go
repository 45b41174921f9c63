package orm

import (
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerIndexer(m Model) ([]byte, error) {
	c, ok := m.(*Counter)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", m)
	}
	return c.Owner, nil
}

func newCounterBucket() ModelBucket {
	return NewModelBucket("counter", &Counter{}, WithIndex("owner", ownerIndexer, false))
}

func addr(name string) barter.Address {
	return barter.NewProgramID(name)
}

func TestModelBucketCrud(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	key := addr("c1")
	require.NoError(t, b.Create(db, key, &Counter{Owner: addr("alice"), Count: 1}))
	assert.True(t, b.Has(db, key))

	var c Counter
	require.NoError(t, b.One(db, key, &c))
	assert.EqualValues(t, 1, c.Count)

	err := b.Create(db, key, &Counter{Count: 2})
	assert.True(t, errors.ErrDuplicate.Is(err), "%+v", err)

	require.NoError(t, b.Put(db, key, &Counter{Owner: addr("alice"), Count: 2}))
	require.NoError(t, b.One(db, key, &c))
	assert.EqualValues(t, 2, c.Count)

	err = b.Put(db, key, &Counter{Count: -1})
	assert.True(t, errors.ErrModel.Is(err))

	require.NoError(t, b.Delete(db, key))
	assert.False(t, b.Has(db, key))
	assert.True(t, errors.ErrNotFound.Is(b.Delete(db, key)))
	assert.True(t, errors.ErrNotFound.Is(b.One(db, key, &c)))
}

func TestKindsDoNotMix(t *testing.T) {
	db := store.MemStore()
	counters := newCounterBucket()
	labels := NewModelBucket("label", &Label{})

	key := addr("shared")
	require.NoError(t, labels.Create(db, key, &Label{Text: "apples"}))

	var c Counter
	err := counters.One(db, key, &c)
	assert.True(t, errors.ErrType.Is(err), "%+v", err)
	assert.False(t, counters.Has(db, key))

	err = counters.Create(db, key, &Counter{Count: 1})
	assert.True(t, errors.ErrDuplicate.Is(err))
	err = counters.Put(db, key, &Counter{Count: 1})
	assert.True(t, errors.ErrType.Is(err))

	err = counters.Put(db, addr("other"), &Label{Text: "x"})
	assert.True(t, errors.ErrType.Is(err))

	kind, m, err := LoadAccount(db, key)
	require.NoError(t, err)
	assert.Equal(t, "label", kind)
	assert.Equal(t, "apples", m.(*Label).Text)

	_, _, err = LoadAccount(db, addr("missing"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketIndexes(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()
	alice, bob := addr("alice"), addr("bob")

	require.NoError(t, b.Create(db, addr("c1"), &Counter{Owner: alice, Count: 1}))
	require.NoError(t, b.Create(db, addr("c2"), &Counter{Owner: alice, Count: 2}))
	require.NoError(t, b.Create(db, addr("c3"), &Counter{Owner: bob, Count: 3}))

	var found []*Counter
	keys, err := b.ByIndex(db, "owner", alice, &found)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
	assert.Len(t, found, 2)

	// moving c2 to bob updates both index entries
	require.NoError(t, b.Put(db, addr("c2"), &Counter{Owner: bob, Count: 2}))
	found = nil
	_, err = b.ByIndex(db, "owner", bob, &found)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	require.NoError(t, b.Delete(db, addr("c3")))
	found = nil
	keys, err = b.ByIndex(db, "owner", bob, &found)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{addr("c2")}, keys)

	_, err = b.ByIndex(db, "missing", bob, &found)
	assert.True(t, ErrInvalidIndex.Is(err))

	var wrong []*Label
	_, err = b.ByIndex(db, "owner", bob, &wrong)
	assert.True(t, errors.ErrType.Is(err))
}

func TestUniqueIndex(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("ucounter", &Counter{}, WithIndex("owner", ownerIndexer, true))

	require.NoError(t, b.Create(db, addr("u1"), &Counter{Owner: addr("alice")}))
	err := b.Create(db, addr("u2"), &Counter{Owner: addr("alice")})
	assert.True(t, errors.ErrDuplicate.Is(err))
	// updating the owner of the holder itself is fine
	require.NoError(t, b.Put(db, addr("u1"), &Counter{Owner: addr("alice"), Count: 5}))
}

func TestModelBucketAll(t *testing.T) {
	db := store.MemStore()
	counters := newCounterBucket()
	labels := NewModelBucket("label", &Label{})

	require.NoError(t, counters.Create(db, addr("c1"), &Counter{Count: 1}))
	require.NoError(t, labels.Create(db, addr("l1"), &Label{Text: "fruit"}))
	require.NoError(t, counters.Create(db, addr("c2"), &Counter{Count: 2}))

	var all []*Counter
	keys, err := counters.All(db, &all)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
	assert.Len(t, all, 2)
}

func TestPrefixRange(t *testing.T) {
	start, end := PrefixRange([]byte{1, 0xff})
	assert.Equal(t, []byte{1, 0xff}, start)
	assert.Equal(t, []byte{2}, end)

	_, end = PrefixRange([]byte{0xff, 0xff})
	assert.Nil(t, end)

	start, end = PrefixRange(nil)
	assert.Nil(t, start)
	assert.Nil(t, end)
}
