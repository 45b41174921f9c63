package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuite provides the checks every CacheableKVStore implementation must
// pass. Packages customize the store being tested by passing a constructor,
// the rest of the logic is generic to the interface.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a cleanup function.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// NewTestSuite returns a suite running against stores built by constructor.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet does basic sanity checks on cache layering.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("mint"), []byte("apples")
	assertGetHas(t, base, k, nil, false)
	base.Set(k, v)
	assertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	assertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("vault"), []byte("20")
	cache.Set(k2, v2)
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	// deletes are also hidden until written
	cache.Delete(k)
	assertGetHas(t, cache, k, nil, false)
	assertGetHas(t, base, k, v, true)

	cache.Write()
	assertGetHas(t, base, k, nil, false)
	assertGetHas(t, base, k2, v2, true)
}

// Discard verifies that discarded writes never reach the parent.
func (s *TestSuite) Discard(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	base.Set([]byte("offer"), []byte("pending"))
	cache := base.CacheWrap()
	cache.Delete([]byte("offer"))
	cache.Set([]byte("vault"), []byte("20"))
	cache.Discard()

	assertGetHas(t, base, []byte("offer"), []byte("pending"), true)
	assertGetHas(t, base, []byte("vault"), nil, false)
}

// Iteration checks both directions over a cache that overwrites and deletes
// parent entries.
func (s *TestSuite) Iteration(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	for i := 0; i < 6; i++ {
		base.Set([]byte(fmt.Sprintf("k%d", i)), []byte("base"))
	}
	cache := base.CacheWrap()
	cache.Delete([]byte("k1"))
	cache.Set([]byte("k2"), []byte("cache"))
	cache.Set([]byte("k35"), []byte("cache"))
	cache.Delete([]byte("k5"))

	got := ReadAll(cache.Iterator(nil, nil))
	assert.Equal(t, []string{"k0", "k2", "k3", "k35", "k4"}, keys(got))
	assert.Equal(t, "cache", string(got[1].Value))

	got = ReadAll(cache.Iterator([]byte("k2"), []byte("k4")))
	assert.Equal(t, []string{"k2", "k3", "k35"}, keys(got))

	got = ReadAll(cache.ReverseIterator(nil, nil))
	assert.Equal(t, []string{"k4", "k35", "k3", "k2", "k0"}, keys(got))

	got = ReadAll(cache.ReverseIterator([]byte("k1"), []byte("k35")))
	assert.Equal(t, []string{"k3", "k2"}, keys(got))

	// nested cache sees the same view
	nested := cache.CacheWrap()
	nested.Delete([]byte("k0"))
	got = ReadAll(nested.Iterator(nil, []byte("k3")))
	assert.Equal(t, []string{"k2"}, keys(got))
}

// Batch checks that batched writes are applied only on Write.
func (s *TestSuite) Batch(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	b := base.NewBatch()
	b.Set([]byte("a"), []byte("1"))
	b.Delete([]byte("b"))
	assertGetHas(t, base, []byte("a"), nil, false)
	b.Write()
	assertGetHas(t, base, []byte("a"), []byte("1"), true)
}

func assertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	require.Equal(t, has, kv.Has(key), "has %s", key)
	assert.Equal(t, val, kv.Get(key), "get %s", key)
}

func keys(models []Model) []string {
	res := make([]string, len(models))
	for i, m := range models {
		res[i] = string(m.Key)
	}
	return res
}
