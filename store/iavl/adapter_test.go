package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memConstructor() (store.CacheableKVStore, func()) {
	s := NewCommitStore("", "")
	return s.Adapter(), s.Close
}

func TestIavlAdapter(t *testing.T) {
	suite := store.NewTestSuite(memConstructor)
	t.Run("get set", suite.GetSet)
	t.Run("discard", suite.Discard)
	t.Run("iteration", suite.Iteration)
	t.Run("batch", suite.Batch)
}

func TestCommitPersists(t *testing.T) {
	dir, err := ioutil.TempDir("", "barter-iavl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	s := NewCommitStore(dir, "state")
	require.NoError(t, s.LoadLatestVersion())
	assert.EqualValues(t, 0, s.LatestVersion().Version)

	cache := s.CacheWrap()
	cache.Set([]byte("offer"), []byte("pending"))
	cache.Write()
	id := s.Commit()
	assert.EqualValues(t, 1, id.Version)
	assert.NotEmpty(t, id.Hash)
	assert.Equal(t, []byte("pending"), s.Get([]byte("offer")))

	// a discarded cache leaves the next version untouched
	cache = s.CacheWrap()
	cache.Delete([]byte("offer"))
	cache.Discard()
	id2 := s.Commit()
	assert.EqualValues(t, 2, id2.Version)
	assert.Equal(t, id.Hash, id2.Hash)
	s.Close()

	reopened := NewCommitStore(dir, "state")
	defer reopened.Close()
	require.NoError(t, reopened.LoadLatestVersion())
	assert.Equal(t, id2, reopened.LatestVersion())
	assert.Equal(t, []byte("pending"), reopened.Get([]byte("offer")))
}
