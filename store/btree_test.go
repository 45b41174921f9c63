package store

import "testing"

func memStoreConstructor() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestBTreeCacheWrap(t *testing.T) {
	suite := NewTestSuite(memStoreConstructor)
	t.Run("get set", suite.GetSet)
	t.Run("discard", suite.Discard)
	t.Run("iteration", suite.Iteration)
	t.Run("batch", suite.Batch)
}

func TestSliceIteratorPanicsPastEnd(t *testing.T) {
	it := NewSliceIterator([]Model{{Key: []byte("a")}})
	it.Next()
	if it.Valid() {
		t.Fatal("iterator must be exhausted")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	it.Next()
}
