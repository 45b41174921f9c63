package store

import (
	"bytes"

	"github.com/google/btree"
)

// MemStore returns an empty in memory store. Nothing is persisted.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return newCacheWrap(empty, empty.NewBatch(), nil)
}

// BTreeCacheable makes any KVStore cacheable by buffering writes in a
// btree until the cache is written.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return newCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// cacheWrap answers reads from its pending writes first and from the
// parent store otherwise. Every write also goes to a batch over the parent,
// applied on Write.
type cacheWrap struct {
	pending *btree.BTree
	free    *btree.FreeList
	parent  ReadOnlyKVStore
	batch   Batch
}

var _ KVCacheWrap = cacheWrap{}

// free is shared by nested caches, a transaction creates and drops many.
func newCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) cacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return cacheWrap{
		pending: btree.NewWithFreeList(2, free),
		free:    free,
		parent:  parent,
		batch:   batch,
	}
}

// CacheWrap stacks another cache whose batch writes into this one.
func (c cacheWrap) CacheWrap() KVCacheWrap {
	return newCacheWrap(c, c.NewBatch(), c.free)
}

func (c cacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(c)
}

// Write flushes the pending writes to the parent and empties the cache.
func (c cacheWrap) Write() {
	c.batch.Write()
	c.Discard()
}

// Discard drops the pending writes, tree nodes go back to the free list.
func (c cacheWrap) Discard() {
	for c.pending.DeleteMin() != nil {
	}
}

func (c cacheWrap) Set(key, value []byte) {
	c.pending.ReplaceOrInsert(&entry{key: key, value: value})
	c.batch.Set(key, value)
}

func (c cacheWrap) Delete(key []byte) {
	c.pending.ReplaceOrInsert(&entry{key: key, deleted: true})
	c.batch.Delete(key)
}

func (c cacheWrap) Get(key []byte) []byte {
	if e := c.lookup(key); e != nil {
		return e.value
	}
	return c.parent.Get(key)
}

func (c cacheWrap) Has(key []byte) bool {
	if e := c.lookup(key); e != nil {
		return !e.deleted
	}
	return c.parent.Has(key)
}

func (c cacheWrap) Iterator(start, end []byte) Iterator {
	return newMergeIterator(c.pendingRange(start, end, false), c.parent.Iterator(start, end), false)
}

func (c cacheWrap) ReverseIterator(start, end []byte) Iterator {
	return newMergeIterator(c.pendingRange(start, end, true), c.parent.ReverseIterator(start, end), true)
}

// lookup returns the pending write of key, nil if there is none.
func (c cacheWrap) lookup(key []byte) *entry {
	if item := c.pending.Get(&entry{key: key}); item != nil {
		return item.(*entry)
	}
	return nil
}

// entry is one pending write. A deleted entry hides the parent key.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = (*entry)(nil)

func (e *entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(*entry).key) < 0
}
