package barter

// ReadOnlyKVStore is the read side shared by every store and cache.
type ReadOnlyKVStore interface {
	// Get returns nil for a missing key. A nil key panics.
	Get(key []byte) []byte
	// Has panics on a nil key.
	Has(key []byte) bool
	// Iterator walks [start, end) in ascending key order; a nil end means
	// no upper bound. The range must not be written while it is open.
	Iterator(start, end []byte) Iterator
	// ReverseIterator walks [start, end) from the highest key down.
	ReverseIterator(start, end []byte) Iterator
}

// SetDeleter is the write side common to KVStore and Batch. Callers must
// not modify key or value after passing them in.
type SetDeleter interface {
	Set(key, value []byte)
	Delete(key []byte)
}

// KVStore is what handlers and buckets read and write.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	// NewBatch collects writes to apply in one step.
	NewBatch() Batch
}

// Batch applies its queued writes on Write.
type Batch interface {
	SetDeleter
	Write()
}

// Iterator is a cursor over a key range. Close it when done:
//
//   it := db.Iterator(start, end)
//   defer it.Close()
//   for ; it.Valid(); it.Next() {
//     use(it.Key(), it.Value())
//   }
//
// Next, Key and Value panic once Valid reports false, which is final.
// Returned slices are read only.
type Iterator interface {
	Valid() bool
	Next()
	Key() []byte
	Value() []byte
	Close()
}

// CacheableKVStore can stack an uncommitted layer on top of itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap buffers writes over a parent store, which sees them only
// after Write. Discard drops them. Caches nest.
type KVCacheWrap interface {
	CacheableKVStore
	Write()
	Discard()
}

// CommitKVStore is the versioned store at the root of the state.
type CommitKVStore interface {
	// Get reads the last committed version.
	Get(key []byte) []byte
	CacheWrap() KVCacheWrap
	// Commit persists a new version.
	Commit() CommitID
	// LoadLatestVersion falls back to the last complete version after a
	// crash during commit.
	LoadLatestVersion() error
	LatestVersion() CommitID
}

// CommitID names a version by height and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
