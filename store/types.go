//nolint
package store

import "github.com/iov-one/barter"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = barter.ReadOnlyKVStore
type SetDeleter = barter.SetDeleter
type KVStore = barter.KVStore
type Batch = barter.Batch
type Iterator = barter.Iterator
type CacheableKVStore = barter.CacheableKVStore
type KVCacheWrap = barter.KVCacheWrap
type CommitKVStore = barter.CommitKVStore
type CommitID = barter.CommitID
type Model = barter.Model
