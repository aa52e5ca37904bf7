package store

import "github.com/iov-one/treasury"

// Shorter references for all storage types used within this package.

type ReadOnlyKVStore = treasury.ReadOnlyKVStore
type KVStore = treasury.KVStore
type SetDeleter = treasury.SetDeleter
type Batch = treasury.Batch
type Iterator = treasury.Iterator
type CacheableKVStore = treasury.CacheableKVStore
type KVCacheWrap = treasury.KVCacheWrap
type Model = treasury.Model
