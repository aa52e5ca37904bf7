package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, db KVStore, key, value string) {
	t.Helper()
	require.NoError(t, db.Set([]byte(key), []byte(value)))
}

func queryValue(t *testing.T, db ReadOnlyKVStore, key string) string {
	t.Helper()
	raw, err := db.Get([]byte(key))
	require.NoError(t, err)
	return string(raw)
}

func TestMemStoreSetGetDelete(t *testing.T) {
	db := MemStore()

	mustSet(t, db, "hello", "world")
	assert.Equal(t, "world", queryValue(t, db, "hello"))

	has, err := db.Has([]byte("hello"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete([]byte("hello")))
	has, err = db.Has([]byte("hello"))
	require.NoError(t, err)
	assert.False(t, has)
	assert.Equal(t, "", queryValue(t, db, "hello"))
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	db := MemStore()
	mustSet(t, db, "a", "1")

	// Discarded writes leave the parent untouched.
	cache := db.CacheWrap()
	mustSet(t, cache, "a", "2")
	mustSet(t, cache, "b", "3")
	assert.Equal(t, "2", queryValue(t, cache, "a"))
	cache.Discard()
	assert.Equal(t, "1", queryValue(t, db, "a"))
	assert.Equal(t, "", queryValue(t, db, "b"))

	// Written caches update the parent.
	cache = db.CacheWrap()
	mustSet(t, cache, "a", "2")
	require.NoError(t, cache.Delete([]byte("missing")))
	require.NoError(t, cache.Write())
	assert.Equal(t, "2", queryValue(t, db, "a"))
}

func TestCacheWrapShadowsDeletes(t *testing.T) {
	db := MemStore()
	mustSet(t, db, "a", "1")

	cache := db.CacheWrap()
	require.NoError(t, cache.Delete([]byte("a")))
	assert.Equal(t, "", queryValue(t, cache, "a"))
	// Parent still has it until Write.
	assert.Equal(t, "1", queryValue(t, db, "a"))

	require.NoError(t, cache.Write())
	assert.Equal(t, "", queryValue(t, db, "a"))
}

func TestIteratorCombinesCacheAndParent(t *testing.T) {
	db := MemStore()
	mustSet(t, db, "ab", "1")
	mustSet(t, db, "ac", "2")
	mustSet(t, db, "ba", "3")

	cache := db.CacheWrap()
	mustSet(t, cache, "ad", "4")
	require.NoError(t, cache.Delete([]byte("ac")))

	iter, err := cache.Iterator([]byte("a"), []byte("b"))
	require.NoError(t, err)
	defer iter.Close()

	var keys, values []string
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		keys = append(keys, string(iter.Key()))
		values = append(values, string(iter.Value()))
	}
	assert.Equal(t, []string{"ab", "ad"}, keys)
	assert.Equal(t, []string{"1", "4"}, values)
}

func TestReverseIterator(t *testing.T) {
	db := MemStore()
	mustSet(t, db, "a", "1")
	mustSet(t, db, "b", "2")
	mustSet(t, db, "c", "3")

	iter, err := db.ReverseIterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"c", "b", "a"}, keys)
}

func TestNonAtomicBatch(t *testing.T) {
	db := MemStore()
	batch := NewNonAtomicBatch(db)

	require.NoError(t, batch.Set([]byte("x"), []byte("1")))
	require.NoError(t, batch.Delete([]byte("y")))
	assert.Len(t, batch.ShowOps(), 2)

	// Nothing visible until Write.
	assert.Equal(t, "", queryValue(t, db, "x"))
	require.NoError(t, batch.Write())
	assert.Equal(t, "1", queryValue(t, db, "x"))
	assert.Len(t, batch.ShowOps(), 0)
}
