package orm

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal CloneableData implementation for tests.
type counter struct {
	Count int64
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(c.Count))
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrap(errors.ErrInput, "invalid length")
	}
	c.Count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func newCounterBucket() Bucket {
	return NewBucket("cnts", NewSimpleObj(nil, &counter{}))
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	// Missing key returns nil without an error.
	obj, err := b.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	require.NoError(t, b.Save(db, NewSimpleObj([]byte("some"), &counter{Count: 5})))

	obj, err = b.Get(db, []byte("some"))
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, []byte("some"), obj.Key())
	assert.Equal(t, int64(5), obj.Value().(*counter).Count)

	require.NoError(t, b.Delete(db, []byte("some")))
	obj, err = b.Get(db, []byte("some"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketRejectsInvalidObject(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	// Invalid value.
	err := b.Save(db, NewSimpleObj([]byte("some"), &counter{Count: -1}))
	assert.Error(t, err)

	// Missing key.
	err = b.Save(db, NewSimpleObj(nil, &counter{Count: 1}))
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestBucketIsolation(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("onex", NewSimpleObj(nil, &counter{}))
	two := NewBucket("twox", NewSimpleObj(nil, &counter{}))

	require.NoError(t, one.Save(db, NewSimpleObj([]byte("key"), &counter{Count: 1})))

	obj, err := two.Get(db, []byte("key"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketForEach(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	for i, key := range []string{"bb", "aa", "cc"} {
		obj := NewSimpleObj([]byte(key), &counter{Count: int64(i + 1)})
		require.NoError(t, b.Save(db, obj))
	}

	var keys []string
	var total int64
	err := b.ForEach(db, func(obj Object) error {
		keys = append(keys, string(obj.Key()))
		total += obj.Value().(*counter).Count
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb", "cc"}, keys)
	assert.Equal(t, int64(6), total)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()
	qr := treasury.NewQueryRouter()
	b.Register("counters", qr)

	require.NoError(t, b.Save(db, NewSimpleObj([]byte("aa"), &counter{Count: 7})))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("ab"), &counter{Count: 8})))

	h := qr.Handler("/counters")
	require.NotNil(t, h)

	models, err := h.Query(db, treasury.KeyQueryMod, []byte("aa"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, b.DBKey([]byte("aa")), models[0].Key)

	models, err = h.Query(db, treasury.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	assert.Len(t, models, 2)

	_, err = h.Query(db, "range", nil)
	assert.Error(t, err)
}

func TestBucketIllegalName(t *testing.T) {
	assert.Panics(t, func() {
		NewBucket("UPPER", NewSimpleObj(nil, &counter{}))
	})
}
