package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well as references to
// secondary keyed data. All keys are automatically prefixed with the
// bucket name, so many buckets can share one KVStore.
type Bucket struct {
	name   string
	prefix []byte
	proto  Object
}

var _ Reader = Bucket{}

// NewBucket creates a bucket to store data. The bucket name must match
// [a-z_]{3,10}, anything else panics as this is a programmer error.
func NewBucket(name string, proto Object) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including the bucket prefix.
func (b Bucket) DBKey(key []byte) []byte {
	// Always copy the prefix so we can write to the result without
	// modifying the bucket.
	res := make([]byte, len(b.prefix)+len(key))
	copy(res, b.prefix)
	copy(res[len(b.prefix):], key)
	return res
}

// Get one element, or nil when the key is not in the bucket.
func (b Bucket) Get(db treasury.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and serialized value data and reconstructs the data
// this represents. Used internally as part of Get. It can be used
// externally when an iterator returns a key-value pair.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", b.name)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write the object, returns error if invalid data.
func (b Bucket) Save(db treasury.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid object")
	}

	bz, err := model.Value().Marshal()
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete will remove the value at a key.
func (b Bucket) Delete(db treasury.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Has returns true if the given key is present in the bucket.
func (b Bucket) Has(db treasury.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// ForEach walks all objects stored in the bucket, in ascending key order.
// Walking stops at the first callback error.
func (b Bucket) ForEach(db treasury.ReadOnlyKVStore, fn func(Object) error) error {
	start, end := prefixRange(b.DBKey(nil))
	iter, err := db.Iterator(start, end)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.Valid() {
		obj, err := b.Parse(iter.Key()[len(b.prefix):], iter.Value())
		if err != nil {
			return err
		}
		if err := fn(obj); err != nil {
			return err
		}
		if err := iter.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Register registers this Bucket with the QueryRouter. You must provide a
// name under which to expose the bucket data, usually the extension name.
func (b Bucket) Register(name string, r treasury.QueryRouter) {
	if name == "" {
		name = b.name
	}
	root := "/" + name
	r.Register(root, b)
}

// Query implements treasury.QueryHandler.
func (b Bucket) Query(db treasury.ReadOnlyKVStore, mod string, data []byte) ([]treasury.Model, error) {
	switch mod {
	case treasury.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []treasury.Model{{Key: key, Value: value}}, nil
	case treasury.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %s", mod)
	}
}

// queryPrefix returns all models with given key prefix.
func queryPrefix(db treasury.ReadOnlyKVStore, prefix []byte) ([]treasury.Model, error) {
	start, end := prefixRange(prefix)
	iter, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var res []treasury.Model
	for iter.Valid() {
		res = append(res, treasury.Model{
			Key:   append([]byte(nil), iter.Key()...),
			Value: append([]byte(nil), iter.Value()...),
		})
		if err := iter.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prefixRange turns a prefix into (start, end) to create a range.
// It assumes keys are in ascending order.
//
// In the case of a nil prefix, it returns nil for both, which covers the
// entire key space.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}

	// Copy the prefix and update last byte.
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// Wait, what if that overflowed the last byte? Then we need to
	// shift it and keep going back until we find a non-0xff byte.
	for end[l] == 0 {
		if l == 0 {
			// Overflowed the whole prefix, range is to the end.
			return prefix, nil
		}
		l--
		end[l]++
		end = end[:l+1]
	}
	return prefix, end
}
