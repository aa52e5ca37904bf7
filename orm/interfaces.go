/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary index (which may be composite),
and may possess secondary indexes.
* It may possess one or more secondary indexes (1:1 or 1:N)
* Easy queries for one and iteration over range,
* Easy to use registry of models to query with the QueryRouter
*/
package orm

import (
	"github.com/iov-one/treasury"
)

// Object is what is stored in the bucket: a key with a cloneable,
// validatable value.
type Object interface {
	// Key returns the primary key of the object.
	Keyed
	// Value returns the value stored under the key.
	Value() CloneableData
	// Validate returns error if the object is not in a valid state to
	// save to the db (missing key, invalid value).
	Validate() error
	// Clone returns an independent copy of this object.
	Clone() Object
}

// Keyed is an object with a key.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// CloneableData is an intelligent Value that can be embedded in a simple
// object to full fill the Object interface.
type CloneableData interface {
	treasury.Persistent
	Validate() error
	Copy() CloneableData
}

// Reader defines an interface that allows reading objects from the db.
type Reader interface {
	Get(db treasury.ReadOnlyKVStore, key []byte) (Object, error)
}
