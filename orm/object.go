package orm

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// SimpleObj wraps a key and a value together. It can be used as a template
// for type-safe objects.
type SimpleObj struct {
	key   []byte
	value CloneableData
}

var _ Object = (*SimpleObj)(nil)

// NewSimpleObj will combine a key and value into an object.
func NewSimpleObj(key []byte, value CloneableData) *SimpleObj {
	return &SimpleObj{
		key:   key,
		value: value,
	}
}

// Value gets the value stored in the object.
func (o SimpleObj) Value() CloneableData {
	return o.value
}

// Key returns the key to store the object under.
func (o SimpleObj) Key() []byte {
	return o.key
}

// Validate makes sure the fields aren't empty and the value is valid.
func (o SimpleObj) Validate() error {
	if len(o.key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	if o.value == nil {
		return errors.Wrap(errors.ErrEmpty, "missing value")
	}
	return o.value.Validate()
}

// SetKey may be used to update a simple obj key.
func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

// Clone makes a distinct copy of the object and its value.
func (o SimpleObj) Clone() Object {
	res := &SimpleObj{
		value: o.value.Copy(),
	}
	// only copy key if non-nil
	if len(o.key) > 0 {
		res.key = append([]byte(nil), o.key...)
	}
	return res
}

// assert that the value can be marshaled, so load/save cycles are possible
var _ treasury.Persistent = (*SimpleObj)(nil)

// Marshal marshals the value of the object.
func (o SimpleObj) Marshal() ([]byte, error) {
	return o.value.Marshal()
}

// Unmarshal parses bytes into the value of the object.
func (o *SimpleObj) Unmarshal(data []byte) error {
	return o.value.Unmarshal(data)
}
