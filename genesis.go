package treasury

import (
	"encoding/json"

	"github.com/iov-one/treasury/errors"
)

// Options are the genesis options. Each extension can look up its key and
// parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key, and parses the
// json into the given obj. Returns an error if it cannot parse. Noop and
// no error if key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(err, "option %q", key)
	}
	return nil
}

// Initializer implementations are used to initialize extensions from
// genesis file contents.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// Initializers lets you combine a list of Initializer into one.
type Initializers []Initializer

var _ Initializer = Initializers{}

// FromGenesis will pass opts to all Initializers in the list, stopping at
// the first error.
func (i Initializers) FromGenesis(opts Options, kv KVStore) error {
	for _, init := range i {
		if err := init.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
