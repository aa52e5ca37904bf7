package farm

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Initializer fulfils the treasury.Initializer interface to load data
// from the genesis file.
type Initializer struct{}

var _ treasury.Initializer = (*Initializer)(nil)

type genesisFarm struct {
	TokenTicker string `json:"token_ticker"`
	Rate        int64  `json:"rate"`
}

// FromGenesis initializes the farm state from the genesis file.
func (Initializer) FromGenesis(opts treasury.Options, db treasury.KVStore) error {
	var gen genesisFarm
	if err := opts.ReadOptions("farm", &gen); err != nil {
		return err
	}
	if gen.TokenTicker == "" {
		return errors.Wrap(errors.ErrEmpty, "farm configuration")
	}
	state := FarmState{
		TokenTicker: gen.TokenTicker,
		Rate:        gen.Rate,
	}
	return errors.Wrap(NewStateBucket().Save(db, &state), "save farm")
}
