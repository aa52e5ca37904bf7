package vault

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Initializer fulfils the treasury.Initializer interface to load data
// from the genesis file.
type Initializer struct{}

var _ treasury.Initializer = (*Initializer)(nil)

type genesisVault struct {
	Admins        []treasury.Address `json:"admins"`
	TokenTicker   string             `json:"token_ticker"`
	NativeTicker  string             `json:"native_ticker"`
	SellPrice     int64              `json:"sell_price"`
	BuyPrice      int64              `json:"buy_price"`
	MaxPercentage int64              `json:"max_percentage"`
}

// FromGenesis initializes the vault from the genesis file.
func (Initializer) FromGenesis(opts treasury.Options, db treasury.KVStore) error {
	var gen genesisVault
	if err := opts.ReadOptions("vault", &gen); err != nil {
		return err
	}
	if len(gen.Admins) == 0 {
		return errors.Wrap(errors.ErrEmpty, "vault configuration")
	}
	v := Vault{
		Admins:        gen.Admins,
		TokenTicker:   gen.TokenTicker,
		NativeTicker:  gen.NativeTicker,
		SellPrice:     gen.SellPrice,
		BuyPrice:      gen.BuyPrice,
		MaxPercentage: gen.MaxPercentage,
	}
	return errors.Wrap(NewBucket().Save(db, &v), "save vault")
}
