package token

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
)

// Initializer fulfils the treasury.Initializer interface to load data
// from the genesis file.
type Initializer struct{}

var _ treasury.Initializer = (*Initializer)(nil)

type genesisAccount struct {
	Address treasury.Address `json:"address"`
	Coins   []coin.Coin      `json:"coins"`
}

// FromGenesis initializes the ledger configuration and the initial
// wallet distribution from the genesis file.
func (Initializer) FromGenesis(opts treasury.Options, db treasury.KVStore) error {
	var conf Config
	if err := opts.ReadOptions("token", &conf); err != nil {
		return err
	}
	if conf.Ticker == "" {
		return errors.Wrap(errors.ErrEmpty, "token configuration")
	}
	if err := NewConfigBucket().Save(db, &conf); err != nil {
		return errors.Wrap(err, "save configuration")
	}

	var accounts []genesisAccount
	if err := opts.ReadOptions("wallets", &accounts); err != nil {
		return err
	}
	wallets := NewWalletBucket()
	for _, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrap(err, "wallet address")
		}
		var coins coin.Coins
		for _, c := range acc.Coins {
			var err error
			if coins, err = coins.Add(c); err != nil {
				return errors.Wrapf(err, "wallet %s", acc.Address)
			}
		}
		if err := wallets.Update(db, acc.Address, coins); err != nil {
			return errors.Wrapf(err, "wallet %s", acc.Address)
		}
	}
	return nil
}
