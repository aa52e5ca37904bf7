package token

import (
	"regexp"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

const (
	// WalletBucketName is where the balances live.
	WalletBucketName = "wallet"
	// AllowanceBucketName is where delegated spending limits live.
	AllowanceBucketName = "allow"
	// ConfigBucketName holds the single ledger configuration entry.
	ConfigBucketName = "tokencfg"
)

// configKey is the key of the one and only Config instance.
var configKey = []byte("config")

var isTokenName = regexp.MustCompile(`^[A-Za-z0-9_\- ]{3,30}$`).MatchString

// Set holds the coins of one wallet.
type Set struct {
	Coins coin.Coins
}

var _ orm.CloneableData = (*Set)(nil)

// Validate requires the coins to be sorted, unique and non-zero.
func (s *Set) Validate() error {
	return s.Coins.Validate()
}

// Copy returns a deep copy of the set.
func (s *Set) Copy() orm.CloneableData {
	return &Set{Coins: s.Coins.Clone()}
}

// Marshal serializes the set.
func (s *Set) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

// Unmarshal parses the set from binary.
func (s *Set) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, s)
}

// Allowance is the amount a spender may still move out of the owner
// wallet. The owner and spender addresses are both part of the key.
type Allowance struct {
	Amount coin.Coin
}

var _ orm.CloneableData = (*Allowance)(nil)

// Validate requires a well formed, positive amount.
func (a *Allowance) Validate() error {
	if err := a.Amount.Validate(); err != nil {
		return err
	}
	if !a.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "allowance must be positive")
	}
	return nil
}

// Copy returns a deep copy of the allowance.
func (a *Allowance) Copy() orm.CloneableData {
	return &Allowance{Amount: *a.Amount.Clone()}
}

// Marshal serializes the allowance.
func (a *Allowance) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(a)
}

// Unmarshal parses the allowance from binary.
func (a *Allowance) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, a)
}

// Config describes the managed token. Owner is the only address allowed
// to update this configuration.
type Config struct {
	Owner  treasury.Address
	Name   string
	Ticker string
}

var _ orm.CloneableData = (*Config)(nil)

// Validate ensures all fields are set and well formed.
func (c *Config) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if !isTokenName(c.Name) {
		return errors.Wrapf(errors.ErrInput, "invalid token name: %q", c.Name)
	}
	if !coin.IsCC(c.Ticker) {
		return errors.Wrapf(coin.ErrCurrency, "invalid ticker: %q", c.Ticker)
	}
	return nil
}

// Copy returns a deep copy of the config.
func (c *Config) Copy() orm.CloneableData {
	return &Config{
		Owner:  append(treasury.Address(nil), c.Owner...),
		Name:   c.Name,
		Ticker: c.Ticker,
	}
}

// Marshal serializes the config.
func (c *Config) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

// Unmarshal parses the config from binary.
func (c *Config) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, c)
}

// WalletBucket is a type-safe wrapper around orm.Bucket that stores one
// Set of coins per address.
type WalletBucket struct {
	orm.Bucket
}

// NewWalletBucket returns a bucket for keeping wallets.
func NewWalletBucket() WalletBucket {
	return WalletBucket{
		Bucket: orm.NewBucket(WalletBucketName, orm.NewSimpleObj(nil, new(Set))),
	}
}

// Wallet returns the coins held by the given address. A missing wallet
// is the same as an empty one.
func (b WalletBucket) Wallet(db treasury.ReadOnlyKVStore, addr treasury.Address) (coin.Coins, error) {
	obj, err := b.Bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Set).Coins, nil
}

// Update overwrites the wallet content. An empty wallet is removed from
// the store instead of keeping a useless entry around.
func (b WalletBucket) Update(db treasury.KVStore, addr treasury.Address, coins coin.Coins) error {
	if coins.IsEmpty() {
		return b.Bucket.Delete(db, addr)
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(addr, &Set{Coins: coins}))
}

// AllowanceBucket keeps the delegated spending limits, keyed by owner
// and spender address concatenated.
type AllowanceBucket struct {
	orm.Bucket
}

// NewAllowanceBucket returns a bucket for keeping allowances.
func NewAllowanceBucket() AllowanceBucket {
	return AllowanceBucket{
		Bucket: orm.NewBucket(AllowanceBucketName, orm.NewSimpleObj(nil, new(Allowance))),
	}
}

func allowanceKey(owner, spender treasury.Address) []byte {
	key := make([]byte, 0, len(owner)+len(spender))
	key = append(key, owner...)
	return append(key, spender...)
}

// Allowance returns what the spender may still move out of the owner
// wallet. A zero coin is returned when nothing was approved.
func (b AllowanceBucket) Allowance(db treasury.ReadOnlyKVStore, owner, spender treasury.Address) (coin.Coin, error) {
	obj, err := b.Bucket.Get(db, allowanceKey(owner, spender))
	if err != nil {
		return coin.Coin{}, err
	}
	if obj == nil {
		return coin.Coin{}, nil
	}
	return obj.Value().(*Allowance).Amount, nil
}

// Update overwrites the allowance. A non-positive amount removes the
// entry, which means revoking the approval.
func (b AllowanceBucket) Update(db treasury.KVStore, owner, spender treasury.Address, amount coin.Coin) error {
	key := allowanceKey(owner, spender)
	if !amount.IsPositive() {
		return b.Bucket.Delete(db, key)
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(key, &Allowance{Amount: amount}))
}

// ConfigBucket holds the singleton ledger configuration.
type ConfigBucket struct {
	orm.Bucket
}

// NewConfigBucket returns a bucket for the ledger configuration.
func NewConfigBucket() ConfigBucket {
	return ConfigBucket{
		Bucket: orm.NewBucket(ConfigBucketName, orm.NewSimpleObj(nil, new(Config))),
	}
}

// Load returns the current configuration or an error when the extension
// was never initialized.
func (b ConfigBucket) Load(db treasury.ReadOnlyKVStore) (*Config, error) {
	obj, err := b.Bucket.Get(db, configKey)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "token configuration")
	}
	return obj.Value().(*Config), nil
}

// Save persists the configuration.
func (b ConfigBucket) Save(db treasury.KVStore, c *Config) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(configKey, c))
}
