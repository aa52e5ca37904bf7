package vault

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// BucketName is where the vault state lives.
const BucketName = "vault"

// stateKey is the key of the one and only Vault instance.
var stateKey = []byte("state")

// maxWithdrawPercentage bounds how much of the vault balance may ever
// be claimed by outstanding withdrawal requests.
const maxWithdrawPercentage = 50

// Condition returns the condition owning all vault funds. No key can
// sign for it, funds only move through the vault handlers.
func Condition() treasury.Condition {
	return treasury.NewCondition("vault", "account", []byte("treasury"))
}

// Address returns the wallet address all vault funds are held under.
func Address() treasury.Address {
	return Condition().Address()
}

// MintVote records that an admin wants to mint the given amount of
// token base units. One vote per admin.
type MintVote struct {
	Admin  treasury.Address
	Amount int64
}

// WithdrawRequest is one admin claim on the vault balance. Payable is
// set once every current admin has a request outstanding.
type WithdrawRequest struct {
	Admin   treasury.Address
	Amount  int64
	Payable bool
}

// Vault is the complete treasury state: the admin set, the exchange
// prices, the minting votes and the withdrawal requests.
type Vault struct {
	// Admins control the vault. Never empty.
	Admins []treasury.Address
	// TokenTicker is the managed token currency.
	TokenTicker string
	// NativeTicker is the currency the token trades against.
	NativeTicker string
	// SellPrice is what a buyer pays per token, in native units.
	SellPrice int64
	// BuyPrice is what a burner receives per token, in native units.
	// Never above SellPrice.
	BuyPrice int64
	// MaxPercentage caps the outstanding withdrawal requests as a
	// percentage of the vault native balance. At most 50.
	MaxPercentage int64
	// MintingNumber counts the executed mint rounds.
	MintingNumber int64
	// MintVotes are the votes of the current round, at most one per
	// admin.
	MintVotes []MintVote
	// Requests are the outstanding withdrawal requests, at most one
	// per admin.
	Requests []WithdrawRequest
}

var _ orm.CloneableData = (*Vault)(nil)

// Validate ensures the vault invariants hold.
func (v *Vault) Validate() error {
	if len(v.Admins) == 0 {
		return errors.Wrap(ErrLastAdmin, "no admins")
	}
	for _, a := range v.Admins {
		if err := a.Validate(); err != nil {
			return errors.Wrap(err, "admin")
		}
	}
	if !coin.IsCC(v.TokenTicker) {
		return errors.Wrapf(coin.ErrCurrency, "token ticker: %q", v.TokenTicker)
	}
	if !coin.IsCC(v.NativeTicker) {
		return errors.Wrapf(coin.ErrCurrency, "native ticker: %q", v.NativeTicker)
	}
	if v.SellPrice <= 0 {
		return errors.Wrap(errors.ErrAmount, "sell price must be positive")
	}
	if v.BuyPrice < 0 {
		return errors.Wrap(errors.ErrAmount, "buy price must not be negative")
	}
	if v.BuyPrice > v.SellPrice {
		return errors.Wrap(ErrPriceBound, "validate")
	}
	if v.MaxPercentage < 0 || v.MaxPercentage > maxWithdrawPercentage {
		return errors.Wrapf(ErrPercentage, "%d", v.MaxPercentage)
	}
	if v.MintingNumber < 0 {
		return errors.Wrap(errors.ErrAmount, "minting number")
	}
	for _, vote := range v.MintVotes {
		if err := vote.Admin.Validate(); err != nil {
			return errors.Wrap(err, "vote admin")
		}
		if vote.Amount <= 0 {
			return errors.Wrap(errors.ErrAmount, "vote amount must be positive")
		}
	}
	for _, req := range v.Requests {
		if err := req.Admin.Validate(); err != nil {
			return errors.Wrap(err, "request admin")
		}
		if req.Amount <= 0 {
			return errors.Wrap(errors.ErrAmount, "request amount must be positive")
		}
	}
	return nil
}

// Copy returns a deep copy of the vault.
func (v *Vault) Copy() orm.CloneableData {
	cpy := &Vault{
		Admins:        make([]treasury.Address, len(v.Admins)),
		TokenTicker:   v.TokenTicker,
		NativeTicker:  v.NativeTicker,
		SellPrice:     v.SellPrice,
		BuyPrice:      v.BuyPrice,
		MaxPercentage: v.MaxPercentage,
		MintingNumber: v.MintingNumber,
		MintVotes:     append([]MintVote(nil), v.MintVotes...),
		Requests:      append([]WithdrawRequest(nil), v.Requests...),
	}
	for i, a := range v.Admins {
		cpy.Admins[i] = append(treasury.Address(nil), a...)
	}
	return cpy
}

// Marshal serializes the vault.
func (v *Vault) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(v)
}

// Unmarshal parses the vault from binary.
func (v *Vault) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, v)
}

// IsAdmin returns true if the address is a current admin.
func (v *Vault) IsAdmin(addr treasury.Address) bool {
	for _, a := range v.Admins {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// Vote returns the mint vote of the admin, or nil.
func (v *Vault) Vote(addr treasury.Address) *MintVote {
	for i := range v.MintVotes {
		if v.MintVotes[i].Admin.Equals(addr) {
			return &v.MintVotes[i]
		}
	}
	return nil
}

// Request returns the withdrawal request of the admin, or nil.
func (v *Vault) Request(addr treasury.Address) *WithdrawRequest {
	for i := range v.Requests {
		if v.Requests[i].Admin.Equals(addr) {
			return &v.Requests[i]
		}
	}
	return nil
}

// RequestedTotal sums all outstanding withdrawal requests.
func (v *Vault) RequestedTotal() int64 {
	var total int64
	for _, req := range v.Requests {
		total += req.Amount
	}
	return total
}

// dropVote removes the vote of the admin if there is one.
func (v *Vault) dropVote(addr treasury.Address) {
	for i := range v.MintVotes {
		if v.MintVotes[i].Admin.Equals(addr) {
			v.MintVotes = append(v.MintVotes[:i], v.MintVotes[i+1:]...)
			return
		}
	}
}

// dropRequest removes the withdrawal request of the admin if there is
// one.
func (v *Vault) dropRequest(addr treasury.Address) {
	for i := range v.Requests {
		if v.Requests[i].Admin.Equals(addr) {
			v.Requests = append(v.Requests[:i], v.Requests[i+1:]...)
			return
		}
	}
}

// Bucket is a type-safe wrapper around orm.Bucket holding the single
// vault entry.
type Bucket struct {
	orm.Bucket
}

// NewBucket returns a bucket for the vault state.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Vault))),
	}
}

// Load returns the vault or an error when the extension was never
// initialized.
func (b Bucket) Load(db treasury.ReadOnlyKVStore) (*Vault, error) {
	obj, err := b.Bucket.Get(db, stateKey)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "vault")
	}
	return obj.Value().(*Vault), nil
}

// Save persists the vault.
func (b Bucket) Save(db treasury.KVStore, v *Vault) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(stateKey, v))
}
