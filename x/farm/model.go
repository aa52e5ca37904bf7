package farm

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

const (
	// StateBucketName holds the single farm state entry.
	StateBucketName = "farm"
	// StakerBucketName holds one entry per stakeholder.
	StakerBucketName = "staker"
)

// stateKey is the key of the one and only FarmState instance.
var stateKey = []byte("state")

// Condition returns the condition owning the farm pool. No key can sign
// for it, funds only move through the farm handlers.
func Condition() treasury.Condition {
	return treasury.NewCondition("farm", "account", []byte("pool"))
}

// Address returns the wallet address the pool funds are held under.
func Address() treasury.Address {
	return Condition().Address()
}

// FarmState is the global farm configuration and bookkeeping.
type FarmState struct {
	// TokenTicker is the staked and paid out currency.
	TokenTicker string
	// Rate is the yearly yield in percent.
	Rate int64
	// TotalStaked is the sum of all stakeholder principals.
	TotalStaked int64
	// TotalYieldPaid is the lifetime sum of paid out yield.
	TotalYieldPaid int64
}

var _ orm.CloneableData = (*FarmState)(nil)

// Validate ensures the state is consistent.
func (s *FarmState) Validate() error {
	if !coin.IsCC(s.TokenTicker) {
		return errors.Wrapf(coin.ErrCurrency, "token ticker: %q", s.TokenTicker)
	}
	if s.Rate < 0 {
		return errors.Wrap(errors.ErrAmount, "rate must not be negative")
	}
	if s.TotalStaked < 0 {
		return errors.Wrap(errors.ErrAmount, "total staked")
	}
	if s.TotalYieldPaid < 0 {
		return errors.Wrap(errors.ErrAmount, "total yield paid")
	}
	return nil
}

// Copy returns a copy of the state.
func (s *FarmState) Copy() orm.CloneableData {
	cpy := *s
	return &cpy
}

// Marshal serializes the state.
func (s *FarmState) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

// Unmarshal parses the state from binary.
func (s *FarmState) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, s)
}

// Stakeholder is the farm position of one address. The address is the
// bucket key.
type Stakeholder struct {
	// Principal is the staked amount in token base units.
	Principal int64
	// Accrued is settled but not yet paid out yield.
	Accrued int64
	// LastSettlement is the block time of the last settlement.
	LastSettlement treasury.UnixTime
}

var _ orm.CloneableData = (*Stakeholder)(nil)

// Validate ensures the position is consistent.
func (s *Stakeholder) Validate() error {
	if s.Principal < 0 {
		return errors.Wrap(errors.ErrAmount, "principal")
	}
	if s.Accrued < 0 {
		return errors.Wrap(errors.ErrAmount, "accrued")
	}
	return errors.Wrap(s.LastSettlement.Validate(), "last settlement")
}

// Copy returns a copy of the position.
func (s *Stakeholder) Copy() orm.CloneableData {
	cpy := *s
	return &cpy
}

// Marshal serializes the position.
func (s *Stakeholder) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

// Unmarshal parses the position from binary.
func (s *Stakeholder) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, s)
}

// StateBucket is a type-safe wrapper around orm.Bucket holding the
// single farm state entry.
type StateBucket struct {
	orm.Bucket
}

// NewStateBucket returns a bucket for the farm state.
func NewStateBucket() StateBucket {
	return StateBucket{
		Bucket: orm.NewBucket(StateBucketName, orm.NewSimpleObj(nil, new(FarmState))),
	}
}

// Load returns the farm state or an error when the extension was never
// initialized.
func (b StateBucket) Load(db treasury.ReadOnlyKVStore) (*FarmState, error) {
	obj, err := b.Bucket.Get(db, stateKey)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "farm")
	}
	return obj.Value().(*FarmState), nil
}

// Save persists the farm state.
func (b StateBucket) Save(db treasury.KVStore, s *FarmState) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(stateKey, s))
}

// StakerBucket is a type-safe wrapper around orm.Bucket keeping one
// Stakeholder per address.
type StakerBucket struct {
	orm.Bucket
}

// NewStakerBucket returns a bucket for keeping stakeholder positions.
func NewStakerBucket() StakerBucket {
	return StakerBucket{
		Bucket: orm.NewBucket(StakerBucketName, orm.NewSimpleObj(nil, new(Stakeholder))),
	}
}

// Staker returns the position of the address, or nil when the address
// never staked.
func (b StakerBucket) Staker(db treasury.ReadOnlyKVStore, addr treasury.Address) (*Stakeholder, error) {
	obj, err := b.Bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.Value().(*Stakeholder), nil
}

// Update overwrites the position. An empty position is removed from the
// store.
func (b StakerBucket) Update(db treasury.KVStore, addr treasury.Address, s *Stakeholder) error {
	if s.Principal == 0 && s.Accrued == 0 {
		return b.Bucket.Delete(db, addr)
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(addr, s))
}
