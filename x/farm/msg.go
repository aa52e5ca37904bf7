package farm

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Path constants for the router.
const (
	pathStakeMsg         = "farm/stake"
	pathUnstakeMsg       = "farm/unstake"
	pathWithdrawYieldMsg = "farm/withdraw_yield"
)

var _ treasury.Msg = (*StakeMsg)(nil)
var _ treasury.Msg = (*UnstakeMsg)(nil)
var _ treasury.Msg = (*WithdrawYieldMsg)(nil)

// StakeMsg locks tokens of the staker in the farm pool. The staker must
// have approved the pool address for at least Amount beforehand.
type StakeMsg struct {
	Staker treasury.Address
	Amount int64
}

func (StakeMsg) Path() string {
	return pathStakeMsg
}

func (m *StakeMsg) Validate() error {
	if err := m.Staker.Validate(); err != nil {
		return errors.Wrap(err, "staker")
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "stake must be positive")
	}
	return nil
}

func (m *StakeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *StakeMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// UnstakeMsg releases locked tokens back to the staker.
type UnstakeMsg struct {
	Staker treasury.Address
	Amount int64
}

func (UnstakeMsg) Path() string {
	return pathUnstakeMsg
}

func (m *UnstakeMsg) Validate() error {
	if err := m.Staker.Validate(); err != nil {
		return errors.Wrap(err, "staker")
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "unstake must be positive")
	}
	return nil
}

func (m *UnstakeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *UnstakeMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// WithdrawYieldMsg pays out all pending yield of the staker.
type WithdrawYieldMsg struct {
	Staker treasury.Address
}

func (WithdrawYieldMsg) Path() string {
	return pathWithdrawYieldMsg
}

func (m *WithdrawYieldMsg) Validate() error {
	return errors.Wrap(m.Staker.Validate(), "staker")
}

func (m *WithdrawYieldMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *WithdrawYieldMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}
