package token

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
)

// Path constants for the router.
const (
	pathSendMsg         = "token/send"
	pathApproveMsg      = "token/approve"
	pathTransferFromMsg = "token/transfer_from"
	pathUpdateConfigMsg = "token/update_config"
)

var _ treasury.Msg = (*SendMsg)(nil)
var _ treasury.Msg = (*ApproveMsg)(nil)
var _ treasury.Msg = (*TransferFromMsg)(nil)
var _ treasury.Msg = (*UpdateConfigMsg)(nil)

// SendMsg moves coins from the source wallet to the destination wallet.
// The source must authorize the transaction.
type SendMsg struct {
	Source      treasury.Address
	Destination treasury.Address
	Amount      *coin.Coin
}

// Path returns the routing path of the message.
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure addresses are well formed and the amount positive.
func (m *SendMsg) Validate() error {
	if m.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "missing amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// Marshal serializes the message.
func (m *SendMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal parses the message from binary.
func (m *SendMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// ApproveMsg grants the spender the right to move up to Amount out of
// the owner wallet. It replaces any previous approval for that spender.
// A zero amount revokes the approval.
type ApproveMsg struct {
	Owner   treasury.Address
	Spender treasury.Address
	Amount  *coin.Coin
}

// Path returns the routing path of the message.
func (ApproveMsg) Path() string {
	return pathApproveMsg
}

// Validate makes sure addresses are well formed and the amount is not
// negative. Zero is allowed to support revoking.
func (m *ApproveMsg) Validate() error {
	if m.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "missing amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "must not be negative")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.Spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	if m.Owner.Equals(m.Spender) {
		return errors.Wrap(errors.ErrInput, "owner and spender must differ")
	}
	return nil
}

// Marshal serializes the message.
func (m *ApproveMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal parses the message from binary.
func (m *ApproveMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// TransferFromMsg moves coins out of the owner wallet using an
// allowance previously granted to the spender. The spender must
// authorize the transaction.
type TransferFromMsg struct {
	Spender     treasury.Address
	Owner       treasury.Address
	Destination treasury.Address
	Amount      *coin.Coin
}

// Path returns the routing path of the message.
func (TransferFromMsg) Path() string {
	return pathTransferFromMsg
}

// Validate makes sure addresses are well formed and the amount positive.
func (m *TransferFromMsg) Validate() error {
	if m.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "missing amount")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be positive")
	}
	if err := m.Spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// Marshal serializes the message.
func (m *TransferFromMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal parses the message from binary.
func (m *TransferFromMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// UpdateConfigMsg replaces the ledger configuration. Only the current
// configuration owner may issue it.
type UpdateConfigMsg struct {
	Config Config
}

// Path returns the routing path of the message.
func (UpdateConfigMsg) Path() string {
	return pathUpdateConfigMsg
}

// Validate delegates to the new configuration.
func (m *UpdateConfigMsg) Validate() error {
	return m.Config.Validate()
}

// Marshal serializes the message.
func (m *UpdateConfigMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal parses the message from binary.
func (m *UpdateConfigMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}
