package vault

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Path constants for the router.
const (
	pathAddAdminMsg         = "vault/add_admin"
	pathRemoveAdminMsg      = "vault/remove_admin"
	pathMintVoteMsg         = "vault/mint_vote"
	pathSetSellPriceMsg     = "vault/set_sell_price"
	pathSetBuyPriceMsg      = "vault/set_buy_price"
	pathSetMaxPercentageMsg = "vault/set_max_percentage"
	pathBuyMsg              = "vault/buy"
	pathBurnMsg             = "vault/burn"
	pathRequestWithdrawMsg  = "vault/request_withdraw"
	pathWithdrawMsg         = "vault/withdraw"
	pathUpdateFarmRateMsg   = "vault/update_farm_rate"
)

var _ treasury.Msg = (*AddAdminMsg)(nil)
var _ treasury.Msg = (*RemoveAdminMsg)(nil)
var _ treasury.Msg = (*MintVoteMsg)(nil)
var _ treasury.Msg = (*SetSellPriceMsg)(nil)
var _ treasury.Msg = (*SetBuyPriceMsg)(nil)
var _ treasury.Msg = (*SetMaxPercentageMsg)(nil)
var _ treasury.Msg = (*BuyMsg)(nil)
var _ treasury.Msg = (*BurnMsg)(nil)
var _ treasury.Msg = (*RequestWithdrawMsg)(nil)
var _ treasury.Msg = (*WithdrawMsg)(nil)
var _ treasury.Msg = (*UpdateFarmRateMsg)(nil)

// AddAdminMsg adds a new admin to the vault. Any current admin may
// issue it.
type AddAdminMsg struct {
	Admin treasury.Address
}

func (AddAdminMsg) Path() string {
	return pathAddAdminMsg
}

func (m *AddAdminMsg) Validate() error {
	return errors.Wrap(m.Admin.Validate(), "admin")
}

func (m *AddAdminMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *AddAdminMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// RemoveAdminMsg removes an admin from the vault, dropping its pending
// mint vote and withdrawal request. The last admin cannot be removed.
type RemoveAdminMsg struct {
	Admin treasury.Address
}

func (RemoveAdminMsg) Path() string {
	return pathRemoveAdminMsg
}

func (m *RemoveAdminMsg) Validate() error {
	return errors.Wrap(m.Admin.Validate(), "admin")
}

func (m *RemoveAdminMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *RemoveAdminMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// MintVoteMsg casts the vote of the sending admin to mint Amount token
// base units. Voting again replaces the previous vote. Once every
// current admin votes for the same amount the mint executes in the
// same delivery.
type MintVoteMsg struct {
	Amount int64
}

func (MintVoteMsg) Path() string {
	return pathMintVoteMsg
}

func (m *MintVoteMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "mint amount must be positive")
	}
	return nil
}

func (m *MintVoteMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *MintVoteMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// SetSellPriceMsg updates the price a buyer pays per token.
type SetSellPriceMsg struct {
	Price int64
}

func (SetSellPriceMsg) Path() string {
	return pathSetSellPriceMsg
}

func (m *SetSellPriceMsg) Validate() error {
	if m.Price <= 0 {
		return errors.Wrap(errors.ErrAmount, "sell price must be positive")
	}
	return nil
}

func (m *SetSellPriceMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetSellPriceMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// SetBuyPriceMsg updates the price a burner receives per token.
type SetBuyPriceMsg struct {
	Price int64
}

func (SetBuyPriceMsg) Path() string {
	return pathSetBuyPriceMsg
}

func (m *SetBuyPriceMsg) Validate() error {
	if m.Price < 0 {
		return errors.Wrap(errors.ErrAmount, "buy price must not be negative")
	}
	return nil
}

func (m *SetBuyPriceMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetBuyPriceMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// SetMaxPercentageMsg updates the withdrawal cap.
type SetMaxPercentageMsg struct {
	Percentage int64
}

func (SetMaxPercentageMsg) Path() string {
	return pathSetMaxPercentageMsg
}

func (m *SetMaxPercentageMsg) Validate() error {
	if m.Percentage < 0 || m.Percentage > maxWithdrawPercentage {
		return errors.Wrapf(ErrPercentage, "%d", m.Percentage)
	}
	return nil
}

func (m *SetMaxPercentageMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetMaxPercentageMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// BuyMsg purchases tokens from the vault. The buyer pays Payment native
// units and receives Payment divided by the sell price in tokens,
// rounded down. The remainder stays with the vault.
type BuyMsg struct {
	Buyer   treasury.Address
	Payment int64
}

func (BuyMsg) Path() string {
	return pathBuyMsg
}

func (m *BuyMsg) Validate() error {
	if err := m.Buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}
	if m.Payment <= 0 {
		return errors.Wrap(errors.ErrAmount, "payment must be positive")
	}
	return nil
}

func (m *BuyMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *BuyMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// BurnMsg destroys tokens held by the seller. The vault pays Amount
// times the buy price in native units in return.
type BurnMsg struct {
	Seller treasury.Address
	Amount int64
}

func (BurnMsg) Path() string {
	return pathBurnMsg
}

func (m *BurnMsg) Validate() error {
	if err := m.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "burn amount must be positive")
	}
	return nil
}

func (m *BurnMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *BurnMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// RequestWithdrawMsg files a withdrawal request for the sending admin.
// Only one request per admin may be outstanding.
type RequestWithdrawMsg struct {
	Amount int64
}

func (RequestWithdrawMsg) Path() string {
	return pathRequestWithdrawMsg
}

func (m *RequestWithdrawMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "withdrawal must be positive")
	}
	return nil
}

func (m *RequestWithdrawMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *RequestWithdrawMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// WithdrawMsg pays out the payable withdrawal request of the sending
// admin and removes it.
type WithdrawMsg struct {
}

func (WithdrawMsg) Path() string {
	return pathWithdrawMsg
}

func (m *WithdrawMsg) Validate() error {
	return nil
}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *WithdrawMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}

// UpdateFarmRateMsg changes the yearly yield rate of the farm. All
// stakeholders are settled at the old rate first.
type UpdateFarmRateMsg struct {
	Rate int64
}

func (UpdateFarmRateMsg) Path() string {
	return pathUpdateFarmRateMsg
}

func (m *UpdateFarmRateMsg) Validate() error {
	if m.Rate < 0 {
		return errors.Wrap(errors.ErrAmount, "rate must not be negative")
	}
	return nil
}

func (m *UpdateFarmRateMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *UpdateFarmRateMsg) Unmarshal(data []byte) error {
	return cdc.UnmarshalBinaryBare(data, m)
}
