package token

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
)

// Controller is the functionality of the ledger that other extensions
// may rely on. It allows trusted modules to mint, burn and move coins
// without going through the message handlers.
type Controller interface {
	// MoveCoins transfers the amount between two wallets.
	MoveCoins(db treasury.KVStore, src, dest treasury.Address, amount coin.Coin) error
	// IssueCoins creates new coins in the destination wallet.
	IssueCoins(db treasury.KVStore, dest treasury.Address, amount coin.Coin) error
	// BurnCoins destroys coins held by the source wallet.
	BurnCoins(db treasury.KVStore, src treasury.Address, amount coin.Coin) error
	// Balance returns all coins held by the address.
	Balance(db treasury.ReadOnlyKVStore, addr treasury.Address) (coin.Coins, error)
	// Allowance returns what the spender may still move out of the
	// owner wallet.
	Allowance(db treasury.ReadOnlyKVStore, owner, spender treasury.Address) (coin.Coin, error)
	// SetAllowance overwrites the spending limit of the spender.
	SetAllowance(db treasury.KVStore, owner, spender treasury.Address, amount coin.Coin) error
	// DeductAllowance lowers the spending limit after a delegated
	// transfer. It fails when the limit is too small.
	DeductAllowance(db treasury.KVStore, owner, spender treasury.Address, amount coin.Coin) error
}

// LedgerController implements Controller on top of the wallet and
// allowance buckets.
type LedgerController struct {
	wallets    WalletBucket
	allowances AllowanceBucket
}

var _ Controller = LedgerController{}

// NewController returns a controller using the default buckets.
func NewController() LedgerController {
	return LedgerController{
		wallets:    NewWalletBucket(),
		allowances: NewAllowanceBucket(),
	}
}

// MoveCoins transfers the amount between two wallets. It fails when the
// source does not hold enough.
func (c LedgerController) MoveCoins(db treasury.KVStore, src, dest treasury.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %v", &amount)
	}

	sender, err := c.wallets.Wallet(db, src)
	if err != nil {
		return err
	}
	if !sender.Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "wallet %s", src)
	}

	sender, err = sender.Subtract(amount)
	if err != nil {
		return err
	}
	if err := c.wallets.Update(db, src, sender); err != nil {
		return err
	}

	recipient, err := c.wallets.Wallet(db, dest)
	if err != nil {
		return err
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return err
	}
	return c.wallets.Update(db, dest, recipient)
}

// IssueCoins creates new coins out of thin air and puts them in the
// destination wallet. Only other extensions can reach this, there is no
// message to trigger it.
func (c LedgerController) IssueCoins(db treasury.KVStore, dest treasury.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive issue: %v", &amount)
	}

	recipient, err := c.wallets.Wallet(db, dest)
	if err != nil {
		return err
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return err
	}
	return c.wallets.Update(db, dest, recipient)
}

// BurnCoins removes the amount from the source wallet for good.
func (c LedgerController) BurnCoins(db treasury.KVStore, src treasury.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive burn: %v", &amount)
	}

	holder, err := c.wallets.Wallet(db, src)
	if err != nil {
		return err
	}
	if !holder.Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "wallet %s", src)
	}
	holder, err = holder.Subtract(amount)
	if err != nil {
		return err
	}
	return c.wallets.Update(db, src, holder)
}

// Balance returns all coins held by the address.
func (c LedgerController) Balance(db treasury.ReadOnlyKVStore, addr treasury.Address) (coin.Coins, error) {
	return c.wallets.Wallet(db, addr)
}

// Allowance returns the remaining spending limit of the spender.
func (c LedgerController) Allowance(db treasury.ReadOnlyKVStore, owner, spender treasury.Address) (coin.Coin, error) {
	return c.allowances.Allowance(db, owner, spender)
}

// SetAllowance overwrites the spending limit of the spender.
func (c LedgerController) SetAllowance(db treasury.KVStore, owner, spender treasury.Address, amount coin.Coin) error {
	return c.allowances.Update(db, owner, spender, amount)
}

// DeductAllowance lowers the spending limit by the given amount. It
// fails when the limit is missing, of another ticker, or too small.
func (c LedgerController) DeductAllowance(db treasury.KVStore, owner, spender treasury.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive deduction: %v", &amount)
	}

	current, err := c.allowances.Allowance(db, owner, spender)
	if err != nil {
		return err
	}
	if !current.SameType(amount) || !current.IsGTE(amount) {
		return errors.Wrapf(ErrInsufficientAllowance, "%s approved %s", owner, spender)
	}
	rest, err := current.Subtract(amount)
	if err != nil {
		return err
	}
	return c.allowances.Update(db, owner, spender, rest)
}
