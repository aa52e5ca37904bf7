package farm

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// secondsPerYear is the length of a mean tropical year, the time base
// of the yearly rate.
const secondsPerYear = 31556926

// LedgerController is the part of the token ledger the farm relies on.
// It is satisfied by the controller of the token extension.
type LedgerController interface {
	MoveCoins(db treasury.KVStore, src, dest treasury.Address, amount coin.Coin) error
	DeductAllowance(db treasury.KVStore, owner, spender treasury.Address, amount coin.Coin) error
}

// Controller implements the farm operations on top of the farm buckets
// and the token ledger.
type Controller struct {
	state   StateBucket
	stakers StakerBucket
	ledger  LedgerController
}

// NewController returns a controller using the default buckets.
func NewController(ledger LedgerController) Controller {
	return Controller{
		state:   NewStateBucket(),
		stakers: NewStakerBucket(),
		ledger:  ledger,
	}
}

// Stake locks tokens in the farm pool. The staker must have approved
// the pool address for at least the staked amount beforehand. Pending
// yield is settled before the principal changes.
func (c Controller) Stake(ctx treasury.Context, db treasury.KVStore, staker treasury.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "stake must be positive")
	}
	state, now, err := c.loadState(ctx, db)
	if err != nil {
		return err
	}

	locked := coin.NewCoin(amount, state.TokenTicker)
	if err := c.ledger.DeductAllowance(db, staker, Address(), locked); err != nil {
		return err
	}
	if err := c.ledger.MoveCoins(db, staker, Address(), locked); err != nil {
		return err
	}

	pos, err := c.stakers.Staker(db, staker)
	if err != nil {
		return err
	}
	if pos == nil {
		pos = &Stakeholder{LastSettlement: now}
	} else if err := settle(state, pos, now); err != nil {
		return err
	}
	pos.Principal += amount
	if err := c.stakers.Update(db, staker, pos); err != nil {
		return err
	}

	state.TotalStaked += amount
	return c.state.Save(db, state)
}

// Unstake returns locked tokens to the staker. Pending yield is settled
// first and stays with the position until withdrawn.
func (c Controller) Unstake(ctx treasury.Context, db treasury.KVStore, staker treasury.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "unstake must be positive")
	}
	state, now, err := c.loadState(ctx, db)
	if err != nil {
		return err
	}

	pos, err := c.stakers.Staker(db, staker)
	if err != nil {
		return err
	}
	if pos == nil || pos.Principal < amount {
		return errors.Wrapf(ErrInsufficientStake, "unstake %d", amount)
	}
	if err := settle(state, pos, now); err != nil {
		return err
	}

	released := coin.NewCoin(amount, state.TokenTicker)
	if err := c.ledger.MoveCoins(db, Address(), staker, released); err != nil {
		return err
	}
	pos.Principal -= amount
	if err := c.stakers.Update(db, staker, pos); err != nil {
		return err
	}

	state.TotalStaked -= amount
	return c.state.Save(db, state)
}

// WithdrawYield settles and pays out all pending yield of the staker.
// It returns the paid amount, which may be zero.
func (c Controller) WithdrawYield(ctx treasury.Context, db treasury.KVStore, staker treasury.Address) (int64, error) {
	state, now, err := c.loadState(ctx, db)
	if err != nil {
		return 0, err
	}

	pos, err := c.stakers.Staker(db, staker)
	if err != nil {
		return 0, err
	}
	if pos == nil {
		return 0, errors.Wrapf(ErrInsufficientStake, "no position for %s", staker)
	}
	if err := settle(state, pos, now); err != nil {
		return 0, err
	}

	paid := pos.Accrued
	if paid > 0 {
		payout := coin.NewCoin(paid, state.TokenTicker)
		if err := c.ledger.MoveCoins(db, Address(), staker, payout); err != nil {
			return 0, err
		}
		pos.Accrued = 0
	}
	if err := c.stakers.Update(db, staker, pos); err != nil {
		return 0, err
	}

	state.TotalYieldPaid += paid
	if err := c.state.Save(db, state); err != nil {
		return 0, err
	}
	return paid, nil
}

// UpdateRate changes the yearly rate. Every stakeholder is settled at
// the old rate first, so the new rate only prices future time.
func (c Controller) UpdateRate(ctx treasury.Context, db treasury.KVStore, rate int64) error {
	if rate < 0 {
		return errors.Wrap(errors.ErrAmount, "rate must not be negative")
	}
	state, now, err := c.loadState(ctx, db)
	if err != nil {
		return err
	}

	// Collect all positions first, writing while iterating is not safe.
	type settled struct {
		addr treasury.Address
		pos  *Stakeholder
	}
	var all []settled
	err = c.stakers.ForEach(db, func(obj orm.Object) error {
		pos := obj.Value().(*Stakeholder).Copy().(*Stakeholder)
		if err := settle(state, pos, now); err != nil {
			return err
		}
		addr := append(treasury.Address(nil), obj.Key()...)
		all = append(all, settled{addr: addr, pos: pos})
		return nil
	})
	if err != nil {
		return err
	}
	for _, s := range all {
		if err := c.stakers.Update(db, s.addr, s.pos); err != nil {
			return err
		}
	}

	state.Rate = rate
	return c.state.Save(db, state)
}

// Pending returns the yield the staker could withdraw right now. It is
// a pure read, repeated calls at the same block time return the same
// value and change nothing.
func (c Controller) Pending(ctx treasury.Context, db treasury.ReadOnlyKVStore, staker treasury.Address) (int64, error) {
	state, now, err := c.loadStateRO(ctx, db)
	if err != nil {
		return 0, err
	}
	pos, err := c.stakers.Staker(db, staker)
	if err != nil {
		return 0, err
	}
	if pos == nil {
		return 0, nil
	}
	if err := settle(state, pos, now); err != nil {
		return 0, err
	}
	return pos.Accrued, nil
}

// Principal returns the staked amount of the staker.
func (c Controller) Principal(db treasury.ReadOnlyKVStore, staker treasury.Address) (int64, error) {
	pos, err := c.stakers.Staker(db, staker)
	if err != nil {
		return 0, err
	}
	if pos == nil {
		return 0, nil
	}
	return pos.Principal, nil
}

func (c Controller) loadState(ctx treasury.Context, db treasury.KVStore) (*FarmState, treasury.UnixTime, error) {
	return c.loadStateRO(ctx, db)
}

func (c Controller) loadStateRO(ctx treasury.Context, db treasury.ReadOnlyKVStore) (*FarmState, treasury.UnixTime, error) {
	state, err := c.state.Load(db)
	if err != nil {
		return nil, 0, err
	}
	blockTime, err := treasury.BlockTime(ctx)
	if err != nil {
		return nil, 0, err
	}
	return state, treasury.AsUnixTime(blockTime), nil
}

// settle moves the yield earned since the last settlement into the
// accrued balance. Settling twice at the same block time is a noop.
func settle(state *FarmState, pos *Stakeholder, now treasury.UnixTime) error {
	if now < pos.LastSettlement {
		return errors.Wrap(errors.ErrState, "block time went backwards")
	}
	elapsed := int64(now - pos.LastSettlement)
	pos.LastSettlement = now
	if elapsed == 0 || pos.Principal == 0 || state.Rate == 0 {
		return nil
	}

	earned, err := mul64(pos.Principal, state.Rate)
	if err != nil {
		return err
	}
	earned, err = mul64(earned, elapsed)
	if err != nil {
		return err
	}
	pos.Accrued += earned / (100 * secondsPerYear)
	return nil
}

// mul64 multiplies and guards against int64 overflow.
func mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	res := a * b
	if res/b != a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return res, nil
}
