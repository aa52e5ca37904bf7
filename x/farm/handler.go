package farm

import (
	"strconv"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

const (
	stakeTxCost    int64 = 200
	withdrawTxCost int64 = 150
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathStakeMsg, StakeHandler{auth: auth, control: control})
	r.Handle(pathUnstakeMsg, UnstakeHandler{auth: auth, control: control})
	r.Handle(pathWithdrawYieldMsg, WithdrawYieldHandler{auth: auth, control: control})
}

// RegisterQuery exposes the farm buckets to queries.
func RegisterQuery(qr treasury.QueryRouter) {
	NewStateBucket().Register("farm", qr)
	NewStakerBucket().Register("stakers", qr)
}

// StakeHandler locks tokens in the farm pool.
type StakeHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ treasury.Handler = StakeHandler{}

func (h StakeHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	var msg StakeMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Staker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "staker signature missing")
	}
	return &treasury.CheckResult{GasAllocated: stakeTxCost}, nil
}

func (h StakeHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	var msg StakeMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Staker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "staker signature missing")
	}
	if err := h.control.Stake(ctx, db, msg.Staker, msg.Amount); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

// UnstakeHandler releases locked tokens.
type UnstakeHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ treasury.Handler = UnstakeHandler{}

func (h UnstakeHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	var msg UnstakeMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Staker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "staker signature missing")
	}
	return &treasury.CheckResult{GasAllocated: stakeTxCost}, nil
}

func (h UnstakeHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	var msg UnstakeMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Staker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "staker signature missing")
	}
	if err := h.control.Unstake(ctx, db, msg.Staker, msg.Amount); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{}, nil
}

// WithdrawYieldHandler pays out pending yield.
type WithdrawYieldHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ treasury.Handler = WithdrawYieldHandler{}

func (h WithdrawYieldHandler) Check(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	var msg WithdrawYieldMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Staker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "staker signature missing")
	}
	return &treasury.CheckResult{GasAllocated: withdrawTxCost}, nil
}

func (h WithdrawYieldHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	var msg WithdrawYieldMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Staker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "staker signature missing")
	}
	paid, err := h.control.WithdrawYield(ctx, db, msg.Staker)
	if err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{
		Tags: []treasury.Tag{treasury.NewTag("farm:yield", strconv.FormatInt(paid, 10))},
	}, nil
}
