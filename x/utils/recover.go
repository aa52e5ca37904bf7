package utils

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Recovery is a decorator to recover from panics in transactions, so we
// can report them as errors.
type Recovery struct{}

var _ treasury.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors.
func (r Recovery) Check(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx, next treasury.Checker) (_ *treasury.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors.
func (r Recovery) Deliver(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx, next treasury.Deliverer) (_ *treasury.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
