package treasurytest

import (
	"context"

	"github.com/iov-one/treasury"
)

// Auth is a mock implementing x.Authenticator interface. It authenticates
// the same set of signers for every context.
type Auth struct {
	// Signer is declared as a main signer.
	Signer treasury.Condition
	// Signers are all authenticated signers. The main signer is always
	// part of the result.
	Signers []treasury.Condition
}

func (a *Auth) signers() []treasury.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]treasury.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) GetConditions(treasury.Context) []treasury.Condition {
	return a.signers()
}

func (a *Auth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	for _, s := range a.signers() {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is an x.Authenticator implementation that reads the signers from
// the context. Unlike Auth it allows different conditions per call.
type CtxAuth struct {
	// Key under which the signers are stored in the context.
	Key string
}

type ctxAuthKey string

// SetConditions returns a context with given conditions attached.
func (a *CtxAuth) SetConditions(ctx treasury.Context, conds ...treasury.Condition) treasury.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx treasury.Context) []treasury.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]treasury.Condition)
	if !ok {
		panic("conditions stored in the context under an invalid type")
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
