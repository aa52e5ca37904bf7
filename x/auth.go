/*
Package x holds the interfaces shared by all extensions: authentication
lookup and a few helpers to work with conditions.
*/
package x

import (
	"github.com/iov-one/treasury"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system, rather than
// hard-coding one implementation for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled.
	GetConditions(treasury.Context) []treasury.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(treasury.Context, treasury.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators.
func (m MultiAuth) GetConditions(ctx treasury.Context) []treasury.Condition {
	var res []treasury.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this address.
func (m MultiAuth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx treasury.Context, auth Authenticator) []treasury.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]treasury.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil.
func MainSigner(ctx treasury.Context, auth Authenticator) treasury.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are also in
// the context.
func HasAllAddresses(ctx treasury.Context, auth Authenticator, required []treasury.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// HasAllConditions returns true if all elements in required are also in
// the context.
func HasAllConditions(ctx treasury.Context, auth Authenticator, required []treasury.Condition) bool {
	perms := auth.GetConditions(ctx)
	for _, req := range required {
		if !hasPerm(perms, req) {
			return false
		}
	}
	return true
}

func hasPerm(perms []treasury.Condition, perm treasury.Condition) bool {
	for _, p := range perms {
		if p.Equals(perm) {
			return true
		}
	}
	return false
}
