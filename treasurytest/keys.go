package treasurytest

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/crypto"
)

// NewKey returns a newly generated random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a newly generated key. Use this
// when you need an identity but never the key itself.
func NewCondition() treasury.Condition {
	return NewKey().PublicKey().Condition()
}
