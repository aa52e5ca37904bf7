package crypto

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used in the condition all signers of this package
// resolve to.
const ExtensionName = "sigs"

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte
}

var _ Signer = (*PrivateKey)(nil)

// Verify checks that the given signature was made on the message by the
// holder of this public key.
func (p *PublicKey) Verify(message []byte, sig []byte) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig)
}

// Condition generates a Condition object to represent a valid signature.
func (p *PublicKey) Condition() treasury.Condition {
	if len(p.Ed25519) == 0 {
		return nil
	}
	return treasury.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a shortcut to the address of the signature condition.
func (p *PublicKey) Address() treasury.Address {
	return p.Condition().Address()
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte
}

// Sign returns the signature of the message using this key.
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid ed25519 private key")
	}
	return ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message), nil
}

// PublicKey returns the public key associated with this private key.
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// Signer is the interface for signing messages.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() *PublicKey
}
