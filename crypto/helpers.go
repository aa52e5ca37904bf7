package crypto

import (
	"crypto/rand"
	"crypto/sha512"

	"golang.org/x/crypto/ed25519"
)

// GenPrivKeyEd25519 returns a random new private key. It panics when the
// system entropy source fails, as no secure operation is possible then.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed deterministically derives a private key from any
// seed bytes. Use only for tests and tooling, never with a low entropy
// seed in production.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	digest := sha512.Sum512(seed)
	priv := ed25519.NewKeyFromSeed(digest[:ed25519.SeedSize])
	return &PrivateKey{Ed25519: priv}
}
