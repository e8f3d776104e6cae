package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"rnsid/internal/domain"
)

// GenerateEd25519Seed returns a fresh Ed25519 seed and its public key.
func GenerateEd25519Seed() (seed domain.Ed25519Seed, pub domain.Ed25519Public, err error) {
	if _, err = rand.Read(seed[:]); err != nil {
		return
	}
	pub = PublicFromEd25519Seed(seed)
	return
}

// PublicFromEd25519Seed expands seed into a signing key pair and returns the
// public half, per the standard Ed25519 seed-expansion definition.
func PublicFromEd25519Seed(seed domain.Ed25519Seed) (pub domain.Ed25519Public) {
	sk := ed25519.NewKeyFromSeed(seed.Slice())
	copy(pub[:], sk.Public().(ed25519.PublicKey))
	return pub
}
