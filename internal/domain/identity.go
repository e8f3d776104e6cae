package domain

// Identity holds the long-term X25519 and Ed25519 key material of one
// Reticulum identity together with its derived hash and LXMF address.
type Identity struct {
	XPriv  X25519Private
	XPub   X25519Public
	EdSeed Ed25519Seed
	EdPub  Ed25519Public

	Hash    IdentityHash
	Address Address
}

// Secret returns the 64-byte serialized secret: X25519 private || Ed25519 seed.
func (id Identity) Secret() []byte {
	out := make([]byte, 0, SecretSize)
	out = append(out, id.XPriv[:]...)
	return append(out, id.EdSeed[:]...)
}

// PublicKey returns the 64-byte concatenated public key material.
func (id Identity) PublicKey() PublicKey {
	var out PublicKey
	copy(out[:32], id.XPub[:])
	copy(out[32:], id.EdPub[:])
	return out
}
