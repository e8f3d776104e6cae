package domain

import (
	"encoding/hex"
	"fmt"
)

// SecretSize is the size of a serialized identity secret:
// a 32-byte X25519 private key followed by a 32-byte Ed25519 seed.
const SecretSize = 64

// ------------- X25519 -------------

type X25519Private [32]byte
type X25519Public [32]byte

func (k X25519Private) Slice() []byte { return k[:] }
func (k X25519Private) Hex() string   { return hex.EncodeToString(k[:]) }
func (k X25519Public) Slice() []byte  { return k[:] }
func (k X25519Public) Hex() string    { return hex.EncodeToString(k[:]) }

func MustX25519Private(b []byte) X25519Private {
	if len(b) != 32 {
		panic(fmt.Errorf("X25519 private: want 32 bytes, got %d", len(b)))
	}
	var out X25519Private
	copy(out[:], b)
	return out
}

// ------------- Ed25519 -------------

// Ed25519Seed is the 32-byte private seed, not the expanded 64-byte key.
// The reference identity format stores only the seed.
type Ed25519Seed [32]byte
type Ed25519Public [32]byte

func (k Ed25519Seed) Slice() []byte  { return k[:] }
func (k Ed25519Seed) Hex() string    { return hex.EncodeToString(k[:]) }
func (k Ed25519Public) Slice() []byte { return k[:] }
func (k Ed25519Public) Hex() string   { return hex.EncodeToString(k[:]) }

func MustEd25519Seed(b []byte) Ed25519Seed {
	if len(b) != 32 {
		panic(fmt.Errorf("Ed25519 seed: want 32 bytes, got %d", len(b)))
	}
	var out Ed25519Seed
	copy(out[:], b)
	return out
}

// ------------- Derived material -------------

// PublicKey is the 64-byte concatenation X25519 public || Ed25519 public.
// It is the sole input to the identity hash and is never persisted.
type PublicKey [64]byte

func (p PublicKey) Slice() []byte { return p[:] }
func (p PublicKey) Hex() string   { return hex.EncodeToString(p[:]) }

// X25519 returns the first half of the public key.
func (p PublicKey) X25519() X25519Public {
	var out X25519Public
	copy(out[:], p[:32])
	return out
}

// Ed25519 returns the second half of the public key.
func (p PublicKey) Ed25519() Ed25519Public {
	var out Ed25519Public
	copy(out[:], p[32:])
	return out
}

// IdentityHash is the truncated SHA-256 of the public key, a stable
// per-identity fingerprint independent of any destination context.
type IdentityHash [16]byte

func (h IdentityHash) Slice() []byte { return h[:] }
func (h IdentityHash) Hex() string   { return hex.EncodeToString(h[:]) }

// Address is a 16-byte destination hash, routing messages to one identity
// under one application context (for LXMF, "lxmf.delivery").
type Address [16]byte

func (a Address) Slice() []byte  { return a[:] }
func (a Address) Hex() string    { return hex.EncodeToString(a[:]) }
func (a Address) String() string { return a.Hex() }
