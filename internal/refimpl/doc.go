// Package refimpl cross-validates address derivation through an independent
// code path.
//
// It recomputes the destination address using the standard library's
// crypto/ecdh X25519 implementation instead of golang.org/x/crypto, so the
// primary derivation in internal/crypto and this one share no curve
// arithmetic. Agreement between the two is strong evidence that an identity
// file is compatible with the reference mesh implementation.
package refimpl
