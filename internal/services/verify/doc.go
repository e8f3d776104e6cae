// Package verify checks identity files for compatibility with the reference
// mesh implementation.
//
// A verification run loads the 64-byte secret, derives the public key,
// identity hash and LXMF address locally, compares the key material against
// the companion .txt dump when one exists, and cross-checks the address
// against an independent reference derivation when one is wired. Absence of
// the reference implementation is a degraded run, not a failure.
package verify
