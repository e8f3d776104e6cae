// Package crypto exposes the key derivations behind Reticulum identities.
//
// Contents
//
//   - X25519 public-key recovery and generation (PublicFromX25519,
//     GenerateX25519)
//   - Ed25519 public-key recovery and generation (PublicFromEd25519Seed,
//     GenerateEd25519Seed)
//   - Truncated SHA-256 name hashes for destination contexts (NameHash)
//   - The full secret-to-address derivation chain (DeriveAddress,
//     GenerateIdentity)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain to
// avoid accidental reallocations. Key material is accepted as-is: both curve
// operations take any 32-byte string per their standard definitions, matching
// the permissiveness of the reference implementation. Only the total secret
// length is validated.
package crypto
