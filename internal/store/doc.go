// Package store reads and writes identity files on disk.
//
// The binary format is the reference mesh implementation's: a raw 64-byte
// secret (X25519 private key followed by Ed25519 seed) with no header,
// checksum or versioning. Alongside it the store maintains a free-form
// human-readable ".txt" companion carrying the address, hashes and import
// strings for other mesh clients.
package store
