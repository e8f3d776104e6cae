package domain

// IdentityStore persists identity secrets as raw 64-byte files compatible
// with the reference mesh implementation.
type IdentityStore interface {
	LoadSecret(path string) ([]byte, error)
	SaveIdentity(id Identity, path string) error
}

// ReferenceDeriver is an independent implementation capable of computing the
// destination address for a 64-byte secret. It is used only to cross-validate
// the local derivation and is treated as a black box. A nil ReferenceDeriver
// means no reference implementation is available; verification then degrades
// to reporting the locally computed value.
type ReferenceDeriver interface {
	DeriveAddress(secret []byte) (Address, error)
}
