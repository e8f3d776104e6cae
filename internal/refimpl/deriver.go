package refimpl

import (
	"crypto/ecdh"
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"

	"rnsid/internal/domain"
)

// Deriver implements domain.ReferenceDeriver on top of crypto/ecdh and
// crypto/ed25519.
type Deriver struct{}

// New returns a reference deriver.
func New() *Deriver { return &Deriver{} }

// DeriveAddress computes the LXMF destination address for a 64-byte secret.
func (d *Deriver) DeriveAddress(secret []byte) (domain.Address, error) {
	var addr domain.Address
	if len(secret) != domain.SecretSize {
		return addr, domain.NewLengthError(len(secret))
	}

	xPriv, err := ecdh.X25519().NewPrivateKey(secret[:32])
	if err != nil {
		return addr, fmt.Errorf("x25519 private key: %w", err)
	}
	edPriv := ed25519.NewKeyFromSeed(secret[32:])

	pub := make([]byte, 0, 64)
	pub = append(pub, xPriv.PublicKey().Bytes()...)
	pub = append(pub, edPriv.Public().(ed25519.PublicKey)...)

	identitySum := sha256.Sum256(pub)
	nameSum := sha256.Sum256([]byte("lxmf.delivery"))

	material := append(nameSum[:10:10], identitySum[:16]...)
	addrSum := sha256.Sum256(material)
	copy(addr[:], addrSum[:16])
	return addr, nil
}

var _ domain.ReferenceDeriver = (*Deriver)(nil)
