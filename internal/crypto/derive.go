package crypto

import (
	"crypto/sha256"

	"rnsid/internal/domain"
)

// DeliveryApp and DeliveryAspect name the LXMF destination context whose
// address this package derives.
const (
	DeliveryApp    = "lxmf"
	DeliveryAspect = "delivery"
)

// deliveryNameHash is constant and independent of any key material.
var deliveryNameHash = NameHash(DeliveryApp, DeliveryAspect)

// Derived is everything DeriveAddress computes from a 64-byte secret.
type Derived struct {
	XPriv  domain.X25519Private
	XPub   domain.X25519Public
	EdSeed domain.Ed25519Seed
	EdPub  domain.Ed25519Public

	PublicKey domain.PublicKey
	Hash      domain.IdentityHash
	Address   domain.Address
}

// Identity converts the derivation result into a domain.Identity.
func (d Derived) Identity() domain.Identity {
	return domain.Identity{
		XPriv:   d.XPriv,
		XPub:    d.XPub,
		EdSeed:  d.EdSeed,
		EdPub:   d.EdPub,
		Hash:    d.Hash,
		Address: d.Address,
	}
}

// DeriveAddress reconstructs the public key material from a 64-byte secret
// (X25519 private || Ed25519 seed) and computes the identity hash and LXMF
// destination address:
//
//	public_key    = X25519_pub || Ed25519_pub
//	identity_hash = SHA256(public_key)[:16]
//	address       = SHA256(name_hash || identity_hash)[:16]
//
// The computation is pure. Only the secret length is validated; any 32-byte
// string is accepted as curve input.
func DeriveAddress(secret []byte) (Derived, error) {
	if len(secret) != domain.SecretSize {
		return Derived{}, domain.NewLengthError(len(secret))
	}

	d := Derived{
		XPriv:  domain.MustX25519Private(secret[:32]),
		EdSeed: domain.MustEd25519Seed(secret[32:]),
	}

	xPub, err := PublicFromX25519(d.XPriv)
	if err != nil {
		return Derived{}, err
	}
	d.XPub = xPub
	d.EdPub = PublicFromEd25519Seed(d.EdSeed)

	copy(d.PublicKey[:32], d.XPub[:])
	copy(d.PublicKey[32:], d.EdPub[:])

	identitySum := sha256.Sum256(d.PublicKey.Slice())
	copy(d.Hash[:], identitySum[:16])

	material := make([]byte, 0, NameHashSize+len(d.Hash))
	material = append(material, deliveryNameHash[:]...)
	material = append(material, d.Hash[:]...)
	addressSum := sha256.Sum256(material)
	copy(d.Address[:], addressSum[:16])

	return d, nil
}

// GenerateIdentity creates a fresh identity with fully derived hash and
// address.
func GenerateIdentity() (domain.Identity, error) {
	xPriv, xPub, err := GenerateX25519()
	if err != nil {
		return domain.Identity{}, err
	}
	edSeed, edPub, err := GenerateEd25519Seed()
	if err != nil {
		return domain.Identity{}, err
	}

	id := domain.Identity{
		XPriv:  xPriv,
		XPub:   xPub,
		EdSeed: edSeed,
		EdPub:  edPub,
	}

	d, err := DeriveAddress(id.Secret())
	if err != nil {
		return domain.Identity{}, err
	}
	id.Hash = d.Hash
	id.Address = d.Address
	return id, nil
}
