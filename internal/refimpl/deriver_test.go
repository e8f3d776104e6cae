package refimpl_test

import (
	"crypto/rand"
	"testing"

	"rnsid/internal/crypto"
	"rnsid/internal/domain"
	"rnsid/internal/refimpl"
)

func TestDeriverMatchesZeroVector(t *testing.T) {
	addr, err := refimpl.New().DeriveAddress(make([]byte, domain.SecretSize))
	if err != nil {
		t.Fatalf("DeriveAddress: %v", err)
	}
	if got, want := addr.Hex(), "abe3d7ce96f80910fa22f2e7d3bc8026"; got != want {
		t.Fatalf("address = %s, want %s", got, want)
	}
}

func TestDeriverAgreesWithPrimaryImplementation(t *testing.T) {
	ref := refimpl.New()
	for i := 0; i < 32; i++ {
		secret := make([]byte, domain.SecretSize)
		if _, err := rand.Read(secret); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}

		d, err := crypto.DeriveAddress(secret)
		if err != nil {
			t.Fatalf("crypto.DeriveAddress: %v", err)
		}
		refAddr, err := ref.DeriveAddress(secret)
		if err != nil {
			t.Fatalf("refimpl.DeriveAddress: %v", err)
		}
		if d.Address != refAddr {
			t.Fatalf("implementations disagree for secret %x: %s vs %s",
				secret, d.Address, refAddr)
		}
	}
}

func TestDeriverRejectsBadLength(t *testing.T) {
	if _, err := refimpl.New().DeriveAddress(make([]byte, 63)); err == nil {
		t.Fatal("want error for 63-byte secret, got nil")
	}
}
