package store_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rnsid/internal/crypto"
	"rnsid/internal/domain"
	"rnsid/internal/store"
)

// makeIdentity creates a fully derived identity.
func makeIdentity(t *testing.T) domain.Identity {
	t.Helper()
	id, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	return id
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	id := makeIdentity(t)
	path := filepath.Join(t.TempDir(), "identity")

	s := store.NewIdentityFileStore()
	if err := s.SaveIdentity(id, path); err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}

	secret, err := s.LoadSecret(path)
	if err != nil {
		t.Fatalf("LoadSecret: %v", err)
	}
	if !bytes.Equal(secret[:32], id.XPriv.Slice()) {
		t.Error("X25519 private half does not round-trip")
	}
	if !bytes.Equal(secret[32:], id.EdSeed.Slice()) {
		t.Error("Ed25519 seed half does not round-trip")
	}
}

func TestLoadSecretRejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity")
	if err := os.WriteFile(path, make([]byte, 48), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := store.NewIdentityFileStore().LoadSecret(path)
	var le *domain.LengthError
	if !errors.As(err, &le) {
		t.Fatalf("want LengthError, got %v", err)
	}
	if le.Expected != 64 || le.Actual != 48 {
		t.Fatalf("got expected=%d actual=%d, want 64/48", le.Expected, le.Actual)
	}
}

func TestLoadSecretMissingFile(t *testing.T) {
	_, err := store.NewIdentityFileStore().LoadSecret(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want os.ErrNotExist, got %v", err)
	}
}

func TestCompanionWrittenWithMarkers(t *testing.T) {
	id := makeIdentity(t)
	path := filepath.Join(t.TempDir(), "identity")

	s := store.NewIdentityFileStore()
	if err := s.SaveIdentity(id, path); err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}

	c, err := store.LoadCompanion(path)
	if err != nil {
		t.Fatalf("LoadCompanion: %v", err)
	}
	if c == nil {
		t.Fatal("companion file not written")
	}

	lines := c.MarkerLines()
	if len(lines) != 2 {
		t.Fatalf("got %d marker lines, want 2: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], id.Address.Hex()) {
		t.Errorf("address marker %q missing address %s", lines[0], id.Address.Hex())
	}
	if !strings.Contains(lines[1], id.Hash.Hex()) {
		t.Errorf("identity hash marker %q missing hash %s", lines[1], id.Hash.Hex())
	}

	if !c.ContainsHex(id.XPriv.Slice()) {
		t.Error("companion missing X25519 private hex")
	}
	if !c.ContainsHex(id.EdSeed.Slice()) {
		t.Error("companion missing Ed25519 seed hex")
	}
}

func TestLoadCompanionMissingIsNil(t *testing.T) {
	c, err := store.LoadCompanion(filepath.Join(t.TempDir(), "identity"))
	if err != nil {
		t.Fatalf("LoadCompanion: %v", err)
	}
	if c != nil {
		t.Fatalf("want nil companion for missing file, got %+v", c)
	}
}
