package store

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"sync"

	"rnsid/internal/domain"
	"rnsid/internal/util/memzero"
)

// IdentityFileStore persists identities as reference-compatible file pairs:
// "<path>" holds the 64-byte secret, "<path>.txt" the human-readable dump.
type IdentityFileStore struct {
	mu sync.Mutex
}

func NewIdentityFileStore() *IdentityFileStore { return &IdentityFileStore{} }

// LoadSecret reads the whole identity file and enforces the exact secret
// size. Anything other than 64 bytes is a malformed file, not a partial
// parse.
func (s *IdentityFileStore) LoadSecret(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) != domain.SecretSize {
		return nil, domain.NewLengthError(len(data))
	}
	return data, nil
}

// SaveIdentity writes the binary secret and the companion text file.
func (s *IdentityFileStore) SaveIdentity(id domain.Identity, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret := id.Secret()
	defer memzero.Zero(secret)

	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return err
	}
	return os.WriteFile(path+".txt", []byte(companionText(id, secret)), 0o600)
}

// companionText renders the .txt dump. The "Address (LXMF):" and
// "Identity Hash:" marker lines are load-bearing: the verifier echoes them
// back when comparing a file pair.
func companionText(id domain.Identity, secret []byte) string {
	var b strings.Builder

	fmt.Fprintf(&b, "LXMF Identity\n")
	fmt.Fprintf(&b, "=============\n\n")
	fmt.Fprintf(&b, "Address (LXMF): %s\n", id.Address.Hex())
	fmt.Fprintf(&b, "Identity Hash:  %s\n\n", id.Hash.Hex())

	fmt.Fprintf(&b, "Public Key (X25519 + Ed25519):\n")
	fmt.Fprintf(&b, "  X25519 Public:  %s\n", id.XPub.Hex())
	fmt.Fprintf(&b, "  Ed25519 Public: %s\n\n", id.EdPub.Hex())

	fmt.Fprintf(&b, "Private Key (X25519 + Ed25519):\n")
	fmt.Fprintf(&b, "  X25519 Private: %s\n", id.XPriv.Hex())
	fmt.Fprintf(&b, "  Ed25519 Seed:   %s\n\n", id.EdSeed.Hex())

	// Import strings understood by MeshChat (Base64) and Sideband (Base32).
	fmt.Fprintf(&b, "--- Import formats ---\n")
	fmt.Fprintf(&b, "Base64 (MeshChat import string):\n%s\n",
		base64.StdEncoding.EncodeToString(secret))
	fmt.Fprintf(&b, "Base32 (Sideband import string):\n%s\n",
		base32.StdEncoding.EncodeToString(secret))

	return b.String()
}

var _ domain.IdentityStore = (*IdentityFileStore)(nil)
