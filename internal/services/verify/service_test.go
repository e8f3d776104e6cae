package verify_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"rnsid/internal/crypto"
	"rnsid/internal/domain"
	"rnsid/internal/services/verify"
	"rnsid/internal/store"
)

// fakeDeriver is a test double standing in for the external reference
// implementation.
type fakeDeriver struct {
	addr domain.Address
	err  error
}

func (f *fakeDeriver) DeriveAddress(secret []byte) (domain.Address, error) {
	return f.addr, f.err
}

// writeIdentity saves a fresh identity (with companion) and returns it.
func writeIdentity(t *testing.T, dir string) (domain.Identity, string) {
	t.Helper()
	id, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	path := filepath.Join(dir, "identity")
	if err := store.NewIdentityFileStore().SaveIdentity(id, path); err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}
	return id, path
}

func newService(ref domain.ReferenceDeriver) *verify.Service {
	return verify.New(store.NewIdentityFileStore(), ref, zerolog.Nop())
}

func TestVerifyReferenceMatch(t *testing.T) {
	id, path := writeIdentity(t, t.TempDir())

	svc := newService(&fakeDeriver{addr: id.Address})
	report, err := svc.Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if !report.ReferenceAvailable {
		t.Error("reference should be marked available")
	}
	if !report.Verified() {
		t.Error("matching addresses should verify")
	}
	if report.Derived.Address != id.Address {
		t.Errorf("derived address %s, want %s", report.Derived.Address, id.Address)
	}
}

func TestVerifyReferenceMismatch(t *testing.T) {
	id, path := writeIdentity(t, t.TempDir())

	var wrong domain.Address
	wrong[0] = ^id.Address[0]

	svc := newService(&fakeDeriver{addr: wrong})
	report, err := svc.Verify(path)
	if !errors.Is(err, domain.ErrAddressMismatch) {
		t.Fatalf("want ErrAddressMismatch, got %v", err)
	}

	// Both values must still be reported for manual inspection.
	if report == nil {
		t.Fatal("report should accompany a mismatch error")
	}
	if report.ReferenceAddress != wrong {
		t.Errorf("reference address %s not carried in report", wrong)
	}
	if report.Verified() {
		t.Error("mismatched addresses must not verify")
	}
}

func TestVerifyDegradedWithoutReference(t *testing.T) {
	_, path := writeIdentity(t, t.TempDir())

	report, err := newService(nil).Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.ReferenceAvailable {
		t.Error("reference should be unavailable")
	}
	if !report.Verified() {
		t.Error("degraded run should count as verified")
	}
}

func TestVerifyCompanionComparison(t *testing.T) {
	_, path := writeIdentity(t, t.TempDir())

	report, err := newService(nil).Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	c := report.Companion
	if c == nil {
		t.Fatal("companion result missing")
	}
	if !c.XPrivMatch || !c.EdSeedMatch {
		t.Errorf("companion halves should match: x=%v ed=%v", c.XPrivMatch, c.EdSeedMatch)
	}
	if !c.Matched() {
		t.Error("Matched should be true when both halves match")
	}
	if len(c.MarkerLines) != 2 {
		t.Errorf("got %d marker lines, want 2", len(c.MarkerLines))
	}
}

func TestVerifyCompanionPartialMismatch(t *testing.T) {
	dir := t.TempDir()
	id, path := writeIdentity(t, dir)

	// Rewrite the companion keeping only the X25519 private hex.
	content := "X25519 Private: " + id.XPriv.Hex() + "\n"
	if err := os.WriteFile(path+".txt", []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	report, err := newService(nil).Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	c := report.Companion
	if c == nil {
		t.Fatal("companion result missing")
	}
	if !c.XPrivMatch {
		t.Error("X25519 private hex present but not matched")
	}
	if c.EdSeedMatch {
		t.Error("Ed25519 seed hex absent but matched")
	}
	if c.Matched() {
		t.Error("Matched should be false when one half is missing")
	}
}

func TestVerifyMissingCompanionIsNotError(t *testing.T) {
	dir := t.TempDir()
	id, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	path := filepath.Join(dir, "identity")
	if err := os.WriteFile(path, id.Secret(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	report, err := newService(nil).Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if report.Companion != nil {
		t.Fatalf("want nil companion, got %+v", report.Companion)
	}
}

func TestVerifyWrongSizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity")
	if err := os.WriteFile(path, make([]byte, 65), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := newService(nil).Verify(path)
	var le *domain.LengthError
	if !errors.As(err, &le) {
		t.Fatalf("want LengthError, got %v", err)
	}
	if le.Actual != 65 {
		t.Fatalf("got actual=%d, want 65", le.Actual)
	}
}
