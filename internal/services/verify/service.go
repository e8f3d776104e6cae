package verify

import (
	"fmt"

	"github.com/rs/zerolog"

	"rnsid/internal/crypto"
	"rnsid/internal/domain"
	"rnsid/internal/store"
	"rnsid/internal/util/memzero"
)

// CompanionResult is the outcome of comparing against the .txt dump.
type CompanionResult struct {
	Path        string
	XPrivMatch  bool
	EdSeedMatch bool
	MarkerLines []string
}

// Matched reports whether both private halves were found in the dump.
func (r CompanionResult) Matched() bool { return r.XPrivMatch && r.EdSeedMatch }

// Report carries everything a verification run computed.
type Report struct {
	Path    string
	Derived crypto.Derived

	// Companion is nil when no .txt file exists next to the identity.
	Companion *CompanionResult

	// ReferenceAddress is set when a reference implementation was available.
	ReferenceAvailable bool
	ReferenceAddress   domain.Address
}

// Verified reports whether the reference cross-check passed. Degraded runs
// (no reference available) count as verified.
func (r *Report) Verified() bool {
	return !r.ReferenceAvailable || r.ReferenceAddress == r.Derived.Address
}

// Service runs verification against a backing store and an optional
// reference deriver.
type Service struct {
	store domain.IdentityStore
	ref   domain.ReferenceDeriver
	log   zerolog.Logger
}

// New returns a verify service. ref may be nil, in which case runs degrade
// to local derivation only.
func New(s domain.IdentityStore, ref domain.ReferenceDeriver, log zerolog.Logger) *Service {
	return &Service{store: s, ref: ref, log: log}
}

// Verify checks the identity file at path. It returns a report alongside any
// error so callers can print what was computed even on mismatch; the error
// is domain.ErrAddressMismatch (wrapped) when the reference disagrees.
func (s *Service) Verify(path string) (*Report, error) {
	secret, err := s.store.LoadSecret(path)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(secret)

	d, err := crypto.DeriveAddress(secret)
	if err != nil {
		return nil, err
	}
	report := &Report{Path: path, Derived: d}

	s.log.Debug().
		Str("path", path).
		Str("address", d.Address.Hex()).
		Msg("derived address")

	companion, err := store.LoadCompanion(path)
	if err != nil {
		return report, err
	}
	if companion != nil {
		report.Companion = &CompanionResult{
			Path:        companion.Path,
			XPrivMatch:  companion.ContainsHex(d.XPriv.Slice()),
			EdSeedMatch: companion.ContainsHex(d.EdSeed.Slice()),
			MarkerLines: companion.MarkerLines(),
		}
	}

	if s.ref == nil {
		s.log.Debug().Msg("no reference implementation wired, degraded run")
		return report, nil
	}

	refAddr, err := s.ref.DeriveAddress(secret)
	if err != nil {
		return report, fmt.Errorf("reference derivation: %w", err)
	}
	report.ReferenceAvailable = true
	report.ReferenceAddress = refAddr

	if refAddr != d.Address {
		return report, fmt.Errorf("%w: reference %s, local %s",
			domain.ErrAddressMismatch, refAddr.Hex(), d.Address.Hex())
	}
	return report, nil
}
