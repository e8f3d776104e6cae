package app

import (
	"rnsid/internal/domain"
	"rnsid/internal/log"
	"rnsid/internal/refimpl"
	vanitysvc "rnsid/internal/services/vanity"
	verifysvc "rnsid/internal/services/verify"
	"rnsid/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Identities domain.IdentityStore
	Reference  domain.ReferenceDeriver
	Verifier   *verifysvc.Service
	Vanity     *vanitysvc.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	log.Init(cfg.LogLevel, cfg.JSONLog)

	identityStore := store.NewIdentityFileStore()

	// Without a reference deriver, verification degrades to reporting the
	// locally computed address only.
	var ref domain.ReferenceDeriver
	if !cfg.NoReference {
		ref = refimpl.New()
	}

	return &Wire{
		Identities: identityStore,
		Reference:  ref,
		Verifier:   verifysvc.New(identityStore, ref, log.Verify),
		Vanity:     vanitysvc.New(log.Vanity),
	}
}
