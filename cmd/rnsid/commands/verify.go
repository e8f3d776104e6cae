package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rnsid/internal/domain"
	"rnsid/internal/services/verify"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <identity-file>",
		Short: "Check an identity file against the reference derivation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.Verifier.Verify(args[0])
			if report != nil {
				printReport(report)
			}
			if errors.Is(err, domain.ErrAddressMismatch) {
				fmt.Println("\nFAILURE: addresses do not match")
				fmt.Printf("  Reference: %s\n", report.ReferenceAddress.Hex())
				fmt.Printf("  Local:     %s\n", report.Derived.Address.Hex())
				return err
			}
			if err != nil {
				return err
			}
			if report.ReferenceAvailable {
				fmt.Println("\nSUCCESS: addresses match, identity file is compatible")
			} else {
				fmt.Println("\nReference implementation unavailable, showing local derivation only")
			}
			return nil
		},
	}
}

func printReport(r *verify.Report) {
	d := r.Derived

	fmt.Printf("File: %s\n\n", r.Path)
	fmt.Println("Identity private key:")
	fmt.Printf("  X25519 Private:  %s\n", d.XPriv.Hex())
	fmt.Printf("  Ed25519 Seed:    %s\n\n", d.EdSeed.Hex())

	fmt.Println("Derived public keys:")
	fmt.Printf("  X25519 Public:   %s\n", d.XPub.Hex())
	fmt.Printf("  Ed25519 Public:  %s\n\n", d.EdPub.Hex())

	fmt.Printf("Identity Hash: %s\n", d.Hash.Hex())
	fmt.Printf("LXMF Address:  %s\n", d.Address.Hex())

	if c := r.Companion; c != nil {
		fmt.Printf("\nComparing with %s:\n", c.Path)
		fmt.Printf("  X25519 private key match: %s\n", matchWord(c.XPrivMatch))
		fmt.Printf("  Ed25519 seed match:       %s\n", matchWord(c.EdSeedMatch))
		for _, line := range c.MarkerLines {
			fmt.Printf("  %s\n", line)
		}
	}

	if r.ReferenceAvailable {
		fmt.Printf("\nReference address: %s\n", r.ReferenceAddress.Hex())
	}
}

func matchWord(ok bool) string {
	if ok {
		return "yes"
	}
	return "MISMATCH"
}
