package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rnsid/internal/crypto"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <identity-file>",
		Short: "Print the key material and address of an identity file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := wire.Identities.LoadSecret(args[0])
			if err != nil {
				return err
			}
			d, err := crypto.DeriveAddress(secret)
			if err != nil {
				return err
			}

			fmt.Printf("X25519 Public:  %s\n", d.XPub.Hex())
			fmt.Printf("Ed25519 Public: %s\n", d.EdPub.Hex())
			fmt.Printf("Identity Hash:  %s\n", d.Hash.Hex())
			fmt.Printf("LXMF Address:   %s\n", d.Address.Hex())
			return nil
		},
	}
}
