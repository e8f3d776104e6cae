package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rnsid/internal/services/vanity"
)

func generateCmd() *cobra.Command {
	var (
		prefix   string
		postfix  string
		workers  int
		outPath  string
		dryRun   bool
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create an identity, optionally with a vanity address",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if dryRun {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			id, stats, err := wire.Vanity.Search(ctx, vanity.Options{
				Prefix:  prefix,
				Postfix: postfix,
				Workers: workers,
				DryRun:  dryRun,
			})
			if dryRun {
				if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
					return err
				}
				fmt.Printf("Dry run: %d attempts in %s (%.0f/s)\n",
					stats.Attempts,
					stats.Elapsed.Round(time.Millisecond),
					float64(stats.Attempts)/stats.Elapsed.Seconds())
				return nil
			}
			if err != nil {
				return err
			}

			if err := wire.Identities.SaveIdentity(*id, outPath); err != nil {
				return fmt.Errorf("save identity: %w", err)
			}

			fmt.Printf("Identity created.\n")
			fmt.Printf("  Address (LXMF): %s\n", id.Address.Hex())
			fmt.Printf("  Identity Hash:  %s\n", id.Hash.Hex())
			fmt.Printf("  Written to %s (companion %s.txt)\n", outPath, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "desired hex prefix on the address (1-32 chars)")
	cmd.Flags().StringVar(&postfix, "postfix", "", "desired hex postfix on the address (1-32 chars)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default: all CPUs)")
	cmd.Flags().StringVar(&outPath, "out", "identity", "output path for the identity file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "measure search speed only, don't save")
	cmd.Flags().DurationVar(&duration, "duration", 10*time.Second, "how long to run a dry-run speed test")
	return cmd
}
