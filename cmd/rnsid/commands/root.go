package commands

import (
	"github.com/spf13/cobra"

	"rnsid/internal/app"
)

var (
	logLevel    string
	jsonLog     bool
	noReference bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "rnsid",
		Short:         "Reticulum/LXMF identity file tools",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire = app.NewWire(app.Config{
				LogLevel:    logLevel,
				JSONLog:     jsonLog,
				NoReference: noReference,
			})
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit JSON logs instead of console output")
	root.PersistentFlags().BoolVar(&noReference, "no-reference", false, "skip the reference cross-check")

	root.AddCommand(verifyCmd(), generateCmd(), inspectCmd())
	return root.Execute()
}
