package cmd

import (
	"fmt"
	"os"

	"ledger-manager/core/catalog"
	"ledger-manager/core/config"
	"ledger-manager/core/directory"
	"ledger-manager/core/ident"
	"ledger-manager/core/logger"
	"ledger-manager/core/reconcile"
	"ledger-manager/feature/ledger"

	"github.com/spf13/cobra"
)

// sessionCmd runs the interactive ledger console on the terminal.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive ledger session",
	Long: `Reads commands from standard input and prints both ledgers after each one.

Commands:
  receive <ids>   record identifiers in the received flow
  ship <ids>      record identifiers in the shipped flow
  show            print both ledgers
  clear           empty both ledgers
  quit            leave the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Logs go to stderr through zap; keep them quiet unless asked
		logCfg := cfg.Log
		if !cmd.Flags().Changed("verbose") {
			logCfg.Level = "warn"
		}
		logg, err := logger.New(&logCfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		b := connectCatalog(cfg, logg)

		processor := reconcile.NewProcessor(directory.New())
		svc := ledger.NewService(ident.NewValidator(cfg.Identifier), processor, catalog.NewResolver(b.source, logg), logg)

		return ledger.NewConsole(svc, os.Stdin, os.Stdout).Run(cmd.Context())
	},
}

func init() {
	sessionCmd.Flags().Bool("verbose", false, "Use the configured log level instead of warn")
	RootCmd.AddCommand(sessionCmd)
}
