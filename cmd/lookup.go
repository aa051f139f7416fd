package cmd

import (
	"fmt"
	"strings"

	"ledger-manager/core/config"
	"ledger-manager/core/ident"
	"ledger-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// lookupCmd resolves display names from the configured catalog.
var lookupCmd = &cobra.Command{
	Use:   "lookup <identifier>...",
	Short: "Look up catalog names for identifiers",
	Long:  `Queries the configured catalog source (database or storage) for the display name of each identifier.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		b := connectCatalog(cfg, logg)
		if b.source == nil {
			return fmt.Errorf("no catalog source available (catalog.source=%q)", cfg.Catalog.Source)
		}

		validator := ident.NewValidator(cfg.Identifier)
		valid, invalid := validator.Split(strings.Join(args, " "))
		for _, id := range invalid {
			logg.Warn("Invalid identifier format", zap.String("identifier", id))
		}

		for _, id := range valid {
			name, found, err := b.source.Lookup(ctx, id)
			if err != nil {
				return fmt.Errorf("lookup %s failed: %w", id, err)
			}
			if !found {
				fmt.Printf("%s\t(not found)\n", strings.ToUpper(id))
				continue
			}
			fmt.Printf("%s\t%s\n", strings.ToUpper(id), name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
}
