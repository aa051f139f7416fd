package cmd

import (
	"encoding/json"
	"fmt"

	"ledger-manager/core/config"
	"ledger-manager/core/logger"
	"ledger-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the catalog backends",
	Long:  `Checks that the configured catalog database and storage are reachable and shaped as configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

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
		svc := integrity.NewService(b.source, b.db, b.client, cfg.Storage.Bucket, logg)
		report := svc.Run(ctx)

		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
		} else {
			logg.Info("Integrity report",
				zap.String("catalog", report.Catalog),
				zap.String("database", report.Database.Status),
				zap.String("storage", report.Storage.Status),
			)
		}

		if !report.Healthy() {
			return fmt.Errorf("integrity checks failed")
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().Bool("json", false, "Print the report as JSON")
	RootCmd.AddCommand(integrityCmd)
}
