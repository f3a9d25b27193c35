package cmd

import (
	"fmt"

	"inventory-manager/core/database"
	"inventory-manager/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit [threshold]",
	Short: "Generate a low-stock report from the persisted product table",
	Long: `Runs the stock auditor once: queries the product table for products with
stock at or below the threshold, prints the report and appends it to the audit
log. A non-numeric threshold falls back to the configured default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		// The auditor is a one-shot batch tool; an unreachable table is a
		// clear failure, not something to retry.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("audit database unavailable: %w", err)
		}

		svc := audit.NewService(cfg.Audit, db, logg, optionalStorage(cfg, logg), cfg.Storage.Bucket)

		raw := ""
		if len(args) > 0 {
			raw = args[0]
		}
		threshold := svc.ParseThreshold(raw)

		report, err := svc.Run(cmd.Context(), threshold)
		if err != nil {
			return err
		}

		fmt.Print(report)
		logg.Info("Audit report appended",
			zap.String("log", cfg.Audit.LogDir+"/"+cfg.Audit.LogFile),
			zap.Int("threshold", threshold),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(auditCmd)
}
