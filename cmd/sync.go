package cmd

import (
	"fmt"

	"inventory-manager/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the inventory snapshot into the audit table",
	Long: `Replaces the persisted product table contents with the current snapshot so
the stock auditor sees the latest saved state. Normally every save mirrors
automatically; sync forces it, e.g. after the table was created or repaired.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database unavailable: %w", err)
		}

		inv, err := loadInventory(cfg, logg, db, nil)
		if err != nil {
			return err
		}

		if err := inv.MirrorToDatabase(cmd.Context()); err != nil {
			return err
		}

		logg.Info("Inventory mirrored to audit table", zap.Int("products", inv.Len()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
