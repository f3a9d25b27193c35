package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust [id] [delta]",
	Short: "Adjust product stock (negative delta sells, positive restocks)",
	Long: `Applies a stock delta to a product. Selling more than the available
stock is rejected. Sales emit a receipt file under the receipts directory.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("delta must be an integer: %w", err)
		}

		db := optionalDatabase(cfg, logg)
		inv, err := loadInventory(cfg, logg, db, optionalStorage(cfg, logg))
		if err != nil {
			return err
		}

		id := args[0]
		if delta < 0 {
			tx, receiptPath, err := inv.Sell(cmd.Context(), id, -delta)
			if err != nil {
				return err
			}
			logg.Info("Sale registered",
				zap.String("id", id),
				zap.Int("quantity", tx.Quantity()),
				zap.Int("stock", tx.ResultingStock),
				zap.String("receipt", receiptPath),
			)
			return nil
		}

		stock, err := inv.AdjustStock(cmd.Context(), id, delta)
		if err != nil {
			return err
		}
		logg.Info("Stock adjusted", zap.String("id", id), zap.Int("delta", delta), zap.Int("stock", stock))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(adjustCmd)
}
