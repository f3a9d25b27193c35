package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [id] [name] [price] [stock]",
	Short: "Add a product to the inventory",
	Long:  `Validates and inserts a new product, then persists the snapshot.`,
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("price must be a number: %w", err)
		}
		stock, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("stock must be an integer: %w", err)
		}

		db := optionalDatabase(cfg, logg)
		inv, err := loadInventory(cfg, logg, db, optionalStorage(cfg, logg))
		if err != nil {
			return err
		}

		product, err := inv.AddProduct(cmd.Context(), args[0], args[1], price, stock)
		if err != nil {
			return err
		}

		logg.Info("Product added",
			zap.String("id", product.ID),
			zap.String("name", product.Name),
			zap.Float64("price", product.Price),
			zap.Int("stock", product.Stock),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(addCmd)
}
