package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the products in the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		inv, err := loadInventory(cfg, logg, nil, nil)
		if err != nil {
			return err
		}

		if inv.Len() == 0 {
			fmt.Println("No products in the inventory.")
			return nil
		}

		fmt.Printf("%-10s %-25s %10s %8s\n", "ID", "Name", "Price", "Stock")
		fmt.Println("------------------------------------------------------------")
		for p := range inv.Products() {
			fmt.Printf("%-10s %-25s %10.2f %8d\n", p.ID, p.Name, p.Price, p.Stock)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
