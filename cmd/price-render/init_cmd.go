package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/storefront/price-render/internal/domain"
	"github.com/storefront/price-render/internal/output"
	"github.com/storefront/price-render/internal/tax"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write an example store file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "store.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := output.SaveConfiguration(exampleConfiguration(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
}

func exampleConfiguration() *domain.Configuration {
	reduced := decimal.NewFromFloat(0.07)
	return &domain.Configuration{
		Store: domain.StoreSettings{
			Locale:         "en-US",
			Currency:       "USD",
			CatalogPrices:  tax.DisplayBoth,
			DefaultTaxRate: decimal.NewFromFloat(0.19),
			Zone:           "item_list",
		},
		Products: []domain.CatalogProduct{
			{ID: "123", Name: "Walnut stamp", Price: decimal.NewFromFloat(19.99)},
			{ID: "124", Name: "Ink pad", Price: decimal.NewFromInt(5), TaxRate: &reduced},
		},
	}
}
