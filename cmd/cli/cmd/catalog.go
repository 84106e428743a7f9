// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boq-cost/core/catalog"
	"boq-cost/core/types"
	"boq-cost/internal/config"
)

// catalogCmd inspects the master price list
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show master price list statistics",
	Long: `Load the master price list and report item counts per trade.

Examples:
  boq-cost catalog
  boq-cost catalog --catalog prices.json`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "master price list JSON (default from config)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	path := catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load price list: %w", err)
	}

	fmt.Printf("Price list: %s\n\n", path)
	fmt.Printf("%-16s %8s\n", "TRADE", "ITEMS")

	total := 0
	for _, trade := range types.AllTrades() {
		n := cat.Size(trade)
		total += n
		fmt.Printf("%-16s %8d\n", trade, n)
	}
	fmt.Printf("\nTotal items: %d\n", total)
	return nil
}
