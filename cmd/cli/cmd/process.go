// Package cmd - process command
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"boq-cost/adapters/excel"
	"boq-cost/core/catalog"
	"boq-cost/core/engine"
	"boq-cost/core/output"
	"boq-cost/core/types"
	"boq-cost/internal/config"
	"boq-cost/internal/logging"
	"boq-cost/trades"
	"boq-cost/trades/ac"
	"boq-cost/trades/electrical"
	"boq-cost/trades/fire"
	"boq-cost/trades/interior"
)

var (
	catalogPath  string
	sheetName    string
	outputFormat string
	outputPath   string
	noSave       bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process [trade] [workbook]",
	Short: "Price a BOQ workbook for one trade",
	Long: `Match a BOQ worksheet against the trade's master price list, write
costs, section totals, the grand total and markup columns, then save
the priced workbook next to the input.

Trades: interior, electrical, ac, fire

Examples:
  boq-cost process electrical ./boq.xlsx
  boq-cost process interior --sheet "INTERIOR" ./boq.xlsx
  boq-cost process fire --catalog prices.json --format json ./boq.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "master price list JSON (default from config)")
	processCmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "worksheet name (default is the first sheet)")
	processCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	processCmd.Flags().StringVarP(&outputPath, "output", "o", "", "priced workbook path")
	processCmd.Flags().BoolVar(&noSave, "no-save", false, "do not write the priced workbook")
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()
	cfg := config.Get()

	trade, ok := types.ParseTrade(args[0])
	if !ok {
		return fmt.Errorf("unknown trade %q (expected one of: interior, electrical, ac, fire)", args[0])
	}

	path := args[1]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("workbook does not exist: %s", path)
	}

	if err := registerTrades(); err != nil {
		return fmt.Errorf("failed to register trades: %w", err)
	}
	def, ok := trades.Get(trade)
	if !ok {
		return fmt.Errorf("trade not registered: %s", trade)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	wb, err := excel.Open(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	override := cfg.Trade(trade.String())
	def = applyOverrides(def, override)

	sheet, err := resolveSheet(wb, override)
	if err != nil {
		return err
	}

	logging.Info("Processing workbook")
	proc := engine.NewProcessor(*def, cfg.Markup.Rates)
	result, err := proc.Process(ctx, sheet, cat)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if err := output.NewFormatter(format).Render(os.Stdout, result); err != nil {
		return err
	}

	if !noSave && cfg.Output.SavePriced {
		dest := outputPath
		if dest == "" {
			dest = pricedPath(path, cfg.Output.PricedSuffix)
		}
		if err := wb.SaveAs(dest); err != nil {
			return err
		}
		fmt.Printf("\nPriced workbook written to %s\n", dest)
	}

	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func registerTrades() error {
	for _, reg := range []func() error{
		interior.Register,
		electrical.Register,
		ac.Register,
		fire.Register,
	} {
		if err := reg(); err != nil && !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	return nil
}

func loadCatalog(cfg *config.Config) (*catalog.MemoryCatalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load price list: %w", err)
	}
	return cat, nil
}

// applyOverrides copies the definition before mutating so the registry
// entry stays pristine across invocations.
func applyOverrides(def *engine.TradeDefinition, tc config.TradeConfig) *engine.TradeDefinition {
	out := *def
	if tc.Columns != nil {
		out.Columns = *tc.Columns
	}
	if len(tc.MarkupPercentages) > 0 {
		out.MarkupPercentages = tc.MarkupPercentages
	}
	if tc.AllowNameOnly {
		out.Matcher.AllowNameOnly = true
	}
	return &out
}

func resolveSheet(wb *excel.Workbook, tc config.TradeConfig) (*excel.Sheet, error) {
	name := sheetName
	if name == "" {
		name = tc.Sheet
	}
	if name == "" {
		return wb.FirstSheet()
	}
	return wb.Sheet(name)
}

func pricedPath(path, suffix string) string {
	if suffix == "" {
		suffix = "_priced"
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
