// Package output renders processing results for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"boq-cost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the result
	Render(w io.Writer, result *types.Result) error
}

// NewFormatter resolves a formatter by format name, defaulting to CLI
func NewFormatter(format string) Formatter {
	switch Format(format) {
	case FormatJSON:
		return &jsonFormatter{}
	default:
		return &cliFormatter{}
	}
}

type cliFormatter struct{}

func (*cliFormatter) Format() Format { return FormatCLI }

func (*cliFormatter) Render(w io.Writer, result *types.Result) error {
	fmt.Fprintf(w, "Trade: %s\n", result.Trade)
	fmt.Fprintf(w, "Items processed: %d, failed: %d, match rate: %.1f%%\n\n",
		result.ItemsProcessed, result.ItemsFailed, result.MatchRate)

	ids := make([]string, 0, len(result.Sections))
	for id := range result.Sections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return result.Sections[ids[i]].StartRow < result.Sections[ids[j]].StartRow
	})

	fmt.Fprintf(w, "%-28s %10s %6s %14s %14s %14s\n",
		"SECTION", "ROWS", "ITEMS", "MATERIAL", "LABOR", "TOTAL")
	for _, id := range ids {
		s := result.Sections[id]
		fmt.Fprintf(w, "%-28s %4d-%-5d %6d %14s %14s %14s\n",
			truncate(id, 28),
			s.StartRow, s.EndRow,
			s.ItemCount,
			s.MaterialSum.StringFixed(2),
			s.LaborSum.StringFixed(2),
			s.TotalSum.StringFixed(2))
	}

	if !result.GrandTotal.IsZero() {
		fmt.Fprintf(w, "\nGrand total: %s\n", result.GrandTotal.StringFixed(2))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

type jsonFormatter struct{}

func (*jsonFormatter) Format() Format { return FormatJSON }

func (*jsonFormatter) Render(w io.Writer, result *types.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
