package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
	"github.com/jakechorley/scholarship-allocator/pkg/dataset"
	"github.com/jakechorley/scholarship-allocator/pkg/export"
)

const barWidth = 40

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// renderInspection prints headers, detected types and identifier candidates
func renderInspection(w io.Writer, name string, table *dataset.Table) {
	fmt.Fprintf(w, "\n%s: %d rows, %d columns\n\n", name, table.Len(), len(table.Headers))

	types := table.ColumnTypes()
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "COLUMN\tTYPE")
	for _, header := range table.Headers {
		fmt.Fprintf(tw, "%s\t%s\n", header, types[header])
	}
	tw.Flush()

	idColumns := table.TextColumns()
	fmt.Fprintf(w, "\nIdentifier column candidates: %s\n", strings.Join(idColumns, ", "))
	fmt.Fprintf(w, "Criterion column candidates:  %s\n\n", strings.Join(table.NumericColumns(idColumns[0]), ", "))
}

// renderWeights prints each criterion with its weight label and normalized weight
func renderWeights(w io.Writer, criteria []allocator.Criterion, normalized map[string]float64) {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CRITERION\tKIND\tWEIGHT\tNORMALIZED")
	for _, c := range criteria {
		fmt.Fprintf(tw, "%s\t%s\t%d (%s)\t%.4f\n", c.Name, c.Kind, c.Weight, allocator.WeightLabel(c.Weight), normalized[c.Name])
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// renderRanking prints the full ranked table
func renderRanking(w io.Writer, scored *allocator.ScoredTable) {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "RANK\t%s\tS\tV\n", strings.ToUpper(idHeader(scored.IDColumn)))
	for _, row := range scored.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\t%.6f\n", row.Rank, row.ID, row.RawScore, row.NormalizedScore)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// renderAllocation prints the funded rows with a bar per amount
func renderAllocation(w io.Writer, result *services.AllocationResult) {
	table := result.Allocation

	switch result.Request.Mode {
	case allocator.ModeOptimal:
		fmt.Fprintf(w, "\nOptimal number of recipients: %d\n\n", table.Len())
	case allocator.ModeCustom:
		fmt.Fprintf(w, "\nShowing the top %d recipients\n\n", table.Len())
	default:
		fmt.Fprintf(w, "\nShowing %d recipients\n\n", table.Len())
	}

	var largest int64
	for _, row := range table.Rows {
		largest = max(largest, row.Amount)
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "RANK\t%s\tSHARE\tALLOCATION\t\n", strings.ToUpper(idHeader(table.IDColumn)))
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%.2f%%\t%s\t%s\n",
			row.Rank, row.ID, row.NormalizedScore*100, export.FormatRupiah(row.Amount), bar(row.Amount, largest))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nBudget:      %s\n", export.FormatRupiah(int64(table.Budget)))
	fmt.Fprintf(w, "Distributed: %s\n", export.FormatRupiah(table.Distributed))
	if table.RoundingDelta != 0 {
		fmt.Fprintf(w, "Rounding:    %+.0f\n", table.RoundingDelta)
	}
	fmt.Fprintf(w, "Run ID:      %s\n\n", result.RunID)
}

func bar(amount, largest int64) string {
	if largest <= 0 || amount <= 0 {
		return ""
	}
	return strings.Repeat("█", max(1, int(amount*barWidth/largest)))
}

func idHeader(idColumn string) string {
	if idColumn == "" {
		return "ID"
	}
	return idColumn
}
