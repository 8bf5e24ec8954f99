package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
)

const usageGuide = `How to use the allocator

 1. Prepare a .csv or .xlsx file with one text column identifying each candidate
    and numeric columns for every criterion. Convert categorical criteria to numbers
    on a scale first. Values must be greater than zero.
 2. Choose the criterion columns used for scoring.
 3. Give each criterion a weight from 1 to 5 (see the scale below). Weights are
    normalized so they sum to 1.
 4. Mark each criterion as Benefit (larger is better) or Cost (smaller is better).
 5. Set the total budget.
 6. Choose how many candidates are funded: all, the optimal number, or a custom number.
 7. Run "allocate" to see the result, or add --out to save it.
`

const methodGuide = `How the allocation is computed

 1. Candidates are scored with the Weighted Product Model using the weights and kinds given.
 2. Weights are divided by their total so they sum to 1.
 3. Each normalized weight is used as an exponent; Cost criteria use a negative exponent.
 4. The S score of a candidate is the product of its criterion values raised to those exponents.
 5. S scores are divided by their total to give V scores that sum to 1.
 6. Candidates are ranked by score, highest first.
 7. The optimal number of recipients is the largest top group whose V scores sum to at
    most 0.8 (at least one).
 8. The budget is shared among the funded candidates in proportion to their V scores,
    renormalized within that group, and rounded to whole currency units.
`

// GuideCmd creates the guide command
func GuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the usage guide and the weight scale",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printGuide(cmd.OutOrStdout())
		},
	}
}

func printGuide(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", usageGuide)

	fmt.Fprintln(w, "Weight scale")
	tw := newTabWriter(w)
	for weight := allocator.MinWeight; weight <= allocator.MaxWeight; weight++ {
		fmt.Fprintf(tw, "  %d\t%s\n", weight, allocator.WeightLabel(weight))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%s\n", methodGuide)
}
