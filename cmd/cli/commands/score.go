package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
)

// ScoreCmd creates the score command
func ScoreCmd(app *AppContext) *cobra.Command {
	var flags allocationFlags

	cmd := &cobra.Command{
		Use:   "score <file>",
		Short: "Score and rank the candidates in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.buildRequest(app, cmd)
			if err != nil {
				return err
			}
			req.Mode = allocator.ModeAll

			result, err := services.ComputeAllocation(app.Ctx, services.FileSource{Path: args[0], Sheet: flags.sheet}, app.Logger, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			renderWeights(out, req.Criteria, result.Scored.NormalizedWeights)
			renderRanking(out, result.Scored)
			return nil
		},
	}

	flags.register(cmd, false)

	return cmd
}
