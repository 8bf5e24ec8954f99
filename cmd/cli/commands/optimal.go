package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
)

// OptimalCmd creates the optimal command
func OptimalCmd(app *AppContext) *cobra.Command {
	var flags allocationFlags

	cmd := &cobra.Command{
		Use:   "optimal <file>",
		Short: "Show the optimal number of recipients for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.buildRequest(app, cmd)
			if err != nil {
				return err
			}
			req.Mode = allocator.ModeOptimal

			result, err := services.ComputeAllocation(app.Ctx, services.FileSource{Path: args[0], Sheet: flags.sheet}, app.Logger, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nOptimal number of recipients: %d of %d\n\n",
				result.OptimalCount, result.Scored.Len())
			return nil
		},
	}

	flags.register(cmd, false)

	return cmd
}
