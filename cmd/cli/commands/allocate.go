package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
)

// AllocateCmd creates the allocate command
func AllocateCmd(app *AppContext) *cobra.Command {
	var (
		flags   allocationFlags
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "allocate <file>",
		Short: "Rank the candidates in a file and distribute the budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.buildRequest(app, cmd)
			if err != nil {
				return err
			}

			result, err := services.ComputeAllocation(app.Ctx, services.FileSource{Path: args[0], Sheet: flags.sheet}, app.Logger, req)
			if err != nil {
				return err
			}

			renderAllocation(cmd.OutOrStdout(), result)
			return saveResult(app, cmd, result, outPath)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Save the allocation to a .xlsx, .csv or .json file")

	return cmd
}

func saveResult(app *AppContext, cmd *cobra.Command, result *services.AllocationResult, path string) error {
	if path == "" {
		return nil
	}

	if err := result.Save(path); err != nil {
		return err
	}

	app.Logger.Info("Allocation saved", zap.String("path", path), zap.String("run_id", result.RunID))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved to %s\n\n", path)
	return nil
}
