package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	var flags allocationFlags

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Allocate the candidates in a file and publish the result to Google Sheets",
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

			client, err := app.SheetsClient()
			if err != nil {
				return err
			}
			return publishResult(app, cmd, client, result)
		},
	}

	flags.register(cmd, true)

	return cmd
}

func publishResult(app *AppContext, cmd *cobra.Command, publisher services.SheetPublisher, result *services.AllocationResult) error {
	cfg, err := app.Config()
	if err != nil {
		return err
	}

	published, err := services.PublishAllocation(app.Ctx, publisher, cfg, app.Logger, result)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Published %d rows to tab %q in spreadsheet %s\n\n",
		published.Rows, published.SheetTitle, published.SpreadsheetID)
	return nil
}
