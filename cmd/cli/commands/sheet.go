package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
)

// SheetCmd creates the sheet command
func SheetCmd(app *AppContext) *cobra.Command {
	var (
		flags      allocationFlags
		outPath    string
		publish    bool
		sheetRange string
	)

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Allocate from the Google Sheets range in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			if cfg.Sheet == nil {
				return fmt.Errorf("no sheet configured (set sheet.spreadsheetID and sheet.range)")
			}

			req, err := flags.buildRequest(app, cmd)
			if err != nil {
				return err
			}

			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			source := services.SheetSource{
				Reader:        client,
				SpreadsheetID: cfg.Sheet.SpreadsheetID,
				Range:         cfg.Sheet.Range,
			}
			if sheetRange != "" {
				source.Range = sheetRange
			}

			result, err := services.ComputeAllocation(app.Ctx, source, app.Logger, req)
			if err != nil {
				return err
			}

			renderAllocation(cmd.OutOrStdout(), result)

			if publish {
				if err := publishResult(app, cmd, client, result); err != nil {
					return err
				}
			}
			return saveResult(app, cmd, result, outPath)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVar(&sheetRange, "range", "", "Sheet range to read (overrides config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Save the allocation to a .xlsx, .csv or .json file")
	cmd.Flags().BoolVar(&publish, "publish", false, "Also publish the allocation to a new tab")

	return cmd
}
