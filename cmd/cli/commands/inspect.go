package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/pkg/dataset"
)

// InspectCmd creates the inspect command
func InspectCmd(app *AppContext) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the columns of a candidate file and their detected types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := dataset.LoadFile(args[0], sheet)
			if err != nil {
				return err
			}

			app.Logger.Debug("Inspected candidate file", zap.String("path", args[0]), zap.Int("rows", table.Len()))
			renderInspection(cmd.OutOrStdout(), filepath.Base(args[0]), table)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from an .xlsx file (default first sheet)")

	return cmd
}
