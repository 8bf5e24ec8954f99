package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/scholarship-allocator/internal/config"
	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
	"github.com/jakechorley/scholarship-allocator/pkg/core/services"
)

// allocationFlags are the per-run overrides shared by the allocating commands
type allocationFlags struct {
	idColumn   string
	criteria   []string
	budget     float64
	mode       string
	recipients int
	threshold  float64
	sheet      string
}

func (f *allocationFlags) register(cmd *cobra.Command, withAllocation bool) {
	cmd.Flags().StringVar(&f.idColumn, "id", "", "Identifier column (overrides config)")
	cmd.Flags().StringArrayVar(&f.criteria, "criterion", nil, "Criterion as name:weight:kind, e.g. GPA:4:Benefit (repeatable, replaces config criteria)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet to read from an .xlsx file (default first sheet)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "Score mass the optimal recipients must cover (default from config or 0.8)")
	if withAllocation {
		cmd.Flags().Float64Var(&f.budget, "budget", 0, "Total budget to distribute (overrides config)")
		cmd.Flags().StringVar(&f.mode, "mode", "", "Recipient mode: all, optimal or custom (overrides config)")
		cmd.Flags().IntVar(&f.recipients, "recipients", 0, "Number of recipients in custom mode")
	}
}

// buildRequest merges the config file with command flags. The config file is optional
// when --id and --criterion are given
func (f *allocationFlags) buildRequest(app *AppContext, cmd *cobra.Command) (services.AllocationRequest, error) {
	req, cfgErr := f.requestFromConfig(app)
	if cfgErr != nil && (f.idColumn == "" || len(f.criteria) == 0) {
		return services.AllocationRequest{}, cfgErr
	}

	if f.idColumn != "" {
		req.IDColumn = f.idColumn
	}
	if len(f.criteria) > 0 {
		criteria, err := parseCriteria(f.criteria)
		if err != nil {
			return services.AllocationRequest{}, err
		}
		req.Criteria = criteria
	}

	flags := cmd.Flags()
	if flags.Changed("budget") {
		req.Budget = f.budget
	}
	if flags.Changed("mode") {
		req.Mode = allocator.Mode(strings.ToLower(f.mode))
	}
	if flags.Changed("recipients") {
		if f.recipients < 1 {
			return services.AllocationRequest{}, fmt.Errorf("%w: --recipients must be at least 1, got %d",
				allocator.ErrInvalidArgument, f.recipients)
		}
		req.Recipients = f.recipients
		if !flags.Changed("mode") {
			req.Mode = allocator.ModeCustom
		}
	}
	if flags.Changed("threshold") {
		req.OptimalThreshold = f.threshold
	}

	if err := allocator.ValidateCriteria(req.Criteria); err != nil {
		return services.AllocationRequest{}, err
	}

	return req, nil
}

func (f *allocationFlags) requestFromConfig(app *AppContext) (services.AllocationRequest, error) {
	cfg, err := app.Config()
	if err != nil {
		defaults := config.Default()
		return services.AllocationRequest{
			Budget:           defaults.Budget,
			Mode:             defaults.AllocationMode(),
			OptimalThreshold: defaults.OptimalThreshold,
		}, err
	}
	return services.RequestFromConfig(cfg)
}

// parseCriteria parses name:weight:kind criterion flags; the kind defaults to Benefit
func parseCriteria(values []string) ([]allocator.Criterion, error) {
	criteria := make([]allocator.Criterion, 0, len(values))
	for _, value := range values {
		parts := strings.Split(value, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid criterion %q (expected name:weight[:kind])", value)
		}

		name := strings.TrimSpace(parts[0])
		weight, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid weight in criterion %q: %w", value, err)
		}
		if weight < allocator.MinWeight || weight > allocator.MaxWeight {
			return nil, fmt.Errorf("weight in criterion %q must be between %d and %d",
				value, allocator.MinWeight, allocator.MaxWeight)
		}

		kind := allocator.KindBenefit
		if len(parts) == 3 {
			kind, err = allocator.ParseKind(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid criterion %q: %w", value, err)
			}
		}

		criteria = append(criteria, allocator.Criterion{Name: name, Weight: weight, Kind: kind})
	}
	return criteria, nil
}
