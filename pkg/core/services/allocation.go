package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/internal/config"
	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
	"github.com/jakechorley/scholarship-allocator/pkg/export"
)

// AllocationRequest holds the parameters of one allocation run
type AllocationRequest struct {
	IDColumn string
	Criteria []allocator.Criterion
	Budget   float64
	Mode     allocator.Mode

	// Recipients is the recipient count in custom mode. Zero means
	// config.DefaultCustomRecipients capped at the number of candidates
	Recipients int

	// OptimalThreshold overrides allocator.OptimalMassThreshold when non-zero
	OptimalThreshold float64
}

// AllocationResult is the output of a run
type AllocationResult struct {
	RunID        string
	GeneratedAt  time.Time
	Request      AllocationRequest
	Scored       *allocator.ScoredTable
	Allocation   *allocator.AllocationTable
	OptimalCount int
}

// RequestFromConfig builds a request from the loaded configuration
func RequestFromConfig(cfg *config.Config) (AllocationRequest, error) {
	criteria, err := cfg.AllocatorCriteria()
	if err != nil {
		return AllocationRequest{}, err
	}

	return AllocationRequest{
		IDColumn:         cfg.IDColumn,
		Criteria:         criteria,
		Budget:           cfg.Budget,
		Mode:             cfg.AllocationMode(),
		Recipients:       cfg.Recipients,
		OptimalThreshold: cfg.OptimalThreshold,
	}, nil
}

// ComputeAllocation loads the candidate table from source, scores and ranks it,
// resolves the recipient count for the requested mode and distributes the budget
func ComputeAllocation(ctx context.Context, source CandidateSource, logger *zap.Logger, req AllocationRequest) (*AllocationResult, error) {
	if !req.Mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown allocation mode %q", allocator.ErrInvalidConfiguration, req.Mode)
	}

	logger.Debug("Loading candidate table", zap.String("source", describeSource(source)))
	table, err := source.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	logger.Debug("Loaded candidate table", zap.Int("rows", table.Len()), zap.Strings("headers", table.Headers))

	names := make([]string, len(req.Criteria))
	for i, c := range req.Criteria {
		names[i] = c.Name
	}

	candidates, err := table.Candidates(req.IDColumn, names)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	scored, err := allocator.Score(candidates, req.Criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to score candidates: %w", err)
	}
	logger.Debug("Scored candidates",
		zap.Int("candidates", scored.Len()),
		zap.Any("normalized_weights", scored.NormalizedWeights))

	threshold := req.OptimalThreshold
	if threshold == 0 {
		threshold = allocator.OptimalMassThreshold
	}
	optimal := allocator.OptimalCountWithThreshold(scored, threshold)

	recipients, err := resolveRecipients(req, scored, optimal)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved recipient count",
		zap.String("mode", string(req.Mode)),
		zap.Int("recipients", recipients),
		zap.Int("optimal", optimal))

	allocation, err := allocator.Allocate(scored, req.Budget, recipients)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate budget: %w", err)
	}

	result := &AllocationResult{
		RunID:        uuid.New().String(),
		GeneratedAt:  time.Now(),
		Request:      req,
		Scored:       scored,
		Allocation:   allocation,
		OptimalCount: optimal,
	}

	logger.Info("Allocation computed",
		zap.String("run_id", result.RunID),
		zap.Int("recipients", allocation.Len()),
		zap.Float64("budget", allocation.Budget),
		zap.Int64("distributed", allocation.Distributed))

	return result, nil
}

// resolveRecipients applies the mode, using optimal for ModeOptimal
func resolveRecipients(req AllocationRequest, scored *allocator.ScoredTable, optimal int) (int, error) {
	switch req.Mode {
	case allocator.ModeOptimal:
		return optimal, nil
	case allocator.ModeCustom:
		if req.Recipients == 0 {
			return min(config.DefaultCustomRecipients, scored.Len()), nil
		}
		return req.Recipients, nil
	default:
		return allocator.ResolveRecipientCount(req.Mode, scored, req.Recipients)
	}
}

// Summary returns the JSON export record of the run
func (r *AllocationResult) Summary() export.Summary {
	return export.NewSummary(r.RunID, r.GeneratedAt, r.Request.Mode, r.Request.Criteria, r.Scored, r.Allocation)
}

// Save writes the result to path in the format implied by its extension
func (r *AllocationResult) Save(path string) error {
	return export.SaveFile(path, r.Summary(), r.Allocation)
}

func describeSource(source CandidateSource) string {
	if s, ok := source.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", source)
}
