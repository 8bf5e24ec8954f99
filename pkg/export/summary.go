package export

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jakechorley/scholarship-allocator/pkg/core/allocator"
)

// Summary is the JSON record of one allocation run
type Summary struct {
	RunID         string          `json:"run_id"`
	GeneratedAt   string          `json:"generated_at"`
	IDColumn      string          `json:"id_column"`
	Mode          string          `json:"mode"`
	Candidates    int             `json:"candidates"`
	Recipients    int             `json:"recipients"`
	Budget        float64         `json:"budget"`
	Distributed   int64           `json:"distributed"`
	RoundingDelta float64         `json:"rounding_delta"`
	Weights       []WeightRecord  `json:"weights"`
	Awards        []AwardRecord   `json:"awards"`
	Ranking       []RankingRecord `json:"ranking"`
}

// WeightRecord describes one criterion of the run
type WeightRecord struct {
	Criterion        string  `json:"criterion"`
	Kind             string  `json:"kind"`
	Weight           int     `json:"weight"`
	NormalizedWeight float64 `json:"normalized_weight"`
}

// AwardRecord is one funded candidate
type AwardRecord struct {
	Rank            int     `json:"rank"`
	ID              string  `json:"id"`
	RawScore        float64 `json:"raw_score"`
	NormalizedScore float64 `json:"normalized_score"`
	Amount          int64   `json:"amount"`
}

// RankingRecord is one candidate of the full ranking
type RankingRecord struct {
	Rank            int     `json:"rank"`
	ID              string  `json:"id"`
	RawScore        float64 `json:"raw_score"`
	NormalizedScore float64 `json:"normalized_score"`
}

// NewSummary builds the run summary from the pipeline outputs
func NewSummary(
	runID string,
	generatedAt time.Time,
	mode allocator.Mode,
	criteria []allocator.Criterion,
	scored *allocator.ScoredTable,
	table *allocator.AllocationTable,
) Summary {
	summary := Summary{
		RunID:         runID,
		GeneratedAt:   generatedAt.Format(time.RFC3339),
		IDColumn:      table.IDColumn,
		Mode:          string(mode),
		Candidates:    scored.Len(),
		Recipients:    table.Len(),
		Budget:        table.Budget,
		Distributed:   table.Distributed,
		RoundingDelta: table.RoundingDelta,
		Weights:       make([]WeightRecord, 0, len(criteria)),
		Awards:        make([]AwardRecord, 0, table.Len()),
		Ranking:       make([]RankingRecord, 0, scored.Len()),
	}

	for _, c := range criteria {
		summary.Weights = append(summary.Weights, WeightRecord{
			Criterion:        c.Name,
			Kind:             string(c.Kind),
			Weight:           c.Weight,
			NormalizedWeight: scored.NormalizedWeights[c.Name],
		})
	}

	for _, row := range table.Rows {
		summary.Awards = append(summary.Awards, AwardRecord{
			Rank:            row.Rank,
			ID:              row.ID,
			RawScore:        row.RawScore,
			NormalizedScore: row.NormalizedScore,
			Amount:          row.Amount,
		})
	}

	for _, row := range scored.Rows {
		summary.Ranking = append(summary.Ranking, RankingRecord{
			Rank:            row.Rank,
			ID:              row.ID,
			RawScore:        row.RawScore,
			NormalizedScore: row.NormalizedScore,
		})
	}

	return summary
}

// WriteSummaryJSON writes the summary as indented JSON
func WriteSummaryJSON(w io.Writer, summary Summary) error {
	data, err := sonic.ConfigStd.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode summary: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write summary: %w", err)
	}
	return nil
}
