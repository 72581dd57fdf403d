package analytics

import (
	"context"
	"fmt"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
)

// SwittersReport is the switters time-series payload returned to the
// dashboard. The field names are the compatibility surface with the
// frontend.
type SwittersReport struct {
	Dimension  string               `json:"dimension"`
	Metric     string               `json:"metric"`
	MetricUnit string               `json:"metricUnit"`
	Total      int                  `json:"total"`
	Dataset    []domain.SeriesPoint `json:"dataset"`
}

// Switters computes the daily distinct-switter series for the requested
// period. Days without any qualifying swit are absent from the dataset.
// Total is the sum of the daily values, so a switter active on several days
// is counted once per day, not once overall.
func (e *Engine) Switters(ctx context.Context, scope *Scope, period domain.Period, timezone string) (*SwittersReport, error) {
	dataset, err := e.store.SwitterSeries(ctx, scope.ArticleIDs, scope.BlacklistedUserIDs, period, timezone)
	if err != nil {
		return nil, fmt.Errorf("switter series: %w", err)
	}

	if dataset == nil {
		dataset = []domain.SeriesPoint{}
	}

	return &SwittersReport{
		Dimension:  "date",
		Metric:     "switters",
		MetricUnit: "switter",
		Total:      seriesTotal(dataset),
		Dataset:    dataset,
	}, nil
}

func seriesTotal(dataset []domain.SeriesPoint) int {
	total := 0
	for _, point := range dataset {
		total += point.Value
	}

	return total
}
