package db

import (
	"context"
	"fmt"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
)

// DistinctOwnSwitIDs returns the distinct swit IDs posted on the given
// articles by owners outside excludedOwnerIDs. No time bound is applied:
// the competing-brands ranking runs over all-time activity.
func (db *DB) DistinctOwnSwitIDs(ctx context.Context, articleIDs, excludedOwnerIDs []string) ([]string, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT id
		FROM swits
		WHERE article_id = ANY($1)
		  AND NOT (owner_id = ANY($2))
	`, toUUIDs(articleIDs), toUUIDs(excludedOwnerIDs))
	if err != nil {
		return nil, fmt.Errorf("distinct own swits: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

// SwitterSeries buckets qualifying swits by calendar day in the given
// timezone and counts distinct owners per day. Days without activity are
// absent from the result; entries are sorted ascending by date.
func (db *DB) SwitterSeries(ctx context.Context, articleIDs, excludedOwnerIDs []string, period domain.Period, timezone string) ([]domain.SeriesPoint, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE $5, 'YYYY-MM-DD') AS day,
		       COUNT(DISTINCT owner_id) AS switters
		FROM swits
		WHERE article_id = ANY($1)
		  AND NOT (owner_id = ANY($2))
		  AND created_at >= $3
		  AND created_at <= $4
		GROUP BY day
		ORDER BY day ASC
	`, toUUIDs(articleIDs), toUUIDs(excludedOwnerIDs), period.StartDate, period.EndDate, timezone)
	if err != nil {
		return nil, fmt.Errorf("switter series: %w", err)
	}
	defer rows.Close()

	var series []domain.SeriesPoint

	for rows.Next() {
		var point domain.SeriesPoint
		if err := rows.Scan(&point.Date, &point.Value); err != nil {
			return nil, err
		}

		series = append(series, point)
	}

	return series, rows.Err()
}
