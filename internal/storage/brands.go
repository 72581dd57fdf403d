package db

import (
	"context"
	"fmt"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
)

// TopBrandsBySwits joins the given swits to their article's brand, groups by
// brand name and returns at most limit entries sorted by count descending.
// Inner joins drop swits with dangling article or brand references.
func (db *DB) TopBrandsBySwits(ctx context.Context, switIDs []string, limit int) ([]domain.BrandCount, error) {
	if len(switIDs) == 0 || limit <= 0 {
		return nil, nil
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT b.name, COUNT(*) AS cnt
		FROM swits s
		JOIN articles a ON a.id = s.article_id
		JOIN brands b ON b.id = a.brand_id
		WHERE s.id = ANY($1)
		GROUP BY b.name
		ORDER BY cnt DESC
		LIMIT $2
	`, toUUIDs(switIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("top brands by swits: %w", err)
	}
	defer rows.Close()

	var ranking []domain.BrandCount

	for rows.Next() {
		var entry domain.BrandCount
		if err := rows.Scan(&entry.Name, &entry.Count); err != nil {
			return nil, err
		}

		ranking = append(ranking, entry)
	}

	return ranking, rows.Err()
}
