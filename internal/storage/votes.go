package db

import (
	"context"
	"fmt"
)

// DistinctVoteIDsBySwits returns the distinct vote IDs attached to the given
// swits. First hop of the co-vote expansion.
func (db *DB) DistinctVoteIDsBySwits(ctx context.Context, switIDs []string) ([]string, error) {
	if len(switIDs) == 0 {
		return nil, nil
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT vote_id
		FROM vote_swits
		WHERE swit_id = ANY($1)
	`, toUUIDs(switIDs))
	if err != nil {
		return nil, fmt.Errorf("distinct votes by swits: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

// DistinctSwitIDsByVotes returns the distinct swit IDs attached to the given
// votes. Second hop; the result is a superset of the swits fed to the first
// hop, since every swit participates in its own votes.
func (db *DB) DistinctSwitIDsByVotes(ctx context.Context, voteIDs []string) ([]string, error) {
	if len(voteIDs) == 0 {
		return nil, nil
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT swit_id
		FROM vote_swits
		WHERE vote_id = ANY($1)
	`, toUUIDs(voteIDs))
	if err != nil {
		return nil, fmt.Errorf("distinct swits by votes: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows)
}
