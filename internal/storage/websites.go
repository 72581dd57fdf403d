package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
	apperrors "github.com/rigorous-io/swit-backoffice/internal/core/errors"
)

// GetWebsite resolves a website by ID. Returns ErrInexistentWebsite when no
// row matches.
func (db *DB) GetWebsite(ctx context.Context, websiteID string) (*domain.Website, error) {
	wid := toUUID(websiteID)
	if !wid.Valid {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, websiteID)
	}

	row := db.Pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM websites
		WHERE id = $1
	`, wid)

	var (
		id                   pgtype.UUID
		name                 string
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&id, &name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInexistentWebsite
		}

		return nil, fmt.Errorf("get website: %w", err)
	}

	return &domain.Website{
		ID:        fromUUID(id),
		Name:      name,
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}, nil
}

// ListSellableArticleIDs returns the distinct IDs of the website's sellable
// articles. May be empty.
func (db *DB) ListSellableArticleIDs(ctx context.Context, websiteID string) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT id
		FROM articles
		WHERE website_id = $1
		  AND sellable
	`, toUUID(websiteID))
	if err != nil {
		return nil, fmt.Errorf("list sellable articles: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

// ListBlacklistedUserIDs returns the user IDs excluded from the website's
// analytics. May be empty.
func (db *DB) ListBlacklistedUserIDs(ctx context.Context, websiteID string) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT user_id
		FROM blacklist_rule_users
		WHERE website_id = $1
	`, toUUID(websiteID))
	if err != nil {
		return nil, fmt.Errorf("list blacklisted users: %w", err)
	}
	defer rows.Close()

	return scanUUIDs(rows)
}

func scanUUIDs(rows pgx.Rows) ([]string, error) {
	var ids []string

	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, fromUUID(id))
	}

	return ids, rows.Err()
}
