// Package ports provides domain-centric interfaces for external dependencies.
// These interfaces keep the analytics engine independent of the storage
// backend, so the ranking and series logic can be tested against in-memory
// fakes.
package ports

import (
	"context"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
)

// WebsiteRepository resolves the scope a dashboard request runs against.
type WebsiteRepository interface {
	GetWebsite(ctx context.Context, websiteID string) (*domain.Website, error)
	ListSellableArticleIDs(ctx context.Context, websiteID string) ([]string, error)
	ListBlacklistedUserIDs(ctx context.Context, websiteID string) ([]string, error)
}

// SwitRepository exposes the distinct projections and the day-bucketed
// series over the swits collection.
type SwitRepository interface {
	// DistinctOwnSwitIDs returns the distinct swit IDs on the given articles
	// whose owners are not in excludedOwnerIDs. No time bound is applied.
	DistinctOwnSwitIDs(ctx context.Context, articleIDs, excludedOwnerIDs []string) ([]string, error)

	// SwitterSeries returns one entry per calendar day (in the given
	// timezone) that has at least one qualifying swit in the period, with
	// the distinct owner count for that day, sorted ascending by date.
	SwitterSeries(ctx context.Context, articleIDs, excludedOwnerIDs []string, period domain.Period, timezone string) ([]domain.SeriesPoint, error)
}

// VoteRepository exposes the two distinct projections of the vote_swits
// relation used by the co-vote expansion.
type VoteRepository interface {
	DistinctVoteIDsBySwits(ctx context.Context, switIDs []string) ([]string, error)
	DistinctSwitIDsByVotes(ctx context.Context, voteIDs []string) ([]string, error)
}

// BrandRepository aggregates swits into per-brand counts.
type BrandRepository interface {
	// TopBrandsBySwits joins the given swits to their article's brand,
	// groups by brand name, and returns at most limit entries sorted by
	// count descending. Swits with dangling article or brand references are
	// dropped.
	TopBrandsBySwits(ctx context.Context, switIDs []string, limit int) ([]domain.BrandCount, error)
}

// Store combines every repository the analytics engine consumes.
type Store interface {
	WebsiteRepository
	SwitRepository
	VoteRepository
	BrandRepository
}
