// Package analytics implements the backoffice dashboard computations: the
// daily switters time series and the competing-brands ranking.
//
// Every request runs the same strict pipeline: resolve the website scope
// (pre-check phase, where the fatal domain errors surface), then compute
// over a read-only snapshot of the store. Requests are stateless and
// independent of each other.
package analytics

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
	apperrors "github.com/rigorous-io/swit-backoffice/internal/core/errors"
	"github.com/rigorous-io/swit-backoffice/internal/core/ports"
)

// Engine computes dashboard analytics for a website.
type Engine struct {
	store        ports.Store
	logger       *zerolog.Logger
	rankingLimit int
}

// New creates an analytics engine. rankingLimit caps the competing-brands
// ranking; values below one fall back to the default of three entries.
func New(store ports.Store, logger *zerolog.Logger, rankingLimit int) *Engine {
	if rankingLimit < 1 {
		rankingLimit = defaultRankingLimit
	}

	return &Engine{
		store:        store,
		logger:       logger,
		rankingLimit: rankingLimit,
	}
}

const defaultRankingLimit = 3

// Scope is the resolved context a dashboard request runs against.
type Scope struct {
	Website            *domain.Website
	ArticleIDs         []string
	BlacklistedUserIDs []string
}

// ResolveScope resolves the website and its sellable articles, and loads the
// blacklist. Returns ErrInexistentWebsite or ErrNoArticlesToSell before any
// aggregation runs, so the pipeline never partially executes against an
// invalid scope.
func (e *Engine) ResolveScope(ctx context.Context, websiteID string) (*Scope, error) {
	website, err := e.store.GetWebsite(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	articleIDs, err := e.store.ListSellableArticleIDs(ctx, website.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve articles: %w", err)
	}

	if len(articleIDs) == 0 {
		return nil, apperrors.ErrNoArticlesToSell
	}

	blacklisted, err := e.store.ListBlacklistedUserIDs(ctx, website.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve blacklist: %w", err)
	}

	return &Scope{
		Website:            website,
		ArticleIDs:         articleIDs,
		BlacklistedUserIDs: blacklisted,
	}, nil
}
