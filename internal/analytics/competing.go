package analytics

import (
	"context"
	"fmt"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
	"github.com/rigorous-io/swit-backoffice/internal/platform/observability"
)

// BrandRanking is the competing-brands payload returned to the dashboard.
type BrandRanking struct {
	Ranking []domain.BrandCount `json:"ranking"`
}

// CompetingBrands ranks the brands whose swits share at least one vote with
// the website's own swits.
//
// The pipeline is a two-hop expansion over the vote_swits relation followed
// by self-exclusion and a per-brand count:
//
//	own swits -> votes touching them -> swits touching those votes
//	competing = related - own
//	rank brands of competing swits, count desc, top N
//
// The own-swit population is intentionally unbounded in time, unlike the
// switters series which applies the requested period. The product counts
// all-time activity here.
func (e *Engine) CompetingBrands(ctx context.Context, scope *Scope) (*BrandRanking, error) {
	ownSwitIDs, err := e.store.DistinctOwnSwitIDs(ctx, scope.ArticleIDs, scope.BlacklistedUserIDs)
	if err != nil {
		return nil, fmt.Errorf("own swits: %w", err)
	}

	observability.OwnSwitSetSize.Observe(float64(len(ownSwitIDs)))

	if len(ownSwitIDs) == 0 {
		return &BrandRanking{Ranking: []domain.BrandCount{}}, nil
	}

	voteIDs, err := e.store.DistinctVoteIDsBySwits(ctx, ownSwitIDs)
	if err != nil {
		return nil, fmt.Errorf("votes by own swits: %w", err)
	}

	relatedSwitIDs, err := e.store.DistinctSwitIDsByVotes(ctx, voteIDs)
	if err != nil {
		return nil, fmt.Errorf("swits by votes: %w", err)
	}

	competingSwitIDs := subtract(relatedSwitIDs, ownSwitIDs)

	observability.CompetingSwitSetSize.Observe(float64(len(competingSwitIDs)))

	e.logger.Debug().
		Str("website_id", scope.Website.ID).
		Int("own_swits", len(ownSwitIDs)).
		Int("votes", len(voteIDs)).
		Int("related_swits", len(relatedSwitIDs)).
		Int("competing_swits", len(competingSwitIDs)).
		Msg("competing-brands expansion")

	if len(competingSwitIDs) == 0 {
		return &BrandRanking{Ranking: []domain.BrandCount{}}, nil
	}

	ranking, err := e.store.TopBrandsBySwits(ctx, competingSwitIDs, e.rankingLimit)
	if err != nil {
		return nil, fmt.Errorf("brand ranking: %w", err)
	}

	if ranking == nil {
		ranking = []domain.BrandCount{}
	}

	return &BrandRanking{Ranking: ranking}, nil
}
