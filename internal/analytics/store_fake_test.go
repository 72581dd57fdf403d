package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
	apperrors "github.com/rigorous-io/swit-backoffice/internal/core/errors"
)

// fakeStore is an in-memory ports.Store with the same query semantics as
// the SQL repository: distinct projections, inner-join brand counting, and
// timezone-aware day bucketing.
type fakeStore struct {
	websites  map[string]*domain.Website
	articles  map[string]domain.Article
	brands    map[string]string // brand ID -> name
	swits     []domain.Swit
	voteSwits []domain.VoteSwit
	blacklist map[string][]string // website ID -> user IDs
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		websites:  make(map[string]*domain.Website),
		articles:  make(map[string]domain.Article),
		brands:    make(map[string]string),
		blacklist: make(map[string][]string),
	}
}

func (f *fakeStore) GetWebsite(_ context.Context, websiteID string) (*domain.Website, error) {
	website, ok := f.websites[websiteID]
	if !ok {
		return nil, apperrors.ErrInexistentWebsite
	}

	return website, nil
}

func (f *fakeStore) ListSellableArticleIDs(_ context.Context, websiteID string) ([]string, error) {
	var ids []string

	for id, article := range f.articles {
		if article.WebsiteID == websiteID && article.Sellable {
			ids = append(ids, id)
		}
	}

	sort.Strings(ids)

	return ids, nil
}

func (f *fakeStore) ListBlacklistedUserIDs(_ context.Context, websiteID string) ([]string, error) {
	return f.blacklist[websiteID], nil
}

func (f *fakeStore) DistinctOwnSwitIDs(_ context.Context, articleIDs, excludedOwnerIDs []string) ([]string, error) {
	articles := toSet(articleIDs)
	excluded := toSet(excludedOwnerIDs)
	seen := make(map[string]struct{})

	var ids []string

	for _, swit := range f.swits {
		if _, ok := articles[swit.ArticleID]; !ok {
			continue
		}

		if _, ok := excluded[swit.OwnerID]; ok {
			continue
		}

		if _, ok := seen[swit.ID]; ok {
			continue
		}

		seen[swit.ID] = struct{}{}
		ids = append(ids, swit.ID)
	}

	return ids, nil
}

func (f *fakeStore) SwitterSeries(_ context.Context, articleIDs, excludedOwnerIDs []string, period domain.Period, timezone string) ([]domain.SeriesPoint, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	articles := toSet(articleIDs)
	excluded := toSet(excludedOwnerIDs)
	owners := make(map[string]map[string]struct{})

	for _, swit := range f.swits {
		if _, ok := articles[swit.ArticleID]; !ok {
			continue
		}

		if _, ok := excluded[swit.OwnerID]; ok {
			continue
		}

		if swit.CreatedAt.Before(period.StartDate) || swit.CreatedAt.After(period.EndDate) {
			continue
		}

		day := swit.CreatedAt.In(loc).Format("2006-01-02")
		if owners[day] == nil {
			owners[day] = make(map[string]struct{})
		}

		owners[day][swit.OwnerID] = struct{}{}
	}

	days := make([]string, 0, len(owners))
	for day := range owners {
		days = append(days, day)
	}

	sort.Strings(days)

	series := make([]domain.SeriesPoint, 0, len(days))
	for _, day := range days {
		series = append(series, domain.SeriesPoint{Date: day, Value: len(owners[day])})
	}

	return series, nil
}

func (f *fakeStore) DistinctVoteIDsBySwits(_ context.Context, switIDs []string) ([]string, error) {
	swits := toSet(switIDs)
	seen := make(map[string]struct{})

	var ids []string

	for _, vs := range f.voteSwits {
		if _, ok := swits[vs.SwitID]; !ok {
			continue
		}

		if _, ok := seen[vs.VoteID]; ok {
			continue
		}

		seen[vs.VoteID] = struct{}{}
		ids = append(ids, vs.VoteID)
	}

	return ids, nil
}

func (f *fakeStore) DistinctSwitIDsByVotes(_ context.Context, voteIDs []string) ([]string, error) {
	votes := toSet(voteIDs)
	seen := make(map[string]struct{})

	var ids []string

	for _, vs := range f.voteSwits {
		if _, ok := votes[vs.VoteID]; !ok {
			continue
		}

		if _, ok := seen[vs.SwitID]; ok {
			continue
		}

		seen[vs.SwitID] = struct{}{}
		ids = append(ids, vs.SwitID)
	}

	return ids, nil
}

func (f *fakeStore) TopBrandsBySwits(_ context.Context, switIDs []string, limit int) ([]domain.BrandCount, error) {
	switByID := make(map[string]domain.Swit, len(f.swits))
	for _, swit := range f.swits {
		switByID[swit.ID] = swit
	}

	counts := make(map[string]int)

	for _, id := range switIDs {
		swit, ok := switByID[id]
		if !ok {
			continue
		}

		article, ok := f.articles[swit.ArticleID]
		if !ok {
			continue
		}

		name, ok := f.brands[article.BrandID]
		if !ok {
			continue
		}

		counts[name]++
	}

	ranking := make([]domain.BrandCount, 0, len(counts))
	for name, count := range counts {
		ranking = append(ranking, domain.BrandCount{Name: name, Count: count})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}

		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking, nil
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// Builder helpers shared by the engine tests.

func (f *fakeStore) addWebsite(id string) {
	f.websites[id] = &domain.Website{ID: id, Name: "site-" + id}
}

func (f *fakeStore) addBrand(id, name string) {
	f.brands[id] = name
}

func (f *fakeStore) addArticle(id, websiteID, brandID string) {
	f.articles[id] = domain.Article{ID: id, WebsiteID: websiteID, BrandID: brandID, Sellable: true}
}

func (f *fakeStore) addSwit(id, ownerID, articleID string, createdAt time.Time) {
	f.swits = append(f.swits, domain.Swit{ID: id, OwnerID: ownerID, ArticleID: articleID, CreatedAt: createdAt})
}

func (f *fakeStore) addVote(voteID string, switIDs ...string) {
	for _, switID := range switIDs {
		f.voteSwits = append(f.voteSwits, domain.VoteSwit{
			ID:     voteID + ":" + switID,
			SwitID: switID,
			VoteID: voteID,
		})
	}
}
