package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/sharedesk/internal/apperr"
	"github.com/guttosm/sharedesk/internal/domain/models"
	"github.com/guttosm/sharedesk/internal/logger"
	"github.com/guttosm/sharedesk/internal/storage"
)

const (
	DefaultSearchLimit = 5
	MaxSearchLimit     = 50
)

// CompanyAggregator joins a company with its child collections and derives
// the "latest" projections served by the share pages.
//
// All operations are read-only and stateless; every storage fault is returned
// as an *apperr.Error of kind StoreUnavailable.
type CompanyAggregator interface {
	GetDetail(ctx context.Context, identifier string) (*models.CompanyDetail, error)
	ListLatest(ctx context.Context) ([]models.CompanySummary, error)
	Search(ctx context.Context, query string, limit *int) ([]models.CompanySummary, error)
}

type companyAggregator struct {
	repo storage.CompanyRepository
}

func NewCompanyAggregator(repo storage.CompanyRepository) CompanyAggregator {
	return &companyAggregator{repo: repo}
}

// GetDetail resolves identifier (a company name or id) and returns the full
// detail read model. When the store yields several root rows the first one is
// canonical.
func (s *companyAggregator) GetDetail(ctx context.Context, identifier string) (*models.CompanyDetail, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperr.Invalid("company name is required")
	}

	roots, err := s.repo.FindCompanies(ctx, identifier)
	if err != nil {
		return nil, apperr.Unavailable("failed to load company", err)
	}
	if len(roots) == 0 {
		return nil, apperr.NotFoundf("company %q not found", identifier)
	}
	if len(roots) > 1 {
		logger.L().Warn().
			Str("identifier", identifier).
			Int("rows", len(roots)).
			Int64("canonical_id", roots[0].ID).
			Msg("ambiguous company identifier, using first row")
	}
	company := roots[0]

	var (
		prices       []models.PriceSnapshot
		holdings     []models.ShareholdingSnapshot
		members      []models.BoardMember
		subsidiaries []models.Subsidiary
		highlights   []models.Highlight
	)

	// Child collections are independent reads keyed by the same id.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		prices, err = s.repo.ListPrices(gctx, company.ID)
		return err
	})
	g.Go(func() (err error) {
		holdings, err = s.repo.ListShareholdings(gctx, company.ID)
		return err
	})
	g.Go(func() (err error) {
		members, err = s.repo.ListBoardMembers(gctx, company.ID)
		return err
	})
	g.Go(func() (err error) {
		subsidiaries, err = s.repo.ListSubsidiaries(gctx, company.ID)
		return err
	})
	g.Go(func() (err error) {
		highlights, err = s.repo.ListHighlights(gctx, company.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Unavailable("failed to load company details", err)
	}

	return buildDetail(company, prices, holdings, members, subsidiaries, highlights), nil
}

// ListLatest returns one summary per company that has at least one price
// snapshot, in store order.
func (s *companyAggregator) ListLatest(ctx context.Context) ([]models.CompanySummary, error) {
	rows, err := s.repo.ListCompaniesWithPrices(ctx)
	if err != nil {
		return nil, apperr.Unavailable("failed to list companies", err)
	}

	out := make([]models.CompanySummary, 0, len(rows))
	for _, row := range rows {
		latest := latestPriceFold(row.Prices)
		if latest == nil {
			continue
		}
		out = append(out, summarize(row.Company, latest))
	}
	return out, nil
}

// Search matches query against name or symbol. A nil limit means
// DefaultSearchLimit; an explicit limit must lie in [1, MaxSearchLimit].
func (s *companyAggregator) Search(ctx context.Context, query string, limit *int) ([]models.CompanySummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Invalid("search query is required")
	}
	n := DefaultSearchLimit
	if limit != nil {
		n = *limit
	}
	if n < 1 || n > MaxSearchLimit {
		return nil, apperr.Invalid("limit must be between 1 and 50")
	}

	rows, err := s.repo.SearchCompanies(ctx, query, n)
	if err != nil {
		return nil, apperr.Unavailable("failed to search companies", err)
	}

	out := make([]models.CompanySummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, summarize(row.Company, latestPriceFold(row.Prices)))
	}
	return out, nil
}
