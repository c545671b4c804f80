package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/cache"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/reports"
	"github.com/aliyacapital/seriesdash/internal/repositories"
)

type reportingService struct {
	repo       repositories.SeriesRepository
	cache      cache.Store
	ttl        time.Duration
	houseNames []string
	log        *zap.Logger
}

// ReportingOptions tunes the reporting service.
type ReportingOptions struct {
	CacheTTL time.Duration
	// HouseNames are the investor names counted as the firm's own capital.
	HouseNames []string
}

// NewReportingService creates a new reporting service. A nil store disables
// row caching.
func NewReportingService(repo repositories.SeriesRepository, store cache.Store, opts ReportingOptions, log *zap.Logger) ReportingService {
	if log == nil {
		log = zap.NewNop()
	}
	house := opts.HouseNames
	if len(house) == 0 {
		house = reports.DefaultHouseNames
	}
	return &reportingService{repo: repo, cache: store, ttl: opts.CacheTTL, houseNames: house, log: log}
}

// Rows returns the rows matching filter, from cache when possible.
func (s *reportingService) Rows(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	key := filter.CacheKey()
	var rows []*models.SeriesRow
	found, err := cache.GetJSON(ctx, s.cache, key, &rows)
	if err != nil {
		s.log.Warn("row cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		return rows, nil
	}
	return s.load(ctx, filter)
}

// Refresh reloads the rows for filter from the database and replaces the
// cached copy.
func (s *reportingService) Refresh(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.load(ctx, filter)
}

func (s *reportingService) load(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load series rows: %w", err)
	}
	if rows == nil {
		rows = []*models.SeriesRow{}
	}
	if err := cache.SetJSON(ctx, s.cache, filter.CacheKey(), rows, s.ttl); err != nil {
		s.log.Warn("row cache write failed", zap.String("key", filter.CacheKey()), zap.Error(err))
	}
	return rows, nil
}

func (s *reportingService) Dashboard(ctx context.Context, filter models.RowFilter, opts reports.WaterfallOptions) (*models.Dashboard, error) {
	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}
	return reports.BuildDashboard(rows, filter, opts), nil
}

func (s *reportingService) SeriesSummary(ctx context.Context, filter models.RowFilter, sortKey string, desc bool) ([]models.SeriesSummaryRow, error) {
	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}
	summary := reports.SeriesSummary(rows, s.houseNames)
	if sortKey != "" {
		if err := reports.SortSeriesSummary(summary, sortKey, desc); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

// SeriesDetail returns the rows of one series. The sheet filter is applied
// in memory so matching ignores case and surrounding spaces.
func (s *reportingService) SeriesDetail(ctx context.Context, filter models.RowFilter, sheet string) (*models.SeriesDetail, error) {
	filter.SheetName = ""
	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}
	matched := reports.MatchSeries(rows, sheet)
	if matched == nil {
		matched = []*models.SeriesRow{}
	}
	return &models.SeriesDetail{SheetName: sheet, Rows: matched}, nil
}

func (s *reportingService) InvestorDetail(ctx context.Context, filter models.RowFilter, investor string) (*models.InvestorDetail, error) {
	filter.Investor = ""
	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}
	detail := reports.InvestorBreakdown(rows, investor)
	return &detail, nil
}

func (s *reportingService) ListSeries(ctx context.Context, tableType models.RecordType) ([]string, error) {
	values, err := s.repo.Distinct(ctx, "sheet_name", tableType)
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}
	return values, nil
}

func (s *reportingService) ListInvestors(ctx context.Context, tableType models.RecordType) ([]string, error) {
	values, err := s.repo.Distinct(ctx, "investor", tableType)
	if err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return values, nil
}
