package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliyacapital/seriesdash/internal/cache"
	apperrors "github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/reports"
)

func sampleRows() []*models.SeriesRow {
	return []*models.SeriesRow{
		{ID: "1", SheetName: "Series 1", SPV: "SPV-A", Class: "A", Investor: "Acme Holdings", RM: "Kim",
			SubscriptionAmount: models.Float(1000), NetSubscription: models.Float(950), MgmtFee: models.Float(50), PercentMgmtFee: models.Float(0.05)},
		{ID: "2", SheetName: "Series 1", SPV: "SPV-A", Class: "B", Investor: "Aliya Capital Partners", RM: "Lee",
			SubscriptionAmount: models.Float(500), NetSubscription: models.Float(500)},
		{ID: "3", SheetName: " series 2 ", SPV: "SPV-B", Class: "A", Investor: "acme fund", RM: "Kim",
			SubscriptionAmount: models.Float(200), NetSubscription: models.Float(180), PercentMgmtFee: models.Float(0.1), MgmtFee: models.Float(20)},
	}
}

func TestReportingService_RowsAreCached(t *testing.T) {
	repo := &mockSeriesRepo{rows: sampleRows()}
	svc := NewReportingService(repo, cache.NewMemoryStore(time.Minute, time.Minute), ReportingOptions{CacheTTL: time.Minute}, nil)
	ctx := context.Background()
	f := models.RowFilter{TableType: models.RecordTypeSummary}

	first, err := svc.Rows(ctx, f)
	require.NoError(t, err)
	second, err := svc.Rows(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Len(t, second, len(first))
	assert.Equal(t, 1000.0, *second[0].SubscriptionAmount)

	_, err = svc.Rows(ctx, models.RowFilter{TableType: models.RecordTypeSummary, Fund: "F1"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "different filter, different key")

	_, err = svc.Refresh(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.listCalls)
}

func TestReportingService_NoCache(t *testing.T) {
	repo := &mockSeriesRepo{rows: sampleRows()}
	svc := NewReportingService(repo, nil, ReportingOptions{}, nil)
	for i := 0; i < 2; i++ {
		_, err := svc.Rows(context.Background(), models.RowFilter{})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, repo.listCalls)
}

func TestReportingService_InvalidFilter(t *testing.T) {
	repo := &mockSeriesRepo{}
	svc := NewReportingService(repo, nil, ReportingOptions{}, nil)
	_, err := svc.Dashboard(context.Background(), models.RowFilter{Window: "lastWeek"}, reports.WaterfallOptions{})
	var ve *apperrors.ErrValidation
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "time_period", ve.Field)
	assert.Zero(t, repo.listCalls)
}

func TestReportingService_RepositoryErrorIsWrapped(t *testing.T) {
	repo := &mockSeriesRepo{err: errors.New("connection refused")}
	svc := NewReportingService(repo, nil, ReportingOptions{}, nil)
	_, err := svc.Rows(context.Background(), models.RowFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load series rows")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestReportingService_Dashboard(t *testing.T) {
	svc := NewReportingService(&mockSeriesRepo{rows: sampleRows()}, nil, ReportingOptions{}, nil)
	d, err := svc.Dashboard(context.Background(), models.RowFilter{}, reports.WaterfallOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, d.RowCount)
	require.NotEmpty(t, d.TopSPVs)
	assert.Equal(t, "SPV-A", d.TopSPVs[0].Label)
	assert.Equal(t, 1500.0, d.TopSPVs[0].Value)
	require.NotEmpty(t, d.Pareto)
	assert.InDelta(t, 100.0, d.Pareto[len(d.Pareto)-1].CumulativePct, 1e-9)
}

func TestReportingService_SeriesSummaryCountsHouseInvestment(t *testing.T) {
	svc := NewReportingService(&mockSeriesRepo{rows: sampleRows()}, nil, ReportingOptions{}, nil)
	summary, err := svc.SeriesSummary(context.Background(), models.RowFilter{}, "gross", true)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "Series 1", summary[0].SheetName)
	assert.Equal(t, 1500.0, summary[0].Gross)
	assert.Equal(t, 500.0, summary[0].HouseInvestment)

	_, err = svc.SeriesSummary(context.Background(), models.RowFilter{}, "no_such_column", false)
	assert.Error(t, err)
}

func TestReportingService_SeriesAndInvestorDetail(t *testing.T) {
	repo := &mockSeriesRepo{rows: sampleRows()}
	svc := NewReportingService(repo, nil, ReportingOptions{}, nil)
	ctx := context.Background()

	sd, err := svc.SeriesDetail(ctx, models.RowFilter{SheetName: "ignored"}, "SERIES 2")
	require.NoError(t, err)
	require.Len(t, sd.Rows, 1)
	assert.Equal(t, "3", sd.Rows[0].ID)
	assert.Equal(t, "", repo.filters[0].SheetName)

	none, err := svc.SeriesDetail(ctx, models.RowFilter{}, "missing")
	require.NoError(t, err)
	assert.NotNil(t, none.Rows)
	assert.Empty(t, none.Rows)

	inv, err := svc.InvestorDetail(ctx, models.RowFilter{Investor: "ignored"}, "acme")
	require.NoError(t, err)
	assert.Equal(t, 2, inv.RowCount)
	assert.Len(t, inv.Classes, 1)
	assert.Equal(t, "", repo.filters[len(repo.filters)-1].Investor)
}

func TestReportingService_Lists(t *testing.T) {
	repo := &mockSeriesRepo{distinct: map[string][]string{
		"sheet_name": {"Series 1", "Series 2"},
		"investor":   {"Acme", "Bolt"},
	}}
	svc := NewReportingService(repo, nil, ReportingOptions{}, nil)
	series, err := svc.ListSeries(context.Background(), models.RecordTypeSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Series 1", "Series 2"}, series)
	investors, err := svc.ListInvestors(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Bolt"}, investors)
}
