package services

import (
	"context"
	"time"

	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/reports"
)

// ReportingService loads filtered series rows and builds the dashboard views
// from them.
type ReportingService interface {
	Rows(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error)
	Refresh(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error)
	Dashboard(ctx context.Context, filter models.RowFilter, opts reports.WaterfallOptions) (*models.Dashboard, error)
	SeriesSummary(ctx context.Context, filter models.RowFilter, sortKey string, desc bool) ([]models.SeriesSummaryRow, error)
	SeriesDetail(ctx context.Context, filter models.RowFilter, sheet string) (*models.SeriesDetail, error)
	InvestorDetail(ctx context.Context, filter models.RowFilter, investor string) (*models.InvestorDetail, error)
	ListSeries(ctx context.Context, tableType models.RecordType) ([]string, error)
	ListInvestors(ctx context.Context, tableType models.RecordType) ([]string, error)
}

// PreferencesService keeps per-user session and selection state.
type PreferencesService interface {
	Get(ctx context.Context, email string) (*models.UserPreferences, error)
	StartSession(ctx context.Context, email string) error
	EndSession(ctx context.Context, email string) error
	// CheckSession returns errors.ErrSessionExpired once the session is older
	// than the configured maximum age, clearing it.
	CheckSession(ctx context.Context, email string) error
	RememberInvestor(ctx context.Context, email, investor string) error
	RememberSeries(ctx context.Context, email, series string) error
}

// AssistantService answers natural-language questions with SQL results.
type AssistantService interface {
	Ask(ctx context.Context, email string, req *models.AssistantRequest) (*models.AssistantAnswer, error)
	History(ctx context.Context, email string, limit, offset int) ([]*models.AssistantRun, error)
}

// Completer turns a system prompt and a user message into model text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Provider() string
	Model() string
}

// Clock is swapped in tests.
type Clock func() time.Time
