package repositories

import (
	"context"
	"time"

	"github.com/aliyacapital/seriesdash/internal/models"
)

// SeriesRepository reads series_data rows.
type SeriesRepository interface {
	List(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error)
	Distinct(ctx context.Context, column string, tableType models.RecordType) ([]string, error)
	Count(ctx context.Context, filter models.RowFilter) (int64, error)
}

// QueryExecutor runs one read-only query and returns its columns and rows.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) (*models.QueryResult, error)
}

// PreferencesRepository persists per-user session and selection state.
type PreferencesRepository interface {
	Get(ctx context.Context, email string) (*models.UserPreferences, error)
	StartSession(ctx context.Context, email string, at time.Time) error
	ClearSession(ctx context.Context, email string) error
	SetLastInvestor(ctx context.Context, email, investor string) error
	SetLastSeries(ctx context.Context, email, series string) error
}

// AssistantRunRepository stores the history of assistant questions.
type AssistantRunRepository interface {
	Create(ctx context.Context, run *models.AssistantRun) error
	GetByID(ctx context.Context, id string) (*models.AssistantRun, error)
	List(ctx context.Context, email, status string, limit, offset int) ([]*models.AssistantRun, error)
	SetSucceeded(ctx context.Context, id, sql string, rowCount int) error
	SetFailed(ctx context.Context, id, status string, sql *string, reason string) error
}
