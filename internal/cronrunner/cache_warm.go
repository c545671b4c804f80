package cronrunner

import (
	"context"
	"fmt"

	"github.com/aliyacapital/seriesdash/internal/models"
)

// Refresher reloads rows for a filter, bypassing and repopulating the cache.
type Refresher interface {
	Refresh(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error)
}

// DefaultWarmFilters are the unfiltered views the dashboard opens with.
func DefaultWarmFilters() []models.RowFilter {
	var out []models.RowFilter
	for _, tt := range []models.RecordType{models.RecordTypeSummary, models.RecordTypeDetail} {
		for _, w := range []models.TimeWindow{models.WindowAll, models.WindowLastMonth, models.WindowLastYear} {
			out = append(out, models.RowFilter{TableType: tt, Window: w})
		}
	}
	return out
}

// CacheWarmJob refreshes each filter in turn, stopping at the first error.
func CacheWarmJob(svc Refresher, filters []models.RowFilter) func(context.Context) error {
	return func(ctx context.Context) error {
		for _, f := range filters {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := svc.Refresh(ctx, f); err != nil {
				return fmt.Errorf("failed to warm %s: %w", f.CacheKey(), err)
			}
		}
		return nil
	}
}
