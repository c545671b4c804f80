package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/models"
)

// distinctColumns are the columns whose values may be listed.
var distinctColumns = map[string]bool{
	"investor":   true,
	"sheet_name": true,
	"fund":       true,
	"spv":        true,
	"class":      true,
	"rm":         true,
	"solicitor":  true,
	"broker":     true,
}

type seriesRepository struct {
	db  *db.DB
	now func() time.Time
}

// NewSeriesRepository creates a new series_data repository
func NewSeriesRepository(database *db.DB) SeriesRepository {
	return &seriesRepository{db: database, now: time.Now}
}

func (r *seriesRepository) scoped(ctx context.Context, filter models.RowFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.SeriesRow{})
	if filter.TableType != "" {
		q = q.Where("table_type = ?", filter.TableType)
	}
	if filter.Fund != "" {
		q = q.Where("fund = ?", filter.Fund)
	}
	if filter.SPV != "" {
		q = q.Where("spv = ?", filter.SPV)
	}
	if filter.Class != "" {
		q = q.Where("class = ?", filter.Class)
	}
	if filter.RM != "" {
		q = q.Where("rm = ?", filter.RM)
	}
	if filter.Solicitor != "" {
		q = q.Where("solicitor = ?", filter.Solicitor)
	}
	if filter.SheetName != "" {
		q = q.Where("sheet_name = ?", filter.SheetName)
	}
	if inv := strings.TrimSpace(filter.Investor); inv != "" {
		q = q.Where(`LOWER(investor) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(inv))+"%")
	}
	if since := filter.Window.Since(r.now()); since != nil {
		q = q.Where("inserted_at >= ?", *since)
	}
	return q
}

func (r *seriesRepository) List(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error) {
	var rows []*models.SeriesRow
	if err := r.scoped(ctx, filter).Order("inserted_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list series rows: %w", err)
	}
	return rows, nil
}

func (r *seriesRepository) Count(ctx context.Context, filter models.RowFilter) (int64, error) {
	var n int64
	if err := r.scoped(ctx, filter).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count series rows: %w", err)
	}
	return n, nil
}

// Distinct lists the trimmed, non-blank values of column, sorted.
func (r *seriesRepository) Distinct(ctx context.Context, column string, tableType models.RecordType) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("column %q cannot be listed", column)
	}
	query := "SELECT DISTINCT TRIM(" + column + ") AS v FROM series_data WHERE " + column + " IS NOT NULL AND TRIM(" + column + ") <> ''"
	args := []any{}
	if tableType != "" {
		query += " AND table_type = ?"
		args = append(args, tableType)
	}
	query += " ORDER BY v"

	var values []string
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&values).Error; err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}
	return values, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
