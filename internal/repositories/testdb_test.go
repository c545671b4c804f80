package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/models"
)

var sqliteSchema = []string{
	`CREATE TABLE series_data (
		id TEXT PRIMARY KEY,
		sheet_name TEXT, table_type TEXT, spv TEXT, fund TEXT, class TEXT, broker TEXT, investor TEXT,
		side_letter TEXT, sl_notes TEXT, rm TEXT, percent_rm REAL, solicitor TEXT, percent_solicitor REAL,
		model TEXT, num_shares REAL, percent_ownership REAL, pps REAL, basis TEXT,
		subscription_amount REAL, spread REAL,
		percent_acq_fee REAL, acq_fee REAL, percent_broker_fee REAL, broker_fee REAL,
		percent_mgmt_fee REAL, net_for_mgmt_fee REAL, mgmt_fee REAL,
		percent_reserve_fee REAL, reserve_fee REAL, percent_spv_reserve REAL, spv_reserve REAL,
		loan_fee_percent REAL, loan_fee REAL, net_subscription REAL,
		inserted_at DATETIME
	)`,
	`CREATE TABLE user_preferences (
		email TEXT PRIMARY KEY,
		session_start DATETIME,
		last_investor TEXT NOT NULL DEFAULT '',
		last_series TEXT NOT NULL DEFAULT '',
		updated_at DATETIME
	)`,
	`CREATE TABLE assistant_runs (
		id TEXT PRIMARY KEY,
		user_email TEXT NOT NULL,
		question TEXT NOT NULL,
		provider TEXT NOT NULL,
		model TEXT,
		sql TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		error TEXT,
		row_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

// setupTestDB opens a private in-memory SQLite database with the app tables.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := g.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	for _, stmt := range sqliteSchema {
		require.NoError(t, g.Exec(stmt).Error)
	}
	return db.Wrap(g)
}

func seedRows(t *testing.T, database *db.DB, rows ...*models.SeriesRow) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range rows {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.InsertedAt.IsZero() {
			r.InsertedAt = base.Add(time.Duration(i) * time.Minute)
		}
		if r.TableType == "" {
			r.TableType = models.RecordTypeSummary
		}
		require.NoError(t, database.Create(r).Error)
	}
}
