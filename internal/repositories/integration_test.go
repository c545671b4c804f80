//go:build integration

package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/migrations"
)

// setupPostgres starts a PostgreSQL container, applies the migrations and
// returns a connection. Docker must be running.
func setupPostgres(t *testing.T) *db.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based DB tests in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("seriesdash_test"),
		postgres.WithUsername("seriesdash"),
		postgres.WithPassword("seriesdash"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	raw, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	defer raw.Close()
	applied, err := migrations.Run(ctx, raw, nil)
	require.NoError(t, err)
	require.Equal(t, 3, applied)

	g, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	database := db.Wrap(g)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestPostgres_SeriesAndRunSQL(t *testing.T) {
	database := setupPostgres(t)
	ctx := context.Background()

	seedRows(t, database,
		&models.SeriesRow{SheetName: "Series A", SPV: "SPV One", Class: "A", Investor: "Alice Holdings", SubscriptionAmount: models.Float(1000), MgmtFee: models.Float(20)},
		&models.SeriesRow{SheetName: "Series A", SPV: "SPV One", Class: "B", Investor: "Bob 100% Trust", SubscriptionAmount: models.Float(3000), MgmtFee: models.Float(60)},
		&models.SeriesRow{SheetName: "Series B", SPV: "SPV Two", Class: "A", Investor: "alice holdings", SubscriptionAmount: models.Float(500)},
		&models.SeriesRow{SheetName: "Detail", SPV: "SPV Two", Investor: "Carol", TableType: models.RecordTypeDetail},
	)

	repo := NewSeriesRepository(database)
	rows, err := repo.List(ctx, models.RowFilter{TableType: models.RecordTypeSummary, Investor: "ALICE"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Series A", rows[0].SheetName)
	assert.InDelta(t, 1000, *rows[0].SubscriptionAmount, 1e-9)

	rows, err = repo.List(ctx, models.RowFilter{TableType: models.RecordTypeSummary, Investor: "100%"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	spvs, err := repo.Distinct(ctx, "spv", models.RecordTypeSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"SPV One", "SPV Two"}, spvs)

	exec := NewRPCQueryExecutor(database)
	res, err := exec.Execute(ctx, "SELECT spv, SUM(subscription_amount) AS total FROM series_data WHERE table_type = 'tblSeries' GROUP BY spv ORDER BY spv;")
	require.NoError(t, err)
	assert.Equal(t, []string{"spv", "total"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "SPV One", res.Rows[0]["spv"])

	_, err = exec.Execute(ctx, "DELETE FROM series_data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only SELECT")

	_, err = exec.Execute(ctx, "SELECT 1; DROP TABLE series_data")
	require.Error(t, err)

	n, err := repo.Count(ctx, models.RowFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestPostgres_PreferencesAndRuns(t *testing.T) {
	database := setupPostgres(t)
	ctx := context.Background()

	prefs := NewPreferencesRepository(database)
	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, prefs.StartSession(ctx, "Ana@Example.com", now))
	require.NoError(t, prefs.SetLastSeries(ctx, "ana@example.com", "Series A"))

	p, err := prefs.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, p.SessionStart)
	assert.True(t, p.SessionStart.Equal(now))
	assert.Equal(t, "Series A", p.LastSeries)

	runs := NewAssistantRunRepository(database)
	run := &models.AssistantRun{ID: "run-1", UserEmail: "ana@example.com", Question: "q", Provider: "openai", Status: models.RunStatusPending}
	require.NoError(t, runs.Create(ctx, run))
	require.NoError(t, runs.SetSucceeded(ctx, "run-1", "SELECT 1", 1))

	got, err := runs.GetByID(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusSucceeded, got.Status)
	assert.Equal(t, 1, got.RowCount)
}
