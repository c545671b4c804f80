package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRepository_Lifecycle(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPreferencesRepository(database)
	ctx := context.Background()

	p, err := repo.Get(ctx, "  Analyst@AliyaCapitalPartners.com ")
	require.NoError(t, err)
	assert.Equal(t, "analyst@aliyacapitalpartners.com", p.Email)
	assert.Nil(t, p.SessionStart)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.StartSession(ctx, "analyst@aliyacapitalpartners.com", start))
	require.NoError(t, repo.SetLastInvestor(ctx, "ANALYST@aliyacapitalpartners.com", " Acme Holdings "))
	require.NoError(t, repo.SetLastSeries(ctx, "analyst@aliyacapitalpartners.com", "Series 7"))

	p, err = repo.Get(ctx, "analyst@aliyacapitalpartners.com")
	require.NoError(t, err)
	require.NotNil(t, p.SessionStart)
	assert.True(t, start.Equal(*p.SessionStart))
	assert.Equal(t, "Acme Holdings", p.LastInvestor)
	assert.Equal(t, "Series 7", p.LastSeries)

	require.NoError(t, repo.ClearSession(ctx, "analyst@aliyacapitalpartners.com"))
	p, err = repo.Get(ctx, "analyst@aliyacapitalpartners.com")
	require.NoError(t, err)
	assert.Nil(t, p.SessionStart)
	assert.Equal(t, "Acme Holdings", p.LastInvestor, "clearing the session keeps selections")
}
