package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliyacapital/seriesdash/internal/models"
)

func TestAssistantRunRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAssistantRunRepository(database)
	ctx := context.Background()

	ok := &models.AssistantRun{ID: uuid.NewString(), UserEmail: "a@x.com", Question: "top investors", Provider: "openai", Status: models.RunStatusPending}
	bad := &models.AssistantRun{ID: uuid.NewString(), UserEmail: "a@x.com", Question: "drop it", Provider: "openai", Status: models.RunStatusPending, CreatedAt: time.Now().Add(time.Minute)}
	other := &models.AssistantRun{ID: uuid.NewString(), UserEmail: "b@x.com", Question: "classes", Provider: "gemini", Status: models.RunStatusPending}
	for _, r := range []*models.AssistantRun{ok, bad, other} {
		require.NoError(t, repo.Create(ctx, r))
	}

	require.NoError(t, repo.SetSucceeded(ctx, ok.ID, "SELECT investor FROM series_data", 12))
	sql := "DELETE FROM series_data"
	require.NoError(t, repo.SetFailed(ctx, bad.ID, models.RunStatusRejected, &sql, "model did not return a SELECT"))

	got, err := repo.GetByID(ctx, ok.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusSucceeded, got.Status)
	assert.Equal(t, 12, got.RowCount)
	require.NotNil(t, got.SQL)
	assert.Equal(t, "SELECT investor FROM series_data", *got.SQL)
	assert.Nil(t, got.Error)

	got, err = repo.GetByID(ctx, bad.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusRejected, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, "model did not return a SELECT", *got.Error)

	mine, err := repo.List(ctx, "a@x.com", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, bad.ID, mine[0].ID, "newest first")

	rejected, err := repo.List(ctx, "", models.RunStatusRejected, 0, 0)
	require.NoError(t, err)
	assert.Len(t, rejected, 1)

	_, err = repo.GetByID(ctx, "missing")
	assert.Error(t, err)
}
