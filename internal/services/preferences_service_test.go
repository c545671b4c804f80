package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliyacapital/seriesdash/internal/errors"
)

func TestPreferencesService_SessionExpiry(t *testing.T) {
	repo := newMockPreferencesRepo()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := &preferencesService{repo: repo, maxAge: DefaultSessionMaxAge, now: func() time.Time { return now }}
	ctx := context.Background()
	email := "a@aliyacapitalpartners.com"

	assert.ErrorIs(t, svc.CheckSession(ctx, email), errors.ErrUnauthorized)

	require.NoError(t, svc.StartSession(ctx, email))
	assert.NoError(t, svc.CheckSession(ctx, email))

	now = now.Add(14*24*time.Hour - time.Minute)
	assert.NoError(t, svc.CheckSession(ctx, email))

	now = now.Add(2 * time.Minute)
	assert.ErrorIs(t, svc.CheckSession(ctx, email), errors.ErrSessionExpired)
	assert.Equal(t, []string{email}, repo.cleared)
	assert.ErrorIs(t, svc.CheckSession(ctx, email), errors.ErrUnauthorized)
}

func TestPreferencesService_RemembersSelections(t *testing.T) {
	repo := newMockPreferencesRepo()
	svc := NewPreferencesService(repo, 0)
	ctx := context.Background()

	require.NoError(t, svc.RememberInvestor(ctx, "a@x.com", "Acme"))
	require.NoError(t, svc.RememberSeries(ctx, "a@x.com", "Series 9"))
	p, err := svc.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.LastInvestor)
	assert.Equal(t, "Series 9", p.LastSeries)

	require.NoError(t, svc.StartSession(ctx, "a@x.com"))
	require.NoError(t, svc.EndSession(ctx, "a@x.com"))
	p, _ = svc.Get(ctx, "a@x.com")
	assert.Nil(t, p.SessionStart)
}
