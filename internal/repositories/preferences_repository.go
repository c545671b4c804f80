package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/models"
)

type preferencesRepository struct {
	db *db.DB
}

func NewPreferencesRepository(database *db.DB) PreferencesRepository {
	return &preferencesRepository{db: database}
}

// Get returns the stored preferences, or empty preferences for an unknown user.
func (r *preferencesRepository) Get(ctx context.Context, email string) (*models.UserPreferences, error) {
	email = normalizeEmail(email)
	var p models.UserPreferences
	err := r.db.WithContext(ctx).First(&p, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.UserPreferences{Email: email}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return &p, nil
}

func (r *preferencesRepository) upsert(ctx context.Context, email string, column string, value any) error {
	p := models.UserPreferences{Email: normalizeEmail(email), UpdatedAt: time.Now()}
	updates := map[string]any{column: value, "updated_at": p.UpdatedAt}
	switch column {
	case "session_start":
		if t, ok := value.(*time.Time); ok {
			p.SessionStart = t
		}
	case "last_investor":
		p.LastInvestor, _ = value.(string)
	case "last_series":
		p.LastSeries, _ = value.(string)
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&p).Error
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", column, err)
	}
	return nil
}

func (r *preferencesRepository) StartSession(ctx context.Context, email string, at time.Time) error {
	return r.upsert(ctx, email, "session_start", &at)
}

func (r *preferencesRepository) ClearSession(ctx context.Context, email string) error {
	return r.upsert(ctx, email, "session_start", (*time.Time)(nil))
}

func (r *preferencesRepository) SetLastInvestor(ctx context.Context, email, investor string) error {
	return r.upsert(ctx, email, "last_investor", strings.TrimSpace(investor))
}

func (r *preferencesRepository) SetLastSeries(ctx context.Context, email, series string) error {
	return r.upsert(ctx, email, "last_series", strings.TrimSpace(series))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
