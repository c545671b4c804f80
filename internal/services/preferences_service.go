package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/repositories"
)

// DefaultSessionMaxAge is how long a login stays valid.
const DefaultSessionMaxAge = 14 * 24 * time.Hour

type preferencesService struct {
	repo   repositories.PreferencesRepository
	maxAge time.Duration
	now    Clock
}

func NewPreferencesService(repo repositories.PreferencesRepository, maxAge time.Duration) PreferencesService {
	if maxAge <= 0 {
		maxAge = DefaultSessionMaxAge
	}
	return &preferencesService{repo: repo, maxAge: maxAge, now: time.Now}
}

func (s *preferencesService) Get(ctx context.Context, email string) (*models.UserPreferences, error) {
	return s.repo.Get(ctx, email)
}

func (s *preferencesService) StartSession(ctx context.Context, email string) error {
	return s.repo.StartSession(ctx, email, s.now().UTC())
}

func (s *preferencesService) EndSession(ctx context.Context, email string) error {
	return s.repo.ClearSession(ctx, email)
}

func (s *preferencesService) CheckSession(ctx context.Context, email string) error {
	p, err := s.repo.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if p.SessionStart == nil {
		return errors.ErrUnauthorized
	}
	if s.now().Sub(*p.SessionStart) > s.maxAge {
		if err := s.repo.ClearSession(ctx, email); err != nil {
			return fmt.Errorf("failed to clear expired session: %w", err)
		}
		return errors.ErrSessionExpired
	}
	return nil
}

func (s *preferencesService) RememberInvestor(ctx context.Context, email, investor string) error {
	return s.repo.SetLastInvestor(ctx, email, investor)
}

func (s *preferencesService) RememberSeries(ctx context.Context, email, series string) error {
	return s.repo.SetLastSeries(ctx, email, series)
}
