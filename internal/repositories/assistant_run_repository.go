package repositories

import (
	"context"
	"time"

	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/models"
)

type assistantRunRepository struct {
	db *db.DB
}

func NewAssistantRunRepository(database *db.DB) AssistantRunRepository {
	return &assistantRunRepository{db: database}
}

func (r *assistantRunRepository) Create(ctx context.Context, run *models.AssistantRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *assistantRunRepository) GetByID(ctx context.Context, id string) (*models.AssistantRun, error) {
	var run models.AssistantRun
	if err := r.db.WithContext(ctx).First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *assistantRunRepository) List(ctx context.Context, email, status string, limit, offset int) ([]*models.AssistantRun, error) {
	var list []*models.AssistantRun
	q := r.db.WithContext(ctx).Model(&models.AssistantRun{})
	if email != "" {
		q = q.Where("user_email = ?", email)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *assistantRunRepository) SetSucceeded(ctx context.Context, id, sql string, rowCount int) error {
	return r.db.WithContext(ctx).Model(&models.AssistantRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.RunStatusSucceeded,
			"sql":        sql,
			"row_count":  rowCount,
			"error":      nil,
			"updated_at": time.Now(),
		}).Error
}

func (r *assistantRunRepository) SetFailed(ctx context.Context, id, status string, sql *string, reason string) error {
	return r.db.WithContext(ctx).Model(&models.AssistantRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"sql":        sql,
			"error":      reason,
			"updated_at": time.Now(),
		}).Error
}
