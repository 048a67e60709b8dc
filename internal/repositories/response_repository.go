package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	model "servicehub.com/servicehub/internal/models"
)

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

func (r *ResponseRepository) Create(ctx context.Context, response *model.Response) error {
	if response.ID == "" {
		response.ID = uuid.NewString()
	}
	response.Status = constants.ResponsePending
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *ResponseRepository) FindByID(ctx context.Context, id string) (*model.Response, error) {
	var response model.Response
	err := r.db.WithContext(ctx).First(&response, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

func (r *ResponseRepository) ListByTask(ctx context.Context, taskID string) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&responses).Error
	return responses, err
}

// CountByProviderSince counts a provider's responses created at or after the
// given instant. Quota usage is derived from this, never from a stored
// counter, so multiple instances agree.
func (r *ResponseRepository) CountByProviderSince(ctx context.Context, providerID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Response{}).
		Where("provider_id = ? AND created_at >= ?", providerID, since).
		Count(&count).Error
	return count, err
}

// Reject marks a pending response rejected. The status guard makes a repeat
// reject fail instead of silently succeeding.
func (r *ResponseRepository) Reject(ctx context.Context, id string) (*model.Response, error) {
	res := r.db.WithContext(ctx).Model(&model.Response{}).
		Where("id = ? AND status = ?", id, constants.ResponsePending).
		Update("status", constants.ResponseRejected)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrResponseNotPending
	}

	return r.FindByID(ctx, id)
}
