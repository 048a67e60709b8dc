package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "servicehub.com/servicehub/internal/errors"
	model "servicehub.com/servicehub/internal/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts the task's single review. The unique index on task_id
// backstops the reviewable check: a concurrent duplicate insert surfaces as
// ErrNotReviewable rather than a raw constraint error.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrNotReviewable
		}
		return err
	}
	return nil
}

func (r *ReviewRepository) ExistsForTask(ctx context.Context, taskID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("task_id = ?", taskID).
		Count(&count).Error
	return count > 0, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// the sqlite driver reports constraint failures as plain errors
	return err != nil && strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
