package services

import (
	"context"
	"time"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

type ReviewService struct {
	tasks   *repository.TaskRepository
	reviews *repository.ReviewRepository
}

func NewReviewService(tasks *repository.TaskRepository, reviews *repository.ReviewRepository) *ReviewService {
	return &ReviewService{tasks: tasks, reviews: reviews}
}

// Reviewable is the pure eligibility predicate: only the owner of a
// completed, assigned, not-yet-reviewed task may review it.
func Reviewable(task *model.Task, hasReview bool, callerID string) bool {
	return task != nil &&
		callerID != "" &&
		task.OwnerID == callerID &&
		task.Status == constants.TaskCompleted &&
		task.AssignedUserID != nil &&
		!hasReview
}

// Submit creates the task's single review. All eligibility failures collapse
// into ErrNotReviewable; clients re-derive the specific reason from task
// state if they need to display one.
func (s *ReviewService) Submit(ctx context.Context, callerID, taskID string, rating int, comment string) (*model.Review, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	hasReview, err := s.reviews.ExistsForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !Reviewable(task, hasReview, callerID) {
		return nil, apperrors.ErrNotReviewable
	}

	review := &model.Review{
		TaskID:     task.ID,
		ReviewerID: task.OwnerID,
		ReviewedID: *task.AssignedUserID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
