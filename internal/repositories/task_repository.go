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

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.Status = constants.TaskOpen
	task.Version = 1
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// AcceptResponse assigns a provider to an open task and marks their pending
// response accepted, as one transaction. The task update carries a
// status = OPEN guard so two concurrent accepts cannot both succeed: the
// loser sees zero rows affected and gets ErrTaskNotOpen.
func (r *TaskRepository) AcceptResponse(ctx context.Context, taskID, providerID string) (*model.Task, error) {
	var accepted model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var response model.Response
		err := tx.First(&response,
			"task_id = ? AND provider_id = ? AND status = ?",
			taskID, providerID, constants.ResponsePending,
		).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrResponseNotFound
			}
			return err
		}

		res := tx.Model(&model.Task{}).
			Where("id = ? AND status = ?", taskID, constants.TaskOpen).
			Updates(map[string]interface{}{
				"status":           constants.TaskInProgress,
				"assigned_user_id": providerID,
				"version":          gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTaskNotOpen
		}

		res = tx.Model(&model.Response{}).
			Where("id = ? AND status = ?", response.ID, constants.ResponsePending).
			Update("status", constants.ResponseAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrResponseNotFound
		}

		return tx.First(&accepted, "id = ?", taskID).Error
	})
	if err != nil {
		return nil, err
	}

	return &accepted, nil
}

// Complete moves an in-progress task to completed. The guard doubles as the
// state check: zero rows affected means the task was not in progress.
func (r *TaskRepository) Complete(ctx context.Context, taskID string) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ?", taskID, constants.TaskInProgress).
		Updates(map[string]interface{}{
			"status":  constants.TaskCompleted,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotInProgress
	}

	return r.FindByID(ctx, taskID)
}

// ListOpen returns OPEN tasks matching the filter, ordered by its sort key.
func (r *TaskRepository) ListOpen(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("status = ?", constants.TaskOpen)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Where("city LIKE ?", "%"+filter.City+"%")
	}
	if filter.MinBudget != nil {
		query = query.Where("budget_amount >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		query = query.Where("budget_amount <= ?", *filter.MaxBudget)
	}
	if len(filter.Urgency) > 0 {
		query = query.Where("urgency IN ?", filter.Urgency)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	switch filter.Sort {
	case model.SortBudgetHigh:
		query = query.Order("budget_amount DESC, created_at DESC")
	case model.SortBudgetLow:
		query = query.Order("budget_amount ASC, created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ResponseCounts returns the number of responses per task for the given ids.
func (r *TaskRepository) ResponseCounts(ctx context.Context, taskIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return counts, nil
	}

	type row struct {
		TaskID string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Response{}).
		Select("task_id, COUNT(*) as n").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.TaskID] = rw.N
	}
	return counts, nil
}

// PremiumResponderTasks returns the subset of the given task ids that have
// at least one response from a provider holding an active premium
// subscription.
func (r *TaskRepository) PremiumResponderTasks(ctx context.Context, taskIDs []string, now time.Time) (map[string]bool, error) {
	premium := make(map[string]bool, len(taskIDs))
	if len(taskIDs) == 0 {
		return premium, nil
	}

	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Response{}).
		Distinct("responses.task_id").
		Joins("JOIN subscriptions ON subscriptions.user_id = responses.provider_id").
		Where("responses.task_id IN ?", taskIDs).
		Where("subscriptions.plan = ? AND subscriptions.is_active = ? AND subscriptions.end_date > ?",
			constants.PlanPremium, true, now).
		Pluck("responses.task_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		premium[id] = true
	}
	return premium, nil
}
