package services

import (
	"context"
	"fmt"
	"time"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	"servicehub.com/servicehub/internal/logging"
	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

type CreateTaskInput struct {
	Title        string
	Description  string
	Category     string
	Subcategory  string
	BudgetType   constants.BudgetType
	BudgetAmount float64
	City         string
	Address      string
	Urgency      constants.Urgency
	DueDate      *time.Time
}

type TaskService struct {
	users         *repository.UserRepository
	tasks         *repository.TaskRepository
	responses     *repository.ResponseRepository
	notifications *NotificationService
}

func NewTaskService(
	users *repository.UserRepository,
	tasks *repository.TaskRepository,
	responses *repository.ResponseRepository,
	notifications *NotificationService,
) *TaskService {
	return &TaskService{
		users:         users,
		tasks:         tasks,
		responses:     responses,
		notifications: notifications,
	}
}

func (s *TaskService) Create(ctx context.Context, ownerID string, input CreateTaskInput) (*model.Task, error) {
	if ownerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if owner.Role != constants.RoleCustomer {
		return nil, apperrors.ErrForbidden
	}

	if input.Title == "" || input.Description == "" || input.Category == "" {
		return nil, apperrors.ErrMissingFields
	}
	if input.BudgetType != constants.BudgetFixed && input.BudgetType != constants.BudgetNegotiable {
		return nil, apperrors.ErrMissingFields
	}
	if input.Urgency == "" {
		input.Urgency = constants.UrgencyNormal
	}

	task := &model.Task{
		OwnerID:      ownerID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Subcategory:  input.Subcategory,
		BudgetType:   input.BudgetType,
		BudgetAmount: input.BudgetAmount,
		City:         input.City,
		Address:      input.Address,
		Urgency:      input.Urgency,
		DueDate:      input.DueDate,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, []model.Response, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	responses, err := s.responses.ListByTask(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return task, responses, nil
}

// Complete moves the caller's in-progress task to completed, which unlocks
// review eligibility. The repository's status guard rejects anything not in
// progress, including a task that was never assigned.
func (s *TaskService) Complete(ctx context.Context, callerID, taskID string) (*model.Task, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}

	updated, err := s.tasks.Complete(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if updated.AssignedUserID != nil {
		if err := s.notifications.Notify(ctx,
			*updated.AssignedUserID,
			constants.NotificationTaskCompleted,
			"Task completed",
			fmt.Sprintf("\"%s\" was marked completed by its owner", updated.Title),
			"/tasks/"+updated.ID,
		); err != nil {
			logging.Logger.WithError(err).
				WithField("task_id", updated.ID).
				Warn("failed to create task-completed notification")
		}
	}

	return updated, nil
}
