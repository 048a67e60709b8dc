package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	"servicehub.com/servicehub/internal/logging"
	model "servicehub.com/servicehub/internal/models"
	"servicehub.com/servicehub/internal/quota"
	repository "servicehub.com/servicehub/internal/repositories"
)

type SubmitResponseInput struct {
	TaskID        string
	Message       string
	Price         float64
	EstimatedTime string
}

type ResponseService struct {
	users         *repository.UserRepository
	tasks         *repository.TaskRepository
	responses     *repository.ResponseRepository
	notifications *NotificationService
	now           func() time.Time
}

func NewResponseService(
	users *repository.UserRepository,
	tasks *repository.TaskRepository,
	responses *repository.ResponseRepository,
	notifications *NotificationService,
) *ResponseService {
	return &ResponseService{
		users:         users,
		tasks:         tasks,
		responses:     responses,
		notifications: notifications,
		now:           time.Now,
	}
}

// Submit records a provider's offer against an open task. Eligibility is
// checked in a fixed order so each rejection reason is distinct: identity,
// role, subscription, quota, input, task existence, task state.
//
// The quota count-then-insert is not serialized; two submissions racing at
// the boundary can both pass. The limit is a soft one.
func (s *ResponseService) Submit(ctx context.Context, providerID string, input SubmitResponseInput) (*model.Response, error) {
	if providerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	provider, err := s.users.FindByID(ctx, providerID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if provider.Role != constants.RoleProvider {
		return nil, apperrors.ErrProviderRequired
	}

	now := s.now()
	if !provider.Subscription.ActiveAt(now) {
		return nil, apperrors.ErrSubscriptionRequired
	}

	policy := quota.Evaluate(provider.Subscription.Plan, now)
	if !policy.Unlimited {
		used, err := s.responses.CountByProviderSince(ctx, providerID, policy.PeriodStart)
		if err != nil {
			return nil, err
		}
		if used >= int64(policy.Limit) {
			return nil, apperrors.NewResponseLimitReached(policy.Limit, int(used), string(policy.PeriodKind))
		}
	}

	if input.TaskID == "" || input.Message == "" || input.Price <= 0 {
		return nil, apperrors.ErrMissingFields
	}

	task, err := s.tasks.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}
	if task.Status != constants.TaskOpen {
		return nil, apperrors.ErrTaskNotOpen
	}

	response := &model.Response{
		TaskID:     task.ID,
		ProviderID: providerID,
		Message:    input.Message,
		Price:      normalizePrice(input.Price),
		CreatedAt:  now,
	}
	if input.EstimatedTime != "" {
		response.EstimatedTime = &input.EstimatedTime
	}

	if err := s.responses.Create(ctx, response); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, task, provider, response)

	return response, nil
}

// notifyOwner is fire-and-forget: a failed notification never fails the
// submission that triggered it.
func (s *ResponseService) notifyOwner(ctx context.Context, task *model.Task, provider *model.User, response *model.Response) {
	err := s.notifications.Notify(ctx,
		task.OwnerID,
		constants.NotificationNewResponse,
		"New offer on your task",
		fmt.Sprintf("%s offered %s for \"%s\"", provider.Name, response.Price, task.Title),
		"/tasks/"+task.ID,
	)
	if err != nil {
		logging.Logger.WithError(err).
			WithField("task_id", task.ID).
			Warn("failed to create new-offer notification")
	}
}

func normalizePrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
