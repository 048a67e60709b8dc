package services

import (
	"context"
	"fmt"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	"servicehub.com/servicehub/internal/logging"
	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

// OfferService resolves offers on a task: the owner accepts exactly one,
// and may reject pending ones independently.
type OfferService struct {
	tasks         *repository.TaskRepository
	responses     *repository.ResponseRepository
	notifications *NotificationService
}

func NewOfferService(
	tasks *repository.TaskRepository,
	responses *repository.ResponseRepository,
	notifications *NotificationService,
) *OfferService {
	return &OfferService{
		tasks:         tasks,
		responses:     responses,
		notifications: notifications,
	}
}

// Accept assigns providerID to the task and marks their pending response
// accepted. The status check here is a fast path; the repository's guarded
// update is what makes concurrent accepts safe, so a racing caller still
// ends up with ErrTaskNotOpen. Other pending responses are left untouched.
func (s *OfferService) Accept(ctx context.Context, callerID, taskID, providerID string) (*model.Task, error) {
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
	if task.Status != constants.TaskOpen {
		return nil, apperrors.ErrTaskNotOpen
	}

	updated, err := s.tasks.AcceptResponse(ctx, taskID, providerID)
	if err != nil {
		return nil, err
	}

	if err := s.notifications.Notify(ctx,
		providerID,
		constants.NotificationResponseAccepted,
		"Your offer was accepted",
		fmt.Sprintf("Your offer on \"%s\" was accepted", updated.Title),
		"/tasks/"+updated.ID,
	); err != nil {
		logging.Logger.WithError(err).
			WithField("task_id", updated.ID).
			Warn("failed to create offer-accepted notification")
	}

	return updated, nil
}

// Reject marks a pending response rejected without touching the task.
func (s *OfferService) Reject(ctx context.Context, callerID, responseID string) (*model.Response, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	response, err := s.responses.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, response.TaskID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}
	if response.Status != constants.ResponsePending {
		return nil, apperrors.ErrResponseNotPending
	}

	return s.responses.Reject(ctx, responseID)
}
