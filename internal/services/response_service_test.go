package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	model "servicehub.com/servicehub/internal/models"
)

func validInput(taskID string) SubmitResponseInput {
	return SubmitResponseInput{
		TaskID:  taskID,
		Message: "I can help",
		Price:   120.5,
	}
}

func TestSubmit_RequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.responseService.Submit(context.Background(), "", validInput("whatever"))
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSubmit_RequiresProviderRole(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)

	_, err := env.responseService.Submit(context.Background(), customer.ID, validInput("whatever"))
	if !errors.Is(err, apperrors.ErrProviderRequired) {
		t.Errorf("expected ErrProviderRequired, got %v", err)
	}
}

func TestSubmit_RequiresActiveSubscription(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createUser(t, constants.RoleProvider)

	_, err := env.responseService.Submit(context.Background(), provider.ID, validInput("whatever"))
	if !errors.Is(err, apperrors.ErrSubscriptionRequired) {
		t.Errorf("expected ErrSubscriptionRequired for missing subscription, got %v", err)
	}

	env.giveSubscription(t, provider.ID, constants.PlanBasic, false)
	_, err = env.responseService.Submit(context.Background(), provider.ID, validInput("whatever"))
	if !errors.Is(err, apperrors.ErrSubscriptionRequired) {
		t.Errorf("expected ErrSubscriptionRequired for expired subscription, got %v", err)
	}
}

func TestSubmit_BasicPlanDailyQuota(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	provider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, provider.ID, constants.PlanBasic, true)
	task := env.createOpenTask(t, customer.ID)

	// 15 responses already submitted since local midnight
	for i := 0; i < 15; i++ {
		other := env.createOpenTask(t, customer.ID)
		env.createPendingResponse(t, other.ID, provider.ID)
	}

	_, err := env.responseService.Submit(context.Background(), provider.ID, validInput(task.ID))
	if apperrors.StatusCode(err) != 403 || !apperrors.IsResponseLimitReached(err) {
		t.Fatalf("expected ResponseLimitReached, got %v", err)
	}

	details := apperrors.Details(err)
	if details["limit"] != 15 || details["used"] != 15 || details["period"] != "daily" {
		t.Errorf("unexpected quota details: %v", details)
	}
}

func TestSubmit_YesterdaysResponsesDoNotCount(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	provider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, provider.ID, constants.PlanBasic, true)
	task := env.createOpenTask(t, customer.ID)

	yesterday := time.Now().AddDate(0, 0, -1)
	for i := 0; i < 15; i++ {
		other := env.createOpenTask(t, customer.ID)
		response := &model.Response{
			TaskID:     other.ID,
			ProviderID: provider.ID,
			Message:    "old offer",
			Price:      "50.00",
			CreatedAt:  yesterday,
		}
		if err := env.responses.Create(context.Background(), response); err != nil {
			t.Fatalf("failed to seed response: %v", err)
		}
	}

	if _, err := env.responseService.Submit(context.Background(), provider.ID, validInput(task.ID)); err != nil {
		t.Errorf("yesterday's responses must not count against today's quota, got %v", err)
	}
}

func TestSubmit_PremiumNeverQuotaLimited(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	provider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, provider.ID, constants.PlanPremium, true)

	for i := 0; i < 60; i++ {
		other := env.createOpenTask(t, customer.ID)
		env.createPendingResponse(t, other.ID, provider.ID)
	}

	task := env.createOpenTask(t, customer.ID)
	if _, err := env.responseService.Submit(context.Background(), provider.ID, validInput(task.ID)); err != nil {
		t.Errorf("premium provider must never hit the quota, got %v", err)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, provider.ID, constants.PlanBasic, true)

	for _, input := range []SubmitResponseInput{
		{TaskID: "", Message: "hi", Price: 10},
		{TaskID: "t", Message: "", Price: 10},
		{TaskID: "t", Message: "hi", Price: 0},
	} {
		_, err := env.responseService.Submit(context.Background(), provider.ID, input)
		if !errors.Is(err, apperrors.ErrMissingFields) {
			t.Errorf("input %+v: expected ErrMissingFields, got %v", input, err)
		}
	}
}

func TestSubmit_TaskNotFound(t *testing.T) {
	env := newTestEnv(t)
	provider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, provider.ID, constants.PlanBasic, true)

	_, err := env.responseService.Submit(context.Background(), provider.ID, validInput("no-such-task"))
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestSubmit_TaskMustBeOpen(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	assignee := env.createUser(t, constants.RoleProvider)
	provider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, assignee.ID, constants.PlanBasic, true)
	env.giveSubscription(t, provider.ID, constants.PlanBasic, true)

	task := env.createOpenTask(t, customer.ID)
	env.createPendingResponse(t, task.ID, assignee.ID)
	if _, err := env.tasks.AcceptResponse(context.Background(), task.ID, assignee.ID); err != nil {
		t.Fatalf("failed to accept response: %v", err)
	}

	_, err := env.responseService.Submit(context.Background(), provider.ID, validInput(task.ID))
	if !errors.Is(err, apperrors.ErrTaskNotOpen) {
		t.Errorf("expected ErrTaskNotOpen for in-progress task, got %v", err)
	}
}

func TestSubmit_CreatesPendingResponseAndNotifiesOwner(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	provider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, provider.ID, constants.PlanStandard, true)
	task := env.createOpenTask(t, customer.ID)

	response, err := env.responseService.Submit(context.Background(), provider.ID, SubmitResponseInput{
		TaskID:        task.ID,
		Message:       "tomorrow morning",
		Price:         99.9,
		EstimatedTime: "2 hours",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if response.Status != constants.ResponsePending {
		t.Errorf("expected status PENDING, got %s", response.Status)
	}
	if response.Price != "99.90" {
		t.Errorf("expected normalized price 99.90, got %s", response.Price)
	}
	if response.EstimatedTime == nil || *response.EstimatedTime != "2 hours" {
		t.Error("estimated time was not stored")
	}

	notifications, err := env.notifications.List(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("failed to list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification for the owner, got %d", len(notifications))
	}
	if notifications[0].Type != constants.NotificationNewResponse {
		t.Errorf("expected type %s, got %s", constants.NotificationNewResponse, notifications[0].Type)
	}
	if notifications[0].IsRead {
		t.Error("new notification must be unread")
	}
}
