package services

import (
	"context"
	"time"

	"servicehub.com/servicehub/internal/constants"
	apperrors "servicehub.com/servicehub/internal/errors"
	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

type SubscriptionService struct {
	users         *repository.UserRepository
	subscriptions *repository.SubscriptionRepository
	now           func() time.Time
}

func NewSubscriptionService(
	users *repository.UserRepository,
	subscriptions *repository.SubscriptionRepository,
) *SubscriptionService {
	return &SubscriptionService{
		users:         users,
		subscriptions: subscriptions,
		now:           time.Now,
	}
}

// Activate gives a provider a 30-day subscription on the given plan,
// replacing any existing one.
func (s *SubscriptionService) Activate(ctx context.Context, callerID string, plan constants.SubscriptionPlan) (*model.Subscription, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user.Role != constants.RoleProvider {
		return nil, apperrors.ErrProviderRequired
	}

	switch plan {
	case constants.PlanBasic, constants.PlanStandard, constants.PlanPremium:
	default:
		return nil, apperrors.ErrMissingFields
	}

	now := s.now()
	sub := &model.Subscription{
		UserID:    callerID,
		Plan:      plan,
		IsActive:  true,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 30),
	}

	if err := s.subscriptions.Upsert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
