package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "servicehub.com/servicehub/internal/models"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) FindByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).First(&sub, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// Upsert replaces a user's subscription, keeping the one-per-user shape.
func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *model.Subscription) error {
	existing, err := r.FindByUser(ctx, sub.UserID)
	if err != nil {
		return err
	}

	if existing == nil {
		if sub.ID == "" {
			sub.ID = uuid.NewString()
		}
		return r.db.WithContext(ctx).Create(sub).Error
	}

	sub.ID = existing.ID
	return r.db.WithContext(ctx).Save(sub).Error
}
