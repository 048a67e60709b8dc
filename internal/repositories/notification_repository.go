package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "servicehub.com/servicehub/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead is scoped to the recipient so one user cannot touch another's
// notifications.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
