package services

import (
	"context"
	"time"

	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Notify records a notification for later delivery. Callers that treat
// notification as a side effect must not propagate this error into their
// main result.
func (s *NotificationService) Notify(ctx context.Context, recipientID, notifType, title, message, link string) error {
	return s.repo.Create(ctx, &model.Notification{
		RecipientID: recipientID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Link:        link,
		CreatedAt:   time.Now(),
	})
}

func (s *NotificationService) List(ctx context.Context, recipientID string) ([]model.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.repo.MarkRead(ctx, id, recipientID)
}
