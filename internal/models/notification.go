package model

import "time"

type Notification struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	RecipientID string    `gorm:"size:36;not null;index" json:"recipient_id"`
	Type        string    `gorm:"size:40;not null" json:"type"`
	Title       string    `gorm:"not null" json:"title"`
	Message     string    `gorm:"not null" json:"message"`
	Link        string    `json:"link"`
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
