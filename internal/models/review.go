package model

import "time"

// Review is left by the task owner for the assigned provider, once per task.
type Review struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID     string    `gorm:"size:36;uniqueIndex;not null" json:"task_id"`
	ReviewerID string    `gorm:"size:36;not null;index" json:"reviewer_id"`
	ReviewedID string    `gorm:"size:36;not null;index" json:"reviewed_id"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
