package model

import (
	"time"

	"servicehub.com/servicehub/internal/constants"
)

// Response is a provider's offer against an open task. Price is kept as a
// normalized decimal string (two fraction digits) so it survives JSON
// round-trips without float drift.
type Response struct {
	ID            string                   `gorm:"primaryKey;size:36" json:"id"`
	TaskID        string                   `gorm:"size:36;not null;index" json:"task_id"`
	ProviderID    string                   `gorm:"size:36;not null;index" json:"provider_id"`
	Message       string                   `gorm:"not null" json:"message"`
	Price         string                   `gorm:"size:32;not null" json:"price"`
	EstimatedTime *string                  `gorm:"size:64" json:"estimated_time,omitempty"`
	Status        constants.ResponseStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
}
