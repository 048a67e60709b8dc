package model

import (
	"time"

	"servicehub.com/servicehub/internal/constants"
)

type Subscription struct {
	ID        string                     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string                     `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	Plan      constants.SubscriptionPlan `gorm:"type:varchar(20);not null" json:"plan"`
	IsActive  bool                       `gorm:"not null;default:true" json:"is_active"`
	StartDate time.Time                  `json:"start_date"`
	EndDate   time.Time                  `json:"end_date"`
}

// ActiveAt reports whether the subscription grants provider privileges at
// the given instant.
func (s *Subscription) ActiveAt(now time.Time) bool {
	return s != nil && s.IsActive && s.EndDate.After(now)
}
