package model

import (
	"time"

	"servicehub.com/servicehub/internal/constants"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Phone        string         `gorm:"size:30" json:"phone"`
	Role         constants.Role `gorm:"type:varchar(20);not null;index" json:"role"`
	City         string         `gorm:"size:64" json:"city"`
	About        string         `json:"about"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Subscription *Subscription `gorm:"foreignKey:UserID;references:ID" json:"subscription,omitempty"`
}
