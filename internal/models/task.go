package model

import (
	"time"

	"servicehub.com/servicehub/internal/constants"
)

type Task struct {
	ID             string               `gorm:"primaryKey;size:36" json:"id"`
	OwnerID        string               `gorm:"size:36;not null;index" json:"owner_id"`
	Title          string               `gorm:"not null" json:"title"`
	Description    string               `gorm:"not null" json:"description"`
	Category       string               `gorm:"size:64;index" json:"category"`
	Subcategory    string               `gorm:"size:64" json:"subcategory"`
	BudgetType     constants.BudgetType `gorm:"type:varchar(20);not null" json:"budget_type"`
	BudgetAmount   float64              `json:"budget_amount"`
	City           string               `gorm:"size:64" json:"city"`
	Address        string               `json:"address"`
	Urgency        constants.Urgency    `gorm:"type:varchar(10);not null;default:'normal'" json:"urgency"`
	DueDate        *time.Time           `json:"due_date,omitempty"`
	Status         constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	AssignedUserID *string              `gorm:"size:36" json:"assigned_user_id,omitempty"`
	Version        uint                 `gorm:"not null;default:1" json:"-"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
