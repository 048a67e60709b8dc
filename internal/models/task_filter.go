package model

import (
	"time"

	"servicehub.com/servicehub/internal/constants"
)

type TaskSort string

const (
	SortNewest     TaskSort = "newest"
	SortBudgetHigh TaskSort = "budget-high"
	SortBudgetLow  TaskSort = "budget-low"
)

// TaskFilter narrows the open-task listing. Zero values and nil pointers
// mean the filter is not applied. City and Query are substring matches.
type TaskFilter struct {
	Category  string
	City      string
	MinBudget *float64
	MaxBudget *float64
	Urgency   []constants.Urgency
	DateFrom  *time.Time
	DateTo    *time.Time
	Query     string
	Sort      TaskSort
}

// TaskListing is one row of the listing page: the task plus its response
// count and whether a premium provider has responded (used for promotion).
type TaskListing struct {
	Task
	ResponseCount       int64 `json:"response_count"`
	HasPremiumResponder bool  `json:"has_premium_responder"`
}
