package dto

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	City     string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Subcategory  string     `json:"subcategory"`
	BudgetType   string     `json:"budget_type"`
	BudgetAmount float64    `json:"budget_amount"`
	City         string     `json:"city"`
	Address      string     `json:"address"`
	Urgency      string     `json:"urgency"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

type SubmitResponseRequest struct {
	TaskID        string  `json:"task_id"`
	Message       string  `json:"message"`
	Price         float64 `json:"price"`
	EstimatedTime string  `json:"estimated_time,omitempty"`
}

type AcceptOfferRequest struct {
	ProviderID string `json:"provider_id"`
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type ActivateSubscriptionRequest struct {
	Plan string `json:"plan"`
}
