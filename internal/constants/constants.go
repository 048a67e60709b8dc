package constants

type TaskStatus string

const (
	TaskOpen       TaskStatus = "OPEN"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "PENDING"
	ResponseAccepted ResponseStatus = "ACCEPTED"
	ResponseRejected ResponseStatus = "REJECTED"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

type SubscriptionPlan string

const (
	PlanBasic    SubscriptionPlan = "basic"
	PlanStandard SubscriptionPlan = "standard"
	PlanPremium  SubscriptionPlan = "premium"
)

type BudgetType string

const (
	BudgetFixed      BudgetType = "fixed"
	BudgetNegotiable BudgetType = "negotiable"
)

type Urgency string

const (
	UrgencyUrgent Urgency = "urgent"
	UrgencyNormal Urgency = "normal"
	UrgencyLow    Urgency = "low"
)

const (
	NotificationNewResponse      = "new_response"
	NotificationResponseAccepted = "response_accepted"
	NotificationTaskCompleted    = "task_completed"
)
