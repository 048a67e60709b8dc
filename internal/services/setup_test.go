package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"servicehub.com/servicehub/internal/constants"
	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

type testEnv struct {
	db            *gorm.DB
	users         *repository.UserRepository
	tasks         *repository.TaskRepository
	responses     *repository.ResponseRepository
	subscriptions *repository.SubscriptionRepository
	reviews       *repository.ReviewRepository
	notifications *NotificationService

	taskService     *TaskService
	responseService *ResponseService
	offerService    *OfferService
	reviewService   *ReviewService
	listingService  *ListingService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Task{},
		&model.Response{},
		&model.Review{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	responses := repository.NewResponseRepository(db)
	subscriptions := repository.NewSubscriptionRepository(db)
	reviews := repository.NewReviewRepository(db)
	notifications := NewNotificationService(repository.NewNotificationRepository(db))

	return &testEnv{
		db:              db,
		users:           users,
		tasks:           tasks,
		responses:       responses,
		subscriptions:   subscriptions,
		reviews:         reviews,
		notifications:   notifications,
		taskService:     NewTaskService(users, tasks, responses, notifications),
		responseService: NewResponseService(users, tasks, responses, notifications),
		offerService:    NewOfferService(tasks, responses, notifications),
		reviewService:   NewReviewService(tasks, reviews),
		listingService:  NewListingService(tasks),
	}
}

func (e *testEnv) createUser(t *testing.T, role constants.Role) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func (e *testEnv) giveSubscription(t *testing.T, userID string, plan constants.SubscriptionPlan, active bool) {
	t.Helper()

	end := time.Now().Add(30 * 24 * time.Hour)
	if !active {
		end = time.Now().Add(-time.Hour)
	}
	err := e.subscriptions.Upsert(context.Background(), &model.Subscription{
		UserID:    userID,
		Plan:      plan,
		IsActive:  true,
		StartDate: time.Now().Add(-time.Hour),
		EndDate:   end,
	})
	if err != nil {
		t.Fatalf("failed to create subscription: %v", err)
	}
}

func (e *testEnv) createOpenTask(t *testing.T, ownerID string) *model.Task {
	t.Helper()

	task := &model.Task{
		OwnerID:      ownerID,
		Title:        "Fix the sink",
		Description:  "Kitchen sink is leaking",
		Category:     "plumbing",
		BudgetType:   constants.BudgetFixed,
		BudgetAmount: 100,
		City:         "Almaty",
		Urgency:      constants.UrgencyNormal,
	}
	if err := e.tasks.Create(context.Background(), task); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}

func (e *testEnv) createPendingResponse(t *testing.T, taskID, providerID string) *model.Response {
	t.Helper()

	response := &model.Response{
		TaskID:     taskID,
		ProviderID: providerID,
		Message:    "I can do this",
		Price:      "90.00",
		CreatedAt:  time.Now(),
	}
	if err := e.responses.Create(context.Background(), response); err != nil {
		t.Fatalf("failed to create response: %v", err)
	}
	return response
}
