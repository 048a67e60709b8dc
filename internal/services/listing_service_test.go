package services

import (
	"context"
	"testing"
	"time"

	"servicehub.com/servicehub/internal/constants"
	model "servicehub.com/servicehub/internal/models"
)

func (e *testEnv) createTaskAt(t *testing.T, ownerID, title string, budgetType constants.BudgetType, amount float64, createdAt time.Time) *model.Task {
	t.Helper()

	task := &model.Task{
		OwnerID:      ownerID,
		Title:        title,
		Description:  "description of " + title,
		Category:     "misc",
		BudgetType:   budgetType,
		BudgetAmount: amount,
		City:         "Almaty",
		Urgency:      constants.UrgencyNormal,
		CreatedAt:    createdAt,
	}
	if err := e.tasks.Create(context.Background(), task); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}

func titles(listings []model.TaskListing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.Title
	}
	return out
}

func TestList_OnlyOpenTasks(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	provider := env.createUser(t, constants.RoleProvider)
	open := env.createOpenTask(t, customer.ID)
	assigned := env.createOpenTask(t, customer.ID)
	env.createPendingResponse(t, assigned.ID, provider.ID)
	if _, err := env.offerService.Accept(context.Background(), customer.ID, assigned.ID, provider.ID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	listings, err := env.listingService.List(context.Background(), model.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(listings) != 1 || listings[0].ID != open.ID {
		t.Errorf("expected only the open task, got %v", titles(listings))
	}
}

func TestList_BudgetHighSort(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	now := time.Now()
	env.createTaskAt(t, customer.ID, "cheap", constants.BudgetFixed, 100, now.Add(-3*time.Minute))
	env.createTaskAt(t, customer.ID, "negotiable", constants.BudgetNegotiable, 0, now.Add(-2*time.Minute))
	env.createTaskAt(t, customer.ID, "expensive", constants.BudgetFixed, 500, now.Add(-time.Minute))

	listings, err := env.listingService.List(context.Background(), model.TaskFilter{Sort: model.SortBudgetHigh})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listings) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(listings))
	}

	posOf := func(title string) int {
		for i, l := range listings {
			if l.Title == title {
				return i
			}
		}
		t.Fatalf("task %q missing from listing %v", title, titles(listings))
		return -1
	}
	if posOf("expensive") > posOf("cheap") {
		t.Errorf("budget-high must order 500 before 100, got %v", titles(listings))
	}
}

func TestList_PremiumResponderFloatsToFront(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	premiumProvider := env.createUser(t, constants.RoleProvider)
	plainProvider := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, premiumProvider.ID, constants.PlanPremium, true)
	env.giveSubscription(t, plainProvider.ID, constants.PlanBasic, true)

	now := time.Now()
	t1 := env.createTaskAt(t, customer.ID, "T1", constants.BudgetFixed, 100, now.Add(-3*time.Minute))
	t2 := env.createTaskAt(t, customer.ID, "T2", constants.BudgetFixed, 100, now.Add(-2*time.Minute))
	t3 := env.createTaskAt(t, customer.ID, "T3", constants.BudgetFixed, 100, now.Add(-time.Minute))

	env.createPendingResponse(t, t2.ID, premiumProvider.ID)
	env.createPendingResponse(t, t1.ID, plainProvider.ID)
	env.createPendingResponse(t, t3.ID, plainProvider.ID)

	listings, err := env.listingService.List(context.Background(), model.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	got := titles(listings)
	want := []string{"T2", "T3", "T1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	if !listings[0].HasPremiumResponder {
		t.Error("floated task must be flagged as having a premium responder")
	}
	if listings[0].ResponseCount != 1 {
		t.Errorf("expected response count 1, got %d", listings[0].ResponseCount)
	}
}

func TestList_ExpiredPremiumDoesNotFloat(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	expired := env.createUser(t, constants.RoleProvider)
	env.giveSubscription(t, expired.ID, constants.PlanPremium, false)

	now := time.Now()
	env.createTaskAt(t, customer.ID, "first", constants.BudgetFixed, 100, now.Add(-2*time.Minute))
	withExpired := env.createTaskAt(t, customer.ID, "second", constants.BudgetFixed, 100, now.Add(-3*time.Minute))
	env.createPendingResponse(t, withExpired.ID, expired.ID)

	listings, err := env.listingService.List(context.Background(), model.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if listings[0].Title != "first" {
		t.Errorf("expired premium subscription must not promote, got %v", titles(listings))
	}
}

func TestList_Filters(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createUser(t, constants.RoleCustomer)
	now := time.Now()

	almaty := env.createTaskAt(t, customer.ID, "in Almaty", constants.BudgetFixed, 300, now.Add(-time.Minute))
	env.createTaskAt(t, customer.ID, "in Astana", constants.BudgetFixed, 50, now.Add(-2*time.Minute))
	env.db.Model(&model.Task{}).Where("title = ?", "in Astana").Update("city", "Astana")

	listings, err := env.listingService.List(context.Background(), model.TaskFilter{City: "Alma"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != almaty.ID {
		t.Errorf("city substring filter failed, got %v", titles(listings))
	}

	minBudget := 100.0
	listings, err = env.listingService.List(context.Background(), model.TaskFilter{MinBudget: &minBudget})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != almaty.ID {
		t.Errorf("min budget filter failed, got %v", titles(listings))
	}

	listings, err = env.listingService.List(context.Background(), model.TaskFilter{Query: "Astana"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listings) != 1 || listings[0].Title != "in Astana" {
		t.Errorf("full-text filter failed, got %v", titles(listings))
	}
}
