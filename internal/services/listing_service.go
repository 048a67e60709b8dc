package services

import (
	"context"
	"time"

	model "servicehub.com/servicehub/internal/models"
	repository "servicehub.com/servicehub/internal/repositories"
)

// ListingService builds the open-task listing pages. Read-only.
type ListingService struct {
	tasks *repository.TaskRepository
	now   func() time.Time
}

func NewListingService(tasks *repository.TaskRepository) *ListingService {
	return &ListingService{tasks: tasks, now: time.Now}
}

// List returns OPEN tasks matching the filter, in the filter's sort order,
// then floats tasks with at least one active-premium responder to the front.
// The float is a stable partition: relative order within each group is
// preserved.
func (s *ListingService) List(ctx context.Context, filter model.TaskFilter) ([]model.TaskListing, error) {
	tasks, err := s.tasks.ListOpen(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}

	counts, err := s.tasks.ResponseCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	premium, err := s.tasks.PremiumResponderTasks(ctx, ids, s.now())
	if err != nil {
		return nil, err
	}

	listings := make([]model.TaskListing, 0, len(tasks))
	for _, t := range tasks {
		listings = append(listings, model.TaskListing{
			Task:                t,
			ResponseCount:       counts[t.ID],
			HasPremiumResponder: premium[t.ID],
		})
	}

	return floatPremium(listings), nil
}

func floatPremium(listings []model.TaskListing) []model.TaskListing {
	promoted := make([]model.TaskListing, 0, len(listings))
	rest := make([]model.TaskListing, 0, len(listings))

	for _, l := range listings {
		if l.HasPremiumResponder {
			promoted = append(promoted, l)
		} else {
			rest = append(rest, l)
		}
	}

	return append(promoted, rest...)
}
