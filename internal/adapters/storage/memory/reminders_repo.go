package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"dog-walk-tracker/internal/domain/reminders"
)

var ErrNotFound = errors.New("not found")

type reminderRepo struct {
	mu   sync.RWMutex
	byID map[string]reminders.Reminder
}

func NewReminderRepo() reminders.Repository {
	return &reminderRepo{
		byID: make(map[string]reminders.Reminder),
	}
}

func (r *reminderRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rem.ID == "" {
		return errors.New("reminder id required")
	}
	if _, exists := r.byID[rem.ID]; exists {
		return errors.New("reminder already exists")
	}

	r.byID[rem.ID] = rem
	return nil
}

func (r *reminderRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rem, ok := r.byID[id]
	if !ok {
		return reminders.Reminder{}, ErrNotFound
	}
	return rem, nil
}

func (r *reminderRepo) Update(ctx context.Context, rem reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rem.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rem.ID] = rem
	return nil
}

func (r *reminderRepo) List(ctx context.Context, filter reminders.ListFilter) ([]reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reminders.Reminder, 0)

	for _, rem := range r.byID {
		if filter.Open != nil && rem.Open() != *filter.Open {
			continue
		}
		if filter.Kind != "" && rem.Kind != filter.Kind {
			continue
		}
		if filter.DueDate != nil && !rem.DueDate.Equal(*filter.DueDate) {
			continue
		}
		if filter.CompletedFrom != nil {
			if rem.CompletedAt == nil || rem.CompletedAt.Before(*filter.CompletedFrom) {
				continue
			}
		}
		if filter.CompletedTo != nil {
			if rem.CompletedAt == nil || rem.CompletedAt.After(*filter.CompletedTo) {
				continue
			}
		}

		out = append(out, rem)
	}

	// Orden por due_date asc, los más urgentes primero
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
