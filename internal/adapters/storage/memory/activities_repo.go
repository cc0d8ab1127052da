package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"dog-walk-tracker/internal/domain/activities"
)

type activityRepo struct {
	mu   sync.RWMutex
	byID map[string]activities.Activity
}

func NewActivityRepo() activities.Repository {
	return &activityRepo{
		byID: make(map[string]activities.Activity),
	}
}

func (r *activityRepo) Create(ctx context.Context, a activities.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("activity id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("activity already exists")
	}

	r.byID[a.ID] = a
	return nil
}

func (r *activityRepo) ListRange(ctx context.Context, from, to time.Time) ([]activities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activities.Activity, 0)
	for _, a := range r.byID {
		if a.CreatedAt.Before(from) || a.CreatedAt.After(to) {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
