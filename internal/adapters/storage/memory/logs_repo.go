package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"dog-walk-tracker/internal/domain/logs"
)

type logRepo struct {
	mu   sync.RWMutex
	byID map[string]logs.Log
}

func NewLogRepo() logs.Repository {
	return &logRepo{
		byID: make(map[string]logs.Log),
	}
}

func (r *logRepo) Insert(ctx context.Context, ls []logs.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(ls)
}

// Replace hace delete+insert bajo un solo lock: el equivalente en
// memoria de la transacción del adapter de Postgres.
func (r *logRepo) Replace(ctx context.Context, removeIDs []string, ls []logs.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range removeIDs {
		delete(r.byID, id)
	}
	return r.insertLocked(ls)
}

func (r *logRepo) Delete(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.byID, id)
	}
	return nil
}

func (r *logRepo) ListRange(ctx context.Context, from, to time.Time) ([]logs.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]logs.Log, 0)
	for _, l := range r.byID {
		if l.CreatedAt.Before(from) || l.CreatedAt.After(to) {
			continue
		}
		out = append(out, l)
	}

	// Orden por created_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *logRepo) insertLocked(ls []logs.Log) error {
	for _, l := range ls {
		if l.ID == "" {
			return errors.New("log id required")
		}
		if _, exists := r.byID[l.ID]; exists {
			return errors.New("log already exists")
		}
	}
	for _, l := range ls {
		r.byID[l.ID] = l
	}
	return nil
}
