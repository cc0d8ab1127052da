package logs

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-walk-tracker/internal/domain/household"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyWalk    = errors.New("a walk needs at least one of poop or pee")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type WalkInput struct {
	Member    household.Member
	CreatedAt *time.Time // opcional; default ahora
	Poop      bool
	Pee       bool
	Notes     string
}

// CreateWalk inserta un log por cada tipo marcado, compartiendo timestamp.
// El "paseo" como entidad no se persiste: se reconstruye agrupando logs.
func (s *Service) CreateWalk(ctx context.Context, in WalkInput) ([]Log, error) {
	ls, err := s.buildWalkLogs(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, ls); err != nil {
		return nil, err
	}
	return ls, nil
}

// UpdateWalk reemplaza los logs de un paseo: borra los ids viejos e
// inserta logs frescos con los atributos nuevos.
func (s *Service) UpdateWalk(ctx context.Context, logIDs []string, in WalkInput) ([]Log, error) {
	ids, err := cleanIDs(logIDs)
	if err != nil {
		return nil, err
	}
	ls, err := s.buildWalkLogs(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Replace(ctx, ids, ls); err != nil {
		return nil, err
	}
	return ls, nil
}

func (s *Service) DeleteWalk(ctx context.Context, logIDs []string) error {
	ids, err := cleanIDs(logIDs)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, ids)
}

func (s *Service) ListRange(ctx context.Context, from, to time.Time) ([]Log, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListRange(ctx, from, to)
}

func (s *Service) buildWalkLogs(in WalkInput) ([]Log, error) {
	if _, err := household.Parse(string(in.Member)); err != nil {
		return nil, ErrInvalidInput
	}
	if !in.Poop && !in.Pee {
		return nil, ErrEmptyWalk
	}

	at := s.now()
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		at = *in.CreatedAt
	}

	kinds := make([]Kind, 0, 2)
	if in.Poop {
		kinds = append(kinds, KindPoop)
	}
	if in.Pee {
		kinds = append(kinds, KindPee)
	}

	ls := make([]Log, 0, len(kinds))
	for _, k := range kinds {
		ls = append(ls, Log{
			ID:        uuid.NewString(),
			CreatedAt: at,
			Kind:      k,
			Member:    in.Member,
			Notes:     strings.TrimSpace(in.Notes),
		})
	}
	return ls, nil
}

func cleanIDs(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, raw := range in {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, ErrInvalidInput
	}
	return out, nil
}
