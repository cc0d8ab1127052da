package activities

import (
	"context"
	"errors"
	"time"

	"dog-walk-tracker/internal/domain/household"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

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

type CreateInput struct {
	Kind       Kind
	LoggedBy   household.Member
	AssignedTo household.Member
	CreatedAt  *time.Time // opcional; default ahora
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Activity, error) {
	if in.Kind != KindToys && in.Kind != KindDinner {
		return Activity{}, ErrInvalidInput
	}
	if _, err := household.Parse(string(in.LoggedBy)); err != nil {
		return Activity{}, ErrInvalidInput
	}
	if _, err := household.Parse(string(in.AssignedTo)); err != nil {
		return Activity{}, ErrInvalidInput
	}

	at := s.now()
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		at = *in.CreatedAt
	}

	a := Activity{
		ID:         uuid.NewString(),
		CreatedAt:  at,
		Kind:       in.Kind,
		LoggedBy:   in.LoggedBy,
		AssignedTo: in.AssignedTo,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Activity{}, err
	}
	return a, nil
}

func (s *Service) ListRange(ctx context.Context, from, to time.Time) ([]Activity, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListRange(ctx, from, to)
}
