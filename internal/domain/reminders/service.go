package reminders

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-walk-tracker/internal/domain/household"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrDuplicateOpen = errors.New("an open reminder already exists for that kind and due date")
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

type CreateInput struct {
	Kind    Kind
	DueDate time.Time
	Notes   string

	// Opcional: permite registrar un recordatorio ya completado
	// (p.ej. "le di la pastilla hoy" sin crearlo antes).
	CompletedBy *household.Member
	CompletedAt *time.Time
}

// Create registra un recordatorio. Invariante: a lo sumo un recordatorio
// abierto por (kind, due_date). El chequeo vive acá, del lado del server,
// donde el store serializa los writes; el índice parcial único en Postgres
// es el respaldo a nivel de schema.
func (s *Service) Create(ctx context.Context, in CreateInput) (Reminder, error) {
	if err := validKind(in.Kind); err != nil {
		return Reminder{}, err
	}
	if in.DueDate.IsZero() {
		return Reminder{}, ErrInvalidInput
	}

	due := normalizeDate(in.DueDate)
	now := s.now()

	rem := Reminder{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Kind:      in.Kind,
		DueDate:   due,
		Notes:     strings.TrimSpace(in.Notes),
	}

	if in.CompletedBy != nil {
		m, err := household.Parse(string(*in.CompletedBy))
		if err != nil {
			return Reminder{}, ErrInvalidInput
		}
		at := now
		if in.CompletedAt != nil && !in.CompletedAt.IsZero() {
			at = *in.CompletedAt
		}
		rem.CompletedBy = &m
		rem.CompletedAt = &at
	}

	// Solo los abiertos compiten por el slot (kind, due_date).
	if rem.Open() {
		open := true
		existing, err := s.repo.List(ctx, ListFilter{
			Open:    &open,
			Kind:    in.Kind,
			DueDate: &due,
		})
		if err != nil {
			return Reminder{}, err
		}
		if len(existing) > 0 {
			return Reminder{}, ErrDuplicateOpen
		}
	}

	if err := s.repo.Create(ctx, rem); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

// Complete adjunta quién y cuándo. Re-completar sobreescribe.
func (s *Service) Complete(ctx context.Context, id string, by household.Member, at *time.Time) (Reminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Reminder{}, ErrInvalidInput
	}
	m, err := household.Parse(string(by))
	if err != nil {
		return Reminder{}, ErrInvalidInput
	}

	rem, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Reminder{}, ErrNotFound
	}

	when := s.now()
	if at != nil && !at.IsZero() {
		when = *at
	}

	rem.CompletedAt = &when
	rem.CompletedBy = &m

	if err := s.repo.Update(ctx, rem); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Reminder, error) {
	return s.repo.List(ctx, filter)
}

// ListCompletedRange devuelve los completados dentro de [from, to];
// lo consume el agregador de puntos.
func (s *Service) ListCompletedRange(ctx context.Context, from, to time.Time) ([]Reminder, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidInput
	}
	open := false
	return s.repo.List(ctx, ListFilter{
		Open:          &open,
		CompletedFrom: &from,
		CompletedTo:   &to,
	})
}

func validKind(k Kind) error {
	switch k {
	case KindMedication, KindGrooming, KindVet:
		return nil
	default:
		return ErrInvalidInput
	}
}

// normalizeDate trunca a medianoche UTC para que (kind, due_date)
// compare por día calendario y no por instante.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
