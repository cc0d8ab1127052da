package reminders

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r Reminder) error
	GetByID(ctx context.Context, id string) (Reminder, error)
	Update(ctx context.Context, r Reminder) error
	List(ctx context.Context, filter ListFilter) ([]Reminder, error)
}

type ListFilter struct {
	// Open filtra por estado: true = solo pendientes, false = solo completados.
	Open *bool

	// Rango sobre completed_at (para el cómputo de puntos semanales).
	CompletedFrom *time.Time
	CompletedTo   *time.Time

	// Kind + DueDate juntos permiten el chequeo de duplicado abierto.
	Kind    Kind
	DueDate *time.Time
}
