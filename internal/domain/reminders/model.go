package reminders

import (
	"time"

	"dog-walk-tracker/internal/domain/household"
)

// Kind define los tipos de recordatorio de cuidado.
// @Enum medication, grooming, vet
type Kind string

const (
	KindMedication Kind = "medication"
	KindGrooming   Kind = "grooming"
	KindVet        Kind = "vet"
)

// Reminder es una tarea de cuidado con fecha de vencimiento.
// Ciclo de vida: creado (abierto, CompletedAt nil) -> completado.
// Completar de nuevo sobreescribe quién/cuándo; no hay "des-completar".
type Reminder struct {
	ID        string
	CreatedAt time.Time

	Kind    Kind
	DueDate time.Time // solo fecha; la hora se normaliza a medianoche UTC

	CompletedAt *time.Time
	CompletedBy *household.Member

	Notes string
}

// Open indica si el recordatorio sigue pendiente.
func (r Reminder) Open() bool {
	return r.CompletedAt == nil
}
