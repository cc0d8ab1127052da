package activities

import (
	"time"

	"dog-walk-tracker/internal/domain/household"
)

// Kind define las tareas del hogar que suman puntos.
// @Enum toys, dinner
type Kind string

const (
	KindToys   Kind = "toys"
	KindDinner Kind = "dinner"
)

// Activity es una tarea completada. LoggedBy es quien la registró;
// AssignedTo es a quién se le acreditan los puntos.
type Activity struct {
	ID        string
	CreatedAt time.Time

	Kind       Kind
	LoggedBy   household.Member
	AssignedTo household.Member
}
