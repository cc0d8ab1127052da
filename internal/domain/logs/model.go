package logs

import (
	"time"

	"dog-walk-tracker/internal/domain/household"
)

// Kind define los tipos de registro soportados.
// @Enum poop, pee
type Kind string

const (
	KindPoop Kind = "poop"
	KindPee  Kind = "pee"
)

// Log es una ocurrencia puntual (caca o pis) atribuida a un integrante.
// Es inmutable: editar un paseo se traduce en borrar e insertar logs,
// nunca en modificar uno existente.
type Log struct {
	ID        string
	CreatedAt time.Time

	Kind   Kind
	Member household.Member

	Notes string
}
