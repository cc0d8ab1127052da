package logs

import (
	"context"
	"time"
)

type Repository interface {
	// Insert agrega los logs de un paseo nuevo (1 o 2, mismo timestamp).
	Insert(ctx context.Context, ls []Log) error

	// Replace borra removeIDs e inserta ls como una sola operación.
	// Es el camino de "editar paseo": nunca hay update in-place.
	Replace(ctx context.Context, removeIDs []string, ls []Log) error

	// Delete borra por ids (borrar un paseo completo).
	Delete(ctx context.Context, ids []string) error

	// ListRange devuelve los logs con created_at en [from, to].
	ListRange(ctx context.Context, from, to time.Time) ([]Log, error)
}
