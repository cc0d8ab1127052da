package activities

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Activity) error
	ListRange(ctx context.Context, from, to time.Time) ([]Activity, error)
}
