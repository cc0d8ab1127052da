package postgres

import (
	"context"
	"database/sql"
	"time"

	"dog-walk-tracker/internal/domain/activities"
	"dog-walk-tracker/internal/domain/household"
)

// Tabla: activities(id uuid pk, created_at timestamptz, kind text,
// logged_by text, assigned_to text)
type ActivitiesRepo struct {
	db *sql.DB
}

func NewActivitiesRepo(db *sql.DB) *ActivitiesRepo {
	return &ActivitiesRepo{db: db}
}

func (r *ActivitiesRepo) Create(ctx context.Context, a activities.Activity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (id, created_at, kind, logged_by, assigned_to)
		VALUES ($1,$2,$3,$4,$5)
	`,
		a.ID,
		a.CreatedAt,
		string(a.Kind),
		string(a.LoggedBy),
		string(a.AssignedTo),
	)
	return err
}

func (r *ActivitiesRepo) ListRange(ctx context.Context, from, to time.Time) ([]activities.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, kind, logged_by, assigned_to
		FROM activities
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activities.Activity, 0)
	for rows.Next() {
		var a activities.Activity
		var kind, loggedBy, assignedTo string

		if err := rows.Scan(&a.ID, &a.CreatedAt, &kind, &loggedBy, &assignedTo); err != nil {
			return nil, err
		}

		a.Kind = activities.Kind(kind)
		a.LoggedBy = household.Member(loggedBy)
		a.AssignedTo = household.Member(assignedTo)

		out = append(out, a)
	}

	return out, rows.Err()
}
