package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/domain/reminders"
)

// Tabla: reminders(id uuid pk, created_at timestamptz, kind text,
// due_date date, completed_at timestamptz null, completed_by text null,
// notes text null).
//
// Respaldo del invariante "un abierto por (kind, due_date)" a nivel schema:
//   CREATE UNIQUE INDEX reminders_open_slot
//   ON reminders (kind, due_date) WHERE completed_at IS NULL;
type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	var completedBy any
	if rem.CompletedBy != nil {
		completedBy = string(*rem.CompletedBy)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, created_at, kind, due_date, completed_at, completed_by, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rem.ID,
		rem.CreatedAt,
		string(rem.Kind),
		rem.DueDate,
		rem.CompletedAt,
		completedBy,
		nullIfEmpty(rem.Notes),
	)
	return err
}

func (r *RemindersRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reminders.Reminder{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, kind, due_date, completed_at, completed_by, notes
		FROM reminders
		WHERE id = $1
	`, id)

	rem, err := scanReminder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return reminders.Reminder{}, ErrNotFound
		}
		return reminders.Reminder{}, err
	}
	return rem, nil
}

func (r *RemindersRepo) Update(ctx context.Context, rem reminders.Reminder) error {
	var completedBy any
	if rem.CompletedBy != nil {
		completedBy = string(*rem.CompletedBy)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE reminders
		SET completed_at = $2, completed_by = $3, notes = $4
		WHERE id = $1
	`,
		rem.ID,
		rem.CompletedAt,
		completedBy,
		nullIfEmpty(rem.Notes),
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) List(ctx context.Context, filter reminders.ListFilter) ([]reminders.Reminder, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, created_at, kind, due_date, completed_at, completed_by, notes
		FROM reminders
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.Open != nil {
		if *filter.Open {
			sb.WriteString(" AND completed_at IS NULL")
		} else {
			sb.WriteString(" AND completed_at IS NOT NULL")
		}
	}
	if filter.Kind != "" {
		sb.WriteString(fmt.Sprintf(" AND kind = $%d", argN))
		args = append(args, string(filter.Kind))
		argN++
	}
	if filter.DueDate != nil {
		sb.WriteString(fmt.Sprintf(" AND due_date = $%d", argN))
		args = append(args, *filter.DueDate)
		argN++
	}
	if filter.CompletedFrom != nil {
		sb.WriteString(fmt.Sprintf(" AND completed_at >= $%d", argN))
		args = append(args, *filter.CompletedFrom)
		argN++
	}
	if filter.CompletedTo != nil {
		sb.WriteString(fmt.Sprintf(" AND completed_at <= $%d", argN))
		args = append(args, *filter.CompletedTo)
		argN++
	}

	sb.WriteString(" ORDER BY due_date ASC, created_at ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}

	return out, rows.Err()
}

func scanReminder(scan func(dest ...any) error) (reminders.Reminder, error) {
	var rem reminders.Reminder
	var kind string
	var completedBy, notes sql.NullString

	if err := scan(
		&rem.ID,
		&rem.CreatedAt,
		&kind,
		&rem.DueDate,
		&rem.CompletedAt,
		&completedBy,
		&notes,
	); err != nil {
		return reminders.Reminder{}, err
	}

	rem.Kind = reminders.Kind(kind)
	rem.Notes = notes.String
	if completedBy.Valid {
		m := household.Member(completedBy.String)
		rem.CompletedBy = &m
	}

	return rem, nil
}
