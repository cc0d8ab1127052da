package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"dog-walk-tracker/internal/domain/household"
	"dog-walk-tracker/internal/domain/logs"
)

// Tabla: logs(id uuid pk, created_at timestamptz, kind text, member text, notes text)
type LogsRepo struct {
	db *sql.DB
}

func NewLogsRepo(db *sql.DB) *LogsRepo {
	return &LogsRepo{db: db}
}

func (r *LogsRepo) Insert(ctx context.Context, ls []logs.Log) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertLogs(ctx, tx, ls); err != nil {
		return err
	}
	return tx.Commit()
}

// Replace ejecuta delete+insert en una transacción: un lector nunca
// ve un paseo a medio reemplazar.
func (r *LogsRepo) Replace(ctx context.Context, removeIDs []string, ls []logs.Log) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteLogs(ctx, tx, removeIDs); err != nil {
		return err
	}
	if err := insertLogs(ctx, tx, ls); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *LogsRepo) Delete(ctx context.Context, ids []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteLogs(ctx, tx, ids); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *LogsRepo) ListRange(ctx context.Context, from, to time.Time) ([]logs.Log, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, kind, member, notes
		FROM logs
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]logs.Log, 0)
	for rows.Next() {
		var l logs.Log
		var kind, member string
		var notes sql.NullString

		if err := rows.Scan(&l.ID, &l.CreatedAt, &kind, &member, &notes); err != nil {
			return nil, err
		}

		l.Kind = logs.Kind(kind)
		l.Member = household.Member(member)
		l.Notes = notes.String

		out = append(out, l)
	}

	return out, rows.Err()
}

func insertLogs(ctx context.Context, tx *sql.Tx, ls []logs.Log) error {
	for _, l := range ls {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO logs (id, created_at, kind, member, notes)
			VALUES ($1,$2,$3,$4,$5)
		`,
			l.ID,
			l.CreatedAt,
			string(l.Kind),
			string(l.Member),
			nullIfEmpty(l.Notes),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func deleteLogs(ctx context.Context, tx *sql.Tx, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, id)
	}

	_, err := tx.ExecContext(ctx,
		"DELETE FROM logs WHERE id IN ("+strings.Join(placeholders, ",")+")",
		args...,
	)
	return err
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
