package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plazo/internal/db"
	"github.com/alexanderramin/plazo/internal/domain"
)

// SQLiteDeliveryRepo implements DeliveryRepo using a SQLite database.
type SQLiteDeliveryRepo struct {
	db db.DBTX
}

func NewSQLiteDeliveryRepo(conn db.DBTX) *SQLiteDeliveryRepo {
	return &SQLiteDeliveryRepo{db: conn}
}

const deliveryColumns = `id, subject, name, due_date, study_start, color, completed, priority, created_at, updated_at`

func (r *SQLiteDeliveryRepo) Create(ctx context.Context, d *domain.Delivery) error {
	query := `INSERT INTO deliveries (` + deliveryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Subject,
		d.Name,
		d.Date,
		nullableString(d.StudyStart),
		d.Color,
		boolToInt(d.Completed),
		string(d.Priority),
		d.CreatedAt.UTC().Format(time.RFC3339),
		d.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting delivery: %w", err)
	}
	return nil
}

func (r *SQLiteDeliveryRepo) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = ?`, id)
	d, err := scanDelivery(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("delivery %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning delivery: %w", err)
	}
	return d, nil
}

// List returns deliveries ordered by due date then creation time.
func (r *SQLiteDeliveryRepo) List(ctx context.Context, f DeliveryFilter) ([]*domain.Delivery, error) {
	var where []string
	var args []any
	if f.Subject != "" {
		where = append(where, "subject = ? COLLATE NOCASE")
		args = append(args, f.Subject)
	}
	if f.PendingOnly {
		where = append(where, "completed = 0")
	}

	query := `SELECT ` + deliveryColumns + ` FROM deliveries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY due_date, created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing deliveries: %w", err)
	}
	defer rows.Close()

	var out []*domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning delivery: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deliveries: %w", err)
	}
	return out, nil
}

func (r *SQLiteDeliveryRepo) Update(ctx context.Context, d *domain.Delivery) error {
	query := `UPDATE deliveries SET subject = ?, name = ?, due_date = ?, study_start = ?, color = ?,
		completed = ?, priority = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.Subject,
		d.Name,
		d.Date,
		nullableString(d.StudyStart),
		d.Color,
		boolToInt(d.Completed),
		string(d.Priority),
		d.UpdatedAt.UTC().Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating delivery: %w", err)
	}
	return requireAffected(res, "delivery "+d.ID)
}

func (r *SQLiteDeliveryRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE deliveries SET completed = ?, updated_at = ? WHERE id = ?`,
		boolToInt(completed), nowUTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating delivery status: %w", err)
	}
	return requireAffected(res, "delivery "+id)
}

func (r *SQLiteDeliveryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deliveries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting delivery: %w", err)
	}
	return requireAffected(res, "delivery "+id)
}

// ListSubjects returns the distinct subjects in alphabetical order.
func (r *SQLiteDeliveryRepo) ListSubjects(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT subject FROM deliveries ORDER BY subject COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDelivery(s rowScanner) (*domain.Delivery, error) {
	var d domain.Delivery
	var studyStart sql.NullString
	var completed int
	var priority, createdAt, updatedAt string
	err := s.Scan(
		&d.ID,
		&d.Subject,
		&d.Name,
		&d.Date,
		&studyStart,
		&d.Color,
		&completed,
		&priority,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.StudyStart = stringOrEmpty(studyStart)
	d.Completed = intToBool(completed)
	d.Priority = domain.Priority(priority)
	d.CreatedAt = parseTimestamp(createdAt)
	d.UpdatedAt = parseTimestamp(updatedAt)
	return &d, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
