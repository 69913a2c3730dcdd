package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/plazo/internal/db"
	"github.com/alexanderramin/plazo/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo on the planner_settings row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

const settingsID = "default"

func (r *SQLiteSettingsRepo) GetConfig(ctx context.Context) (domain.PlannerConfig, error) {
	query := `SELECT base_study_days, variation_high, variation_normal, variation_low, allocation_window_days
		FROM planner_settings WHERE id = ?`
	var base, high, normal, low, window int
	err := r.db.QueryRowContext(ctx, query, settingsID).Scan(&base, &high, &normal, &low, &window)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PlannerConfig{}, fmt.Errorf("planner settings: %w", ErrNotFound)
	}
	if err != nil {
		return domain.PlannerConfig{}, fmt.Errorf("scanning planner settings: %w", err)
	}
	return domain.PlannerConfig{
		BaseStudyDays: base,
		PriorityVariations: map[domain.Priority]int{
			domain.PriorityHigh:   high,
			domain.PriorityNormal: normal,
			domain.PriorityLow:    low,
		},
		AllocationWindowDays: window,
	}, nil
}

// UpsertConfig stores cfg as given; callers sanitize first. The semester
// start column is left untouched.
func (r *SQLiteSettingsRepo) UpsertConfig(ctx context.Context, cfg domain.PlannerConfig) error {
	query := `INSERT INTO planner_settings (id, base_study_days, variation_high, variation_normal,
		variation_low, allocation_window_days) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base_study_days = excluded.base_study_days,
			variation_high = excluded.variation_high,
			variation_normal = excluded.variation_normal,
			variation_low = excluded.variation_low,
			allocation_window_days = excluded.allocation_window_days`
	_, err := r.db.ExecContext(ctx, query,
		settingsID,
		cfg.BaseStudyDays,
		cfg.Variation(domain.PriorityHigh),
		cfg.Variation(domain.PriorityNormal),
		cfg.Variation(domain.PriorityLow),
		cfg.AllocationWindowDays,
	)
	if err != nil {
		return fmt.Errorf("upserting planner settings: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) GetSemesterStart(ctx context.Context) (string, error) {
	var start sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT semester_start FROM planner_settings WHERE id = ?`, settingsID).Scan(&start)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("planner settings: %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("scanning semester start: %w", err)
	}
	return stringOrEmpty(start), nil
}

// SetSemesterStart stores date; "" clears it.
func (r *SQLiteSettingsRepo) SetSemesterStart(ctx context.Context, date string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO planner_settings (id, semester_start) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET semester_start = excluded.semester_start`,
		settingsID, nullableString(date))
	if err != nil {
		return fmt.Errorf("setting semester start: %w", err)
	}
	return nil
}
