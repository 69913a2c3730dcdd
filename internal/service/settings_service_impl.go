package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/plazo/internal/db"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/repository"
	"github.com/alexanderramin/plazo/internal/scheduler"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewSettingsService(settings repository.SettingsRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Config returns the stored configuration, sanitized.
func (s *settingsService) Config(ctx context.Context) (domain.PlannerConfig, error) {
	cfg, err := s.settings.GetConfig(ctx)
	if err != nil {
		return domain.PlannerConfig{}, fmt.Errorf("loading planner settings: %w", err)
	}
	return cfg.Sanitize(), nil
}

// UpdateConfig sanitizes cfg, stores it and returns what was stored.
func (s *settingsService) UpdateConfig(ctx context.Context, cfg domain.PlannerConfig) (stored domain.PlannerConfig, err error) {
	defer observe(ctx, s.observer, "update-config", s.now().UTC(), map[string]any{
		"base_study_days": cfg.BaseStudyDays,
		"window_days":     cfg.AllocationWindowDays,
	}, &err)

	stored = cfg.Sanitize()
	if err = s.settings.UpsertConfig(ctx, stored); err != nil {
		return domain.PlannerConfig{}, err
	}
	return stored, nil
}

func (s *settingsService) SemesterStart(ctx context.Context) (string, bool, error) {
	start, err := s.settings.GetSemesterStart(ctx)
	if err != nil {
		return "", false, fmt.Errorf("loading semester start: %w", err)
	}
	if start == "" {
		return scheduler.FormatDate(s.now()), true, nil
	}
	return start, false, nil
}

// SetSemesterStart stores date after normalizing it to YYYY-MM-DD.
func (s *settingsService) SetSemesterStart(ctx context.Context, date string) (err error) {
	defer observe(ctx, s.observer, "set-semester-start", s.now().UTC(), map[string]any{"date": date}, &err)

	d, ok := scheduler.NormalizeDate(date)
	if !ok {
		return fmt.Errorf("semester start %q must use YYYY-MM-DD format", date)
	}
	return s.settings.SetSemesterStart(ctx, scheduler.FormatDate(d))
}

// Reset restores the default configuration and clears the semester start
// in one transaction.
func (s *settingsService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset-settings", s.now().UTC(), nil, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSettingsRepo(tx)
		if err := repo.UpsertConfig(ctx, domain.DefaultPlannerConfig()); err != nil {
			return err
		}
		return repo.SetSemesterStart(ctx, "")
	})
}
