package repository

import (
	"context"

	"github.com/alexanderramin/plazo/internal/domain"
)

// DeliveryFilter narrows List. Zero values match everything.
type DeliveryFilter struct {
	Subject     string
	PendingOnly bool
}

type DeliveryRepo interface {
	Create(ctx context.Context, d *domain.Delivery) error
	GetByID(ctx context.Context, id string) (*domain.Delivery, error)
	List(ctx context.Context, f DeliveryFilter) ([]*domain.Delivery, error)
	Update(ctx context.Context, d *domain.Delivery) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
	ListSubjects(ctx context.Context) ([]string, error)
}

// SettingsRepo persists the single planner settings row.
type SettingsRepo interface {
	GetConfig(ctx context.Context) (domain.PlannerConfig, error)
	UpsertConfig(ctx context.Context, cfg domain.PlannerConfig) error
	// GetSemesterStart returns "" when no semester start is configured.
	GetSemesterStart(ctx context.Context) (string, error)
	SetSemesterStart(ctx context.Context, date string) error
}
