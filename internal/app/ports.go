package app

import (
	"context"

	"github.com/alexanderramin/plazo/internal/domain"
)

type BuildScheduleUseCase interface {
	Build(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}

type CompleteDeliveryUseCase interface {
	Complete(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
}

type ConfigureUseCase interface {
	Config(ctx context.Context) (domain.PlannerConfig, error)
	UpdateConfig(ctx context.Context, cfg domain.PlannerConfig) (domain.PlannerConfig, error)
	Reset(ctx context.Context) error
}
