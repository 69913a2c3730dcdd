package service

import (
	"context"

	"github.com/alexanderramin/plazo/internal/app"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/repository"
)

type DeliveryService interface {
	app.CompleteDeliveryUseCase
	Create(ctx context.Context, d *domain.Delivery) error
	GetByID(ctx context.Context, id string) (*domain.Delivery, error)
	List(ctx context.Context, f repository.DeliveryFilter) ([]*domain.Delivery, error)
	Update(ctx context.Context, d *domain.Delivery) error
	Delete(ctx context.Context, id string) error
	Subjects(ctx context.Context) ([]string, error)
}

type SettingsService interface {
	app.ConfigureUseCase
	// SemesterStart returns the stored start, or today's date with
	// defaulted set when none is stored.
	SemesterStart(ctx context.Context) (start string, defaulted bool, err error)
	SetSemesterStart(ctx context.Context, date string) error
}

type ScheduleService interface {
	app.BuildScheduleUseCase
}
