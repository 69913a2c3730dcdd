package testutil

import (
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/google/uuid"
)

type DeliveryOption func(*domain.Delivery)

func WithSubject(s string) DeliveryOption {
	return func(d *domain.Delivery) {
		d.Subject = s
	}
}

func WithDueDate(date string) DeliveryOption {
	return func(d *domain.Delivery) {
		d.Date = date
	}
}

func WithPriority(p domain.Priority) DeliveryOption {
	return func(d *domain.Delivery) {
		d.Priority = p
	}
}

func WithStudyStart(date string) DeliveryOption {
	return func(d *domain.Delivery) {
		d.StudyStart = date
	}
}

func WithCompleted() DeliveryOption {
	return func(d *domain.Delivery) {
		d.Completed = true
	}
}

func WithColor(c string) DeliveryOption {
	return func(d *domain.Delivery) {
		d.Color = c
	}
}

// NewTestDelivery returns a valid pending delivery due two weeks from now.
func NewTestDelivery(name string, opts ...DeliveryOption) *domain.Delivery {
	now := time.Now().UTC().Truncate(time.Second)
	d := &domain.Delivery{
		ID:        uuid.New().String(),
		Subject:   "Algebra",
		Name:      name,
		Date:      now.AddDate(0, 0, 14).Format(domain.DateLayout),
		Color:     domain.SubjectPalette[0],
		Priority:  domain.PriorityNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
