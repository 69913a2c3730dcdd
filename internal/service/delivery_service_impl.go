package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/repository"
	"github.com/google/uuid"
)

type deliveryService struct {
	deliveries repository.DeliveryRepo
	observer   UseCaseObserver
}

func NewDeliveryService(deliveries repository.DeliveryRepo, observers ...UseCaseObserver) DeliveryService {
	return &deliveryService{
		deliveries: deliveries,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Create assigns an ID, timestamps and the subject colour, then stores d.
func (s *deliveryService) Create(ctx context.Context, d *domain.Delivery) (err error) {
	defer observe(ctx, s.observer, "create-delivery", time.Now().UTC(), map[string]any{"subject": d.Subject}, &err)

	normalize(d)
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if err = d.Validate(); err != nil {
		return err
	}
	if d.Color == "" {
		if d.Color, err = s.colorFor(ctx, d.Subject); err != nil {
			return err
		}
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.deliveries.Create(ctx, d)
}

func (s *deliveryService) GetByID(ctx context.Context, id string) (*domain.Delivery, error) {
	return s.deliveries.GetByID(ctx, id)
}

func (s *deliveryService) List(ctx context.Context, f repository.DeliveryFilter) ([]*domain.Delivery, error) {
	return s.deliveries.List(ctx, f)
}

// Update stores d. A delivery moved to another subject takes that subject's
// colour.
func (s *deliveryService) Update(ctx context.Context, d *domain.Delivery) (err error) {
	defer observe(ctx, s.observer, "update-delivery", time.Now().UTC(), map[string]any{"delivery_id": d.ID}, &err)

	normalize(d)
	if err = d.Validate(); err != nil {
		return err
	}
	var current *domain.Delivery
	if current, err = s.deliveries.GetByID(ctx, d.ID); err != nil {
		return err
	}
	if !strings.EqualFold(current.Subject, d.Subject) {
		if d.Color, err = s.colorFor(ctx, d.Subject); err != nil {
			return err
		}
	}
	d.CreatedAt = current.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	return s.deliveries.Update(ctx, d)
}

func (s *deliveryService) Complete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "complete-delivery", time.Now().UTC(), map[string]any{"delivery_id": id}, &err)
	return s.deliveries.SetCompleted(ctx, id, true)
}

func (s *deliveryService) Reopen(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "reopen-delivery", time.Now().UTC(), map[string]any{"delivery_id": id}, &err)
	return s.deliveries.SetCompleted(ctx, id, false)
}

func (s *deliveryService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-delivery", time.Now().UTC(), map[string]any{"delivery_id": id}, &err)
	return s.deliveries.Delete(ctx, id)
}

func (s *deliveryService) Subjects(ctx context.Context) ([]string, error) {
	return s.deliveries.ListSubjects(ctx)
}

func (s *deliveryService) colorFor(ctx context.Context, subject string) (string, error) {
	existing, err := s.deliveries.List(ctx, repository.DeliveryFilter{Subject: subject})
	if err != nil {
		return "", fmt.Errorf("loading subject colours: %w", err)
	}
	return domain.SubjectColor(subject, existing), nil
}

func normalize(d *domain.Delivery) {
	d.Subject = strings.TrimSpace(d.Subject)
	d.Name = strings.TrimSpace(d.Name)
	d.Date = strings.TrimSpace(d.Date)
	d.StudyStart = strings.TrimSpace(d.StudyStart)
	if d.Priority == "" {
		d.Priority = domain.PriorityNormal
	}
}
