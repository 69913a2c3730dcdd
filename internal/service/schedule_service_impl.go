package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/plazo/internal/app"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/repository"
	"github.com/alexanderramin/plazo/internal/scheduler"
)

type scheduleService struct {
	deliveries repository.DeliveryRepo
	settings   SettingsService
	observer   UseCaseObserver
}

func NewScheduleService(deliveries repository.DeliveryRepo, settings SettingsService, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		deliveries: deliveries,
		settings:   settings,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Build allocates study windows for every stored delivery, applies
// overrides, then filters and sorts the result for display.
func (s *scheduleService) Build(ctx context.Context, req app.ScheduleRequest) (resp *app.ScheduleResponse, err error) {
	fields := map[string]any{"subject": req.Subject, "sort": string(req.SortBy)}
	defer observe(ctx, s.observer, "build-schedule", time.Now().UTC(), fields, &err)

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = domain.SortByStart
	}
	if !domain.ValidScheduleSorts[string(sortBy)] {
		return nil, &app.ScheduleError{
			Code:    app.ScheduleErrInvalidSort,
			Message: fmt.Sprintf("unknown sort %q (use start, date or subject)", sortBy),
		}
	}

	today := time.Now()
	if req.Today != nil {
		today = *req.Today
	}

	cfg, err := s.settings.Config(ctx)
	if err != nil {
		return nil, err
	}
	semesterStart, defaulted, err := s.settings.SemesterStart(ctx)
	if err != nil {
		return nil, err
	}
	if defaulted {
		semesterStart = scheduler.FormatDate(today)
	}

	stored, err := s.deliveries.List(ctx, repository.DeliveryFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading deliveries: %w", err)
	}
	deliveries := make([]domain.Delivery, len(stored))
	for i, d := range stored {
		deliveries[i] = *d
	}

	full := scheduler.BuildSchedule(deliveries, semesterStart, cfg)
	full, rejections := scheduler.ApplyOverrides(full, req.Overrides)

	resp = &app.ScheduleResponse{
		Items:                  sortSchedule(filterBySubject(full, req.Subject), sortBy),
		Stats:                  scheduler.ComputeStats(full, today),
		SemesterStart:          semesterStart,
		SemesterStartDefaulted: defaulted,
		Config:                 cfg,
		Rejections:             rejections,
		Excluded:               scheduler.MalformedDeliveries(deliveries),
	}

	fields["deliveries"] = len(deliveries)
	fields["warnings"] = resp.Stats.Warnings
	fields["rejected_overrides"] = len(rejections)
	fields["excluded"] = len(resp.Excluded)
	return resp, nil
}

func filterBySubject(items []domain.StudySchedule, subject string) []domain.StudySchedule {
	if subject == "" {
		return items
	}
	out := make([]domain.StudySchedule, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Subject, subject) {
			out = append(out, item)
		}
	}
	return out
}

// sortSchedule reorders items in place for display. The allocator already
// returns start order.
func sortSchedule(items []domain.StudySchedule, by domain.ScheduleSort) []domain.StudySchedule {
	switch by {
	case domain.SortByDate:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Date < items[j].Date
		})
	case domain.SortBySubject:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := strings.ToLower(items[i].Subject), strings.ToLower(items[j].Subject)
			if a != b {
				return a < b
			}
			return items[i].Date < items[j].Date
		})
	}
	return items
}
