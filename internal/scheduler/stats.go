package scheduler

import (
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
)

// ComputeStats aggregates schedule relative to today. Upcoming, overdue and
// this-week counts only consider pending deliveries.
func ComputeStats(schedule []domain.StudySchedule, today time.Time) domain.StudyStats {
	today = truncateDay(today)
	weekAhead := AddDays(today, 7)

	stats := domain.StudyStats{Total: len(schedule)}
	for _, item := range schedule {
		if item.Warning {
			stats.Warnings++
		}
		if item.Completed {
			stats.Completed++
			continue
		}
		due, ok := NormalizeDate(item.Date)
		if !ok {
			continue
		}
		switch {
		case due.After(today):
			stats.Upcoming++
			if due.Before(weekAhead) {
				stats.ThisWeek++
			}
		case due.Before(today):
			stats.Overdue++
		}
	}
	return stats
}
