package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
)

// BuildSchedule runs the whole allocator pipeline and returns one entry per
// delivery with a parseable due date, sorted by study start. A semester
// start that cannot be parsed yields an empty schedule.
func BuildSchedule(deliveries []domain.Delivery, semesterStartISO string, cfg domain.PlannerConfig) []domain.StudySchedule {
	schedule := []domain.StudySchedule{}

	semesterStart, ok := NormalizeDate(semesterStartISO)
	if !ok {
		return schedule
	}

	tasks := PlanTasks(deliveries, semesterStart, cfg)
	allocations := Allocate(tasks, semesterStart, cfg.AllocationWindowDays)

	byIndex := make(map[int]AllocationResult, len(tasks))
	for i, t := range tasks {
		byIndex[t.Index] = allocations[i]
	}

	minDays := cfg.MinDays()
	for i, d := range deliveries {
		due, ok := NormalizeDate(d.Date)
		if !ok {
			continue
		}

		item := domain.StudySchedule{
			Delivery:        d,
			MinimumRequired: minDays,
			DesiredExtra:    cfg.Variation(d.Priority),
		}

		if d.Completed {
			item.StartDate = due
			item.EndDate = due
			schedule = append(schedule, item)
			continue
		}

		if alloc, planned := byIndex[i]; planned {
			item.StartDate = alloc.Start
			item.EndDate = alloc.End
			item.StudyDays = alloc.StudyDays
			item.AllocatedDays = alloc.StudyDays
			item.Warning = alloc.Warning
			item.AchievedExtra = alloc.AchievedExtra
			schedule = append(schedule, item)
			continue
		}

		schedule = append(schedule, fallback(item, due, semesterStart, minDays))
	}

	SortByStart(schedule)
	return schedule
}

// fallback pins a pending delivery the solver could not place (its due date
// precedes the semester start) to a degraded window.
func fallback(item domain.StudySchedule, due, semesterStart time.Time, minDays int) domain.StudySchedule {
	start := semesterStart
	if due.Before(semesterStart) {
		start = due
	}
	days := max(0, DaysBetween(start, due)+1)

	item.StartDate = start
	item.EndDate = due
	item.StudyDays = days
	item.AllocatedDays = days
	item.Warning = days < minDays || due.Before(semesterStart)
	return item
}

// SortByStart orders entries by study start, then end date, then ID.
func SortByStart(schedule []domain.StudySchedule) {
	sort.SliceStable(schedule, func(i, j int) bool {
		a, b := schedule[i], schedule[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		if !a.EndDate.Equal(b.EndDate) {
			return a.EndDate.Before(b.EndDate)
		}
		return a.ID < b.ID
	})
}
