package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
)

// PlannedTask is a pending delivery admitted to the allocator for one run.
type PlannedTask struct {
	// Index points back into the deliveries slice given to PlanTasks.
	Index        int
	Delivery     domain.Delivery
	DueDate      time.Time
	MinDays      int
	DesiredExtra int
}

// PlanTasks selects the deliveries the solver is responsible for: pending,
// with a parseable due date on or after semesterStart. The result is in
// canonical order.
func PlanTasks(deliveries []domain.Delivery, semesterStart time.Time, cfg domain.PlannerConfig) []PlannedTask {
	minDays := cfg.MinDays()
	var tasks []PlannedTask
	for i, d := range deliveries {
		if d.Completed {
			continue
		}
		due, ok := NormalizeDate(d.Date)
		if !ok || due.Before(semesterStart) {
			continue
		}
		tasks = append(tasks, PlannedTask{
			Index:        i,
			Delivery:     d,
			DueDate:      due,
			MinDays:      minDays,
			DesiredExtra: cfg.Variation(d.Priority),
		})
	}
	CanonicalSort(tasks)
	return tasks
}

// CanonicalSort orders planned tasks deterministically:
// 1. Due date: earliest first
// 2. Priority weight: higher desired extra first
// 3. Delivery ID: lexical ascending
func CanonicalSort(tasks []PlannedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}

		if a.DesiredExtra != b.DesiredExtra {
			return a.DesiredExtra > b.DesiredExtra
		}

		return a.Delivery.ID < b.Delivery.ID
	})
}
