package scheduler

import "time"

// Capacities returns, for each task in planner order, the inclusive number
// of days between semesterStart and the task's due date. Because tasks are
// due-date sorted the sequence is non-decreasing.
func Capacities(tasks []PlannedTask, semesterStart time.Time) []int {
	caps := make([]int, len(tasks))
	for i, t := range tasks {
		caps[i] = DaysBetween(semesterStart, t.DueDate) + 1
	}
	return caps
}

// dueGroup is a maximal run [start..end] of tasks sharing a due date.
type dueGroup struct {
	start, end int
}

func dueGroups(tasks []PlannedTask) []dueGroup {
	var groups []dueGroup
	for i := 0; i < len(tasks); {
		j := i
		for j+1 < len(tasks) && tasks[j+1].DueDate.Equal(tasks[i].DueDate) {
			j++
		}
		groups = append(groups, dueGroup{start: i, end: j})
		i = j + 1
	}
	return groups
}
