package scheduler

import "time"

// materialize anchors solved durations to dates, walking from the latest
// due task back to the earliest. Each window ends no later than its due
// date and strictly before the window that follows it.
func materialize(tasks []PlannedTask, state []taskState, semesterStart time.Time) []AllocationResult {
	out := make([]AllocationResult, len(tasks))

	var nextAvailableEnd time.Time
	hasNext := false
	for i := len(tasks) - 1; i >= 0; i-- {
		t, st := tasks[i], state[i]

		end := t.DueDate
		if hasNext && nextAvailableEnd.Before(end) {
			end = nextAvailableEnd
		}
		start := AddDays(end, -(st.duration - 1))

		out[i] = AllocationResult{
			Start:           start,
			End:             end,
			StudyDays:       DaysBetween(start, end) + 1,
			Warning:         st.warning || st.duration < t.MinDays || start.Before(semesterStart),
			MinimumRequired: t.MinDays,
			DesiredExtra:    st.desiredExtra,
			AchievedExtra:   max(0, st.achievedExtra),
		}

		nextAvailableEnd = AddDays(start, -1)
		hasNext = true
	}
	return out
}
