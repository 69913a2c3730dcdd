package scheduler

import "time"

// AllocationResult is the solved study window for one planned task.
type AllocationResult struct {
	Start           time.Time
	End             time.Time
	StudyDays       int
	Warning         bool
	MinimumRequired int
	DesiredExtra    int
	AchievedExtra   int
}

// Allocate solves study windows for tasks, which must be in canonical
// order (see PlanTasks). The returned slice is parallel to tasks.
func Allocate(tasks []PlannedTask, semesterStart time.Time, windowDays int) []AllocationResult {
	if len(tasks) == 0 {
		return nil
	}
	s := newSolver(tasks, Capacities(tasks, semesterStart), windowDays)
	s.solve()
	return materialize(tasks, s.state, semesterStart)
}

// taskState is the per-run mutable bookkeeping for one task.
type taskState struct {
	duration      int
	warning       bool
	desiredExtra  int
	achievedExtra int
}

type solver struct {
	tasks    []PlannedTask
	capacity []int
	// prefix[i] is the sum of durations over [0..i].
	prefix     []int
	groupEnd   []int
	state      []taskState
	windowDays int
}

func newSolver(tasks []PlannedTask, capacity []int, windowDays int) *solver {
	s := &solver{
		tasks:      tasks,
		capacity:   capacity,
		prefix:     make([]int, len(tasks)),
		groupEnd:   make([]int, len(tasks)),
		state:      make([]taskState, len(tasks)),
		windowDays: max(0, windowDays),
	}
	sum := 0
	for i, t := range tasks {
		s.state[i] = taskState{duration: t.MinDays, desiredExtra: t.DesiredExtra}
		sum += t.MinDays
		s.prefix[i] = sum
	}
	for _, g := range dueGroups(tasks) {
		for i := g.start; i <= g.end; i++ {
			s.groupEnd[i] = g.end
		}
	}
	return s
}

func (s *solver) solve() {
	for _, g := range dueGroups(s.tasks) {
		slack := s.capacity[g.end] - s.prefix[g.end]
		switch {
		case slack < 0:
			s.trim(g, -slack)
		case slack > 0:
			s.grow(g, slack)
		}
	}
}

// trim claws back granted extra days until the group's deficit is covered.
// An uncovered deficit flags every task up to the group end.
func (s *solver) trim(g dueGroup, deficit int) {
	for deficit > 0 {
		idx := s.pickTrim(g.end)
		if idx < 0 {
			break
		}
		s.adjust(idx, -1)
		deficit--
	}
	if deficit > 0 {
		for i := 0; i <= g.end; i++ {
			s.state[i].warning = true
		}
	}
}

func (s *solver) pickTrim(end int) int {
	best := -1
	for i := 0; i <= end; i++ {
		st := s.state[i]
		if st.achievedExtra <= 0 || st.duration <= s.tasks[i].MinDays {
			continue
		}
		if best < 0 || s.trimBefore(i, best) {
			best = i
		}
	}
	return best
}

// trimBefore ranks trim victims: lowest desired extra, then most extra
// already granted, then latest due date, then highest ID.
func (s *solver) trimBefore(a, b int) bool {
	sa, sb := s.state[a], s.state[b]
	if sa.desiredExtra != sb.desiredExtra {
		return sa.desiredExtra < sb.desiredExtra
	}
	if sa.achievedExtra != sb.achievedExtra {
		return sa.achievedExtra > sb.achievedExtra
	}
	ta, tb := s.tasks[a], s.tasks[b]
	if !ta.DueDate.Equal(tb.DueDate) {
		return ta.DueDate.After(tb.DueDate)
	}
	return ta.Delivery.ID > tb.Delivery.ID
}

// grow hands out spare days one at a time to the best candidate whose due
// date falls within the allocation window of the group.
func (s *solver) grow(g dueGroup, slack int) {
	limit := AddDays(s.tasks[g.start].DueDate, s.windowDays)
	for slack > 0 {
		best := -1
		for c := g.start; c < len(s.tasks); c++ {
			if s.tasks[c].DueDate.After(limit) {
				break
			}
			if !s.canGrow(c, g.end) {
				continue
			}
			if best < 0 || s.growBefore(c, best) {
				best = c
			}
		}
		if best < 0 {
			return
		}
		s.adjust(best, 1)
		slack--
	}
}

// canGrow reports whether one more day for task c keeps every prefix sum
// within capacity from c through the later of the current group end and
// c's own group end.
func (s *solver) canGrow(c, groupEnd int) bool {
	last := max(groupEnd, s.groupEnd[c])
	for j := c; j <= last; j++ {
		if s.prefix[j]+1 > s.capacity[j] {
			return false
		}
	}
	return true
}

// growBefore ranks beneficiaries: highest positive desired extra, then
// least served, then earliest due date, then lowest ID.
func (s *solver) growBefore(a, b int) bool {
	sa, sb := s.state[a], s.state[b]
	wa, wb := max(0, sa.desiredExtra), max(0, sb.desiredExtra)
	if wa != wb {
		return wa > wb
	}
	if sa.achievedExtra != sb.achievedExtra {
		return sa.achievedExtra < sb.achievedExtra
	}
	ta, tb := s.tasks[a], s.tasks[b]
	if !ta.DueDate.Equal(tb.DueDate) {
		return ta.DueDate.Before(tb.DueDate)
	}
	return ta.Delivery.ID < tb.Delivery.ID
}

func (s *solver) adjust(idx, delta int) {
	s.state[idx].duration += delta
	s.state[idx].achievedExtra += delta
	for j := idx; j < len(s.prefix); j++ {
		s.prefix[j] += delta
	}
}
