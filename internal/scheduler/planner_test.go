package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const semesterStartISO = "2025-03-01"

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := NormalizeDate(s)
	require.True(t, ok, "bad test date %q", s)
	return d
}

func newDelivery(id, due string, p domain.Priority) domain.Delivery {
	return domain.Delivery{
		ID:       id,
		Subject:  "Subject " + id,
		Name:     "Delivery " + id,
		Date:     due,
		Priority: p,
	}
}

func testConfig(base, window int) domain.PlannerConfig {
	return domain.PlannerConfig{
		BaseStudyDays:        base,
		PriorityVariations:   domain.DefaultPriorityVariations(),
		AllocationWindowDays: window,
	}
}

func TestNormalizeDate(t *testing.T) {
	d, ok := NormalizeDate("2025-03-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	d, ok = NormalizeDate("2025-03-01T18:30:00-05:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d, "time of day is dropped")

	for _, bad := range []string{"", "  ", "2025-13-01", "01/03/2025", "tomorrow"} {
		_, ok := NormalizeDate(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestDaysBetween(t *testing.T) {
	a := mustDate(t, "2025-03-01")
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 9, DaysBetween(a, mustDate(t, "2025-03-10")))
	assert.Equal(t, -3, DaysBetween(a, mustDate(t, "2025-02-26")))
	assert.Equal(t, 31, DaysBetween(a, mustDate(t, "2025-04-01")))
}

func TestMalformedDeliveries(t *testing.T) {
	deliveries := []domain.Delivery{
		newDelivery("a", "2025-03-10", domain.PriorityNormal),
		newDelivery("b", "not-a-date", domain.PriorityNormal),
		newDelivery("c", "", domain.PriorityLow),
	}
	assert.Equal(t, []string{"b", "c"}, MalformedDeliveries(deliveries))
}

func TestPlanTasks_FiltersCompletedMalformedAndEarly(t *testing.T) {
	done := newDelivery("done", "2025-03-10", domain.PriorityNormal)
	done.Completed = true
	deliveries := []domain.Delivery{
		done,
		newDelivery("bad", "31/03/2025", domain.PriorityNormal),
		newDelivery("early", "2025-02-15", domain.PriorityHigh),
		newDelivery("ok", "2025-03-10", domain.PriorityNormal),
		newDelivery("first-day", semesterStartISO, domain.PriorityLow),
	}

	tasks := PlanTasks(deliveries, mustDate(t, semesterStartISO), testConfig(3, 7))

	require.Len(t, tasks, 2)
	assert.Equal(t, "first-day", tasks[0].Delivery.ID, "due on semester start is planned")
	assert.Equal(t, 4, tasks[0].Index)
	assert.Equal(t, "ok", tasks[1].Delivery.ID)
	assert.Equal(t, 3, tasks[1].Index)
	for _, task := range tasks {
		assert.Equal(t, 3, task.MinDays)
	}
}

func TestPlanTasks_MinDaysFloorIsOne(t *testing.T) {
	deliveries := []domain.Delivery{newDelivery("a", "2025-03-05", domain.PriorityLow)}
	tasks := PlanTasks(deliveries, mustDate(t, semesterStartISO), testConfig(0, 0))
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].MinDays)
	assert.Equal(t, -1, tasks[0].DesiredExtra, "priority sets desired extra, not the floor")
}

func TestCanonicalSort_DueThenWeightThenID(t *testing.T) {
	deliveries := []domain.Delivery{
		newDelivery("z-low", "2025-03-10", domain.PriorityLow),
		newDelivery("b-normal", "2025-03-10", domain.PriorityNormal),
		newDelivery("a-normal", "2025-03-10", domain.PriorityNormal),
		newDelivery("y-high", "2025-03-10", domain.PriorityHigh),
		newDelivery("x-early", "2025-03-05", domain.PriorityLow),
	}

	tasks := PlanTasks(deliveries, mustDate(t, semesterStartISO), testConfig(2, 7))

	var ids []string
	for _, task := range tasks {
		ids = append(ids, task.Delivery.ID)
	}
	assert.Equal(t, []string{"x-early", "y-high", "a-normal", "b-normal", "z-low"}, ids)
}

func TestCanonicalSort_CustomWeightsReorderTies(t *testing.T) {
	cfg := testConfig(2, 7)
	cfg.PriorityVariations = map[domain.Priority]int{
		domain.PriorityHigh:   0,
		domain.PriorityNormal: 0,
		domain.PriorityLow:    3,
	}
	deliveries := []domain.Delivery{
		newDelivery("a", "2025-03-10", domain.PriorityHigh),
		newDelivery("b", "2025-03-10", domain.PriorityLow),
	}

	tasks := PlanTasks(deliveries, mustDate(t, semesterStartISO), cfg)

	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[0].Delivery.ID, "weight comes from configuration, not tier name")
}

func TestCapacities_NonDecreasing(t *testing.T) {
	deliveries := []domain.Delivery{
		newDelivery("c", "2025-03-20", domain.PriorityNormal),
		newDelivery("a", "2025-03-01", domain.PriorityNormal),
		newDelivery("b", "2025-03-10", domain.PriorityNormal),
		newDelivery("d", "2025-03-10", domain.PriorityNormal),
	}
	start := mustDate(t, semesterStartISO)
	tasks := PlanTasks(deliveries, start, testConfig(1, 0))

	caps := Capacities(tasks, start)
	assert.Equal(t, []int{1, 10, 10, 20}, caps)
}

func TestDueGroups(t *testing.T) {
	deliveries := []domain.Delivery{
		newDelivery("a", "2025-03-05", domain.PriorityNormal),
		newDelivery("b", "2025-03-05", domain.PriorityNormal),
		newDelivery("c", "2025-03-06", domain.PriorityNormal),
		newDelivery("d", "2025-03-09", domain.PriorityNormal),
		newDelivery("e", "2025-03-09", domain.PriorityNormal),
	}
	tasks := PlanTasks(deliveries, mustDate(t, semesterStartISO), testConfig(1, 0))

	assert.Equal(t, []dueGroup{{0, 1}, {2, 2}, {3, 4}}, dueGroups(tasks))
	assert.Empty(t, dueGroups(nil))
}
