package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/plazo/internal/app"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/scheduler"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func TestFormatDeliveryList(t *testing.T) {
	now := day("2025-03-10")
	deliveries := []*domain.Delivery{
		{ID: "aaaaaaaa-1111", Subject: "Algebra", Name: "Homework 3", Date: "2025-03-11", Priority: domain.PriorityHigh, Color: "#3b82f6"},
		{ID: "bbbbbbbb-2222", Subject: "History", Name: "Essay", Date: "2025-03-01", Priority: domain.PriorityLow, Completed: true},
	}

	out := stripANSI(FormatDeliveryList(deliveries, now))

	assert.Contains(t, out, "DELIVERIES")
	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "Homework 3")
	assert.Contains(t, out, "Tomorrow")
	assert.Contains(t, out, "9d ago")
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, "2 deliveries")
}

func TestFormatDelivery(t *testing.T) {
	out := stripANSI(FormatDelivery(&domain.Delivery{
		ID: "aaaaaaaa-1111", Subject: "Algebra", Name: "Exam", Date: "2025-03-20",
		StudyStart: "2025-03-10", Priority: domain.PriorityNormal,
	}))

	assert.Contains(t, out, "Exam")
	assert.Contains(t, out, "2025-03-20")
	assert.Contains(t, out, "Start hint: 2025-03-10")
}

func TestFormatSchedule(t *testing.T) {
	resp := &app.ScheduleResponse{
		Items: []domain.StudySchedule{
			{
				Delivery:      domain.Delivery{ID: "aaaaaaaa-1", Subject: "Algebra", Name: "Exam", Date: "2025-03-10"},
				StartDate:     day("2025-03-01"),
				EndDate:       day("2025-03-10"),
				StudyDays:     10,
				AchievedExtra: 6,
				Warning:       true,
			},
			{
				Delivery:   domain.Delivery{ID: "bbbbbbbb-2", Subject: "History", Name: "Essay", Date: "2025-03-20"},
				StartDate:  day("2025-03-11"),
				EndDate:    day("2025-03-15"),
				StudyDays:  5,
				Overridden: true,
			},
			{
				Delivery:  domain.Delivery{ID: "cccccccc-3", Subject: "Physics", Name: "Lab", Date: "2025-03-02", Completed: true},
				StartDate: day("2025-03-02"),
				EndDate:   day("2025-03-02"),
			},
		},
		Stats:                  domain.StudyStats{Total: 3, Warnings: 1},
		SemesterStart:          "2025-03-01",
		SemesterStartDefaulted: true,
		Config:                 domain.DefaultPlannerConfig(),
		Rejections:             []scheduler.OverrideRejection{{DeliveryID: "dddddddd-4", Reason: "unknown delivery"}},
		Excluded:               []string{"eeeeeeee-5"},
	}

	out := stripANSI(FormatSchedule(resp, day("2025-03-05")))

	assert.Contains(t, out, "STUDY SCHEDULE")
	assert.Contains(t, out, "(not configured, using today)")
	assert.Contains(t, out, "as of 2025-03-05")
	assert.Contains(t, out, "2025-03-01 → 2025-03-10")
	assert.Contains(t, out, "+6/0")
	assert.Contains(t, out, "⚠ tight")
	assert.Contains(t, out, "✎ override")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "1 deliveries cannot get their minimum study days")
	assert.Contains(t, out, "Override for dddddddd ignored: unknown delivery")
	assert.Contains(t, out, "Skipped eeeeeeee")
}

func TestFormatSchedule_Empty(t *testing.T) {
	out := stripANSI(FormatSchedule(&app.ScheduleResponse{SemesterStart: "2025-03-01"}, day("2025-03-05")))
	assert.Contains(t, out, "Nothing to plan.")
	assert.NotContains(t, out, "not configured")
}

func TestFormatStats(t *testing.T) {
	out := stripANSI(FormatStats(domain.StudyStats{Total: 4, Upcoming: 2, Overdue: 1, ThisWeek: 1, Warnings: 0, Completed: 1}))

	assert.Contains(t, out, "STATS")
	assert.Contains(t, out, "Total       4")
	assert.Contains(t, out, "Overdue     1")
	assert.Contains(t, out, "25%")
}

func TestFormatStats_EmptyHasZeroProgress(t *testing.T) {
	out := stripANSI(FormatStats(domain.StudyStats{}))
	assert.Contains(t, out, "0%")
}

func TestFormatConfig(t *testing.T) {
	out := stripANSI(FormatConfig(domain.DefaultPlannerConfig(), "2025-02-17", false))

	assert.Contains(t, out, "Semester start     2025-02-17")
	assert.Contains(t, out, "Base study days    4")
	assert.Contains(t, out, "Allocation window  7 days")
	assert.Contains(t, out, "high     +1")
	assert.Contains(t, out, "low      -1")
	assert.NotContains(t, out, "not configured")
}
