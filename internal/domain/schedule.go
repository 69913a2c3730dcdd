package domain

import "time"

// StudySchedule is a delivery enriched with its proposed study window.
type StudySchedule struct {
	Delivery

	StartDate time.Time
	EndDate   time.Time
	StudyDays int
	Warning   bool

	MinimumRequired int
	AllocatedDays   int
	DesiredExtra    int
	AchievedExtra   int

	// Overridden is set when an external plan replaced the allocator's window.
	Overridden bool
}

// StudyStats aggregates a schedule relative to a reference day.
type StudyStats struct {
	Total     int
	Upcoming  int
	Overdue   int
	ThisWeek  int
	Warnings  int
	Completed int
}
