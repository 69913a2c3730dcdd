package app

import (
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/scheduler"
)

type ScheduleRequest struct {
	// Subject keeps only matching deliveries (case-insensitive). Empty keeps all.
	Subject   string
	SortBy    domain.ScheduleSort
	Overrides map[string]scheduler.Override
	// Today anchors statistics and an unset semester start. Nil means now.
	Today *time.Time
}

func NewScheduleRequest() ScheduleRequest {
	return ScheduleRequest{SortBy: domain.SortByStart}
}

type ScheduleResponse struct {
	// Items is the filtered, sorted view.
	Items []domain.StudySchedule
	// Stats always cover the whole schedule, regardless of Subject.
	Stats         domain.StudyStats
	SemesterStart string
	// SemesterStartDefaulted is set when no semester start is stored and
	// today was used instead.
	SemesterStartDefaulted bool
	Config                 domain.PlannerConfig
	Rejections             []scheduler.OverrideRejection
	// Excluded lists IDs of deliveries whose due date could not be parsed.
	Excluded []string
}

type ScheduleErrorCode string

const (
	ScheduleErrInvalidSort ScheduleErrorCode = "INVALID_SORT"
)

type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
