package scheduler

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/plazo/internal/domain"
)

// Override is an externally proposed study window for one delivery.
type Override struct {
	StartDate string
	EndDate   string
}

// OverrideRejection explains why an override was ignored.
type OverrideRejection struct {
	DeliveryID string
	Reason     string
}

// ApplyOverrides replaces allocator windows with the given overrides, keyed
// by delivery ID. Overrides whose dates do not parse or whose end precedes
// the start are rejected and the allocator's window is kept. An accepted
// override that runs past the due date is kept but flagged with a warning.
// The input slice is not modified.
func ApplyOverrides(schedule []domain.StudySchedule, overrides map[string]Override) ([]domain.StudySchedule, []OverrideRejection) {
	out := make([]domain.StudySchedule, len(schedule))
	copy(out, schedule)
	if len(overrides) == 0 {
		return out, nil
	}

	var rejections []OverrideRejection
	seen := make(map[string]bool, len(overrides))
	for i := range out {
		item := &out[i]
		ov, ok := overrides[item.ID]
		if !ok {
			continue
		}
		seen[item.ID] = true

		if item.Completed {
			rejections = append(rejections, OverrideRejection{DeliveryID: item.ID, Reason: "delivery is completed"})
			continue
		}
		start, okStart := NormalizeDate(ov.StartDate)
		end, okEnd := NormalizeDate(ov.EndDate)
		if !okStart || !okEnd {
			rejections = append(rejections, OverrideRejection{
				DeliveryID: item.ID,
				Reason:     fmt.Sprintf("malformed dates %q..%q", ov.StartDate, ov.EndDate),
			})
			continue
		}
		if end.Before(start) {
			rejections = append(rejections, OverrideRejection{DeliveryID: item.ID, Reason: "end date precedes start date"})
			continue
		}

		due, _ := NormalizeDate(item.Date)
		days := DaysBetween(start, end) + 1
		item.StartDate = start
		item.EndDate = end
		item.StudyDays = days
		item.AllocatedDays = days
		item.Warning = start.After(due) || end.After(due)
		item.Overridden = true
	}

	for id := range overrides {
		if !seen[id] {
			rejections = append(rejections, OverrideRejection{DeliveryID: id, Reason: "unknown delivery"})
		}
	}
	sort.SliceStable(rejections, func(i, j int) bool {
		return rejections[i].DeliveryID < rejections[j].DeliveryID
	})

	SortByStart(out)
	return out, rejections
}
