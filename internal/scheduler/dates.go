package scheduler

import (
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
)

// NormalizeDate parses an ISO calendar date (or an RFC3339 timestamp, whose
// time of day is dropped) into midnight UTC. Empty or malformed input
// reports false.
func NormalizeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return truncateDay(t), true
	}
	return time.Time{}, false
}

// DaysBetween returns the number of calendar days from a to b (negative when
// b precedes a).
func DaysBetween(a, b time.Time) int {
	return int(math.Round(truncateDay(b).Sub(truncateDay(a)).Hours() / 24))
}

// AddDays shifts t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MalformedDeliveries returns the IDs of deliveries whose due date cannot be
// normalized. Such records are left out of every schedule.
func MalformedDeliveries(deliveries []domain.Delivery) []string {
	var ids []string
	for _, d := range deliveries {
		if _, ok := NormalizeDate(d.Date); !ok {
			ids = append(ids, d.ID)
		}
	}
	return ids
}
