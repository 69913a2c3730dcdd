package domain

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "normal": true, "high": true,
}

// AllPriorities lists priorities from most to least urgent.
var AllPriorities = []Priority{PriorityHigh, PriorityNormal, PriorityLow}

// ParsePriority converts user input into a Priority. Matching is
// case-insensitive; an empty string yields PriorityNormal.
func ParsePriority(s string) (Priority, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return PriorityNormal, nil
	}
	if !ValidPriorities[v] {
		return "", fmt.Errorf("invalid priority %q (use low, normal or high)", s)
	}
	return Priority(v), nil
}

type ScheduleSort string

const (
	SortByStart   ScheduleSort = "start"
	SortByDate    ScheduleSort = "date"
	SortBySubject ScheduleSort = "subject"
)

// ValidScheduleSorts is the canonical set of accepted schedule sort modes.
var ValidScheduleSorts = map[string]bool{
	"start": true, "date": true, "subject": true,
}
