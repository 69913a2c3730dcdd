package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for every persisted date.
const DateLayout = "2006-01-02"

// Delivery is an academic deliverable entered by the user.
type Delivery struct {
	ID         string
	Subject    string
	Name       string
	Date       string // due date, YYYY-MM-DD
	StudyStart string // advisory hint, never binding
	Color      string
	Completed  bool
	Priority   Priority
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the fields required before a delivery can be stored.
func (d *Delivery) Validate() error {
	if strings.TrimSpace(d.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("due date %q must use YYYY-MM-DD format", d.Date)
	}
	if d.StudyStart != "" {
		if _, err := time.Parse(DateLayout, d.StudyStart); err != nil {
			return fmt.Errorf("study start %q must use YYYY-MM-DD format", d.StudyStart)
		}
	}
	if !ValidPriorities[string(d.Priority)] {
		return fmt.Errorf("invalid priority %q", d.Priority)
	}
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (d *Delivery) DisplayID() string {
	if len(d.ID) >= 8 {
		return d.ID[:8]
	}
	return d.ID
}
