package importer

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidationError locates one problem in an overrides document.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateOverrides checks every entry and returns all problems found.
// Checks are structural only; whether a delivery exists is decided when the
// overrides are applied to a schedule.
func ValidateOverrides(doc *OverrideDocument) []error {
	var errs []error
	if doc.Version != SupportedVersion {
		errs = append(errs, &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (expected %d)", doc.Version, SupportedVersion),
		})
	}

	seen := make(map[string]int, len(doc.Overrides))
	for i, ov := range doc.Overrides {
		prefix := fmt.Sprintf("overrides[%d]", i)

		if ov.DeliveryID == "" {
			errs = append(errs, &ValidationError{Field: prefix + ".delivery_id", Message: "is required"})
		} else if first, dup := seen[ov.DeliveryID]; dup {
			errs = append(errs, &ValidationError{
				Field:   prefix + ".delivery_id",
				Message: fmt.Sprintf("duplicate of overrides[%d]", first),
			})
		} else {
			seen[ov.DeliveryID] = i
		}

		start, startErr := parseDate(prefix+".start_date", ov.StartDate)
		end, endErr := parseDate(prefix+".end_date", ov.EndDate)
		if startErr != nil {
			errs = append(errs, startErr)
		}
		if endErr != nil {
			errs = append(errs, endErr)
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, &ValidationError{
				Field:   prefix + ".end_date",
				Message: fmt.Sprintf("%s is before start_date %s", ov.EndDate, ov.StartDate),
			})
		}
	}
	return errs
}

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &ValidationError{Field: field, Message: "is required"}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid date format %q (expected YYYY-MM-DD)", s),
		}
	}
	return t, nil
}
