package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/scheduler"
)

// FormatDeliveryList renders deliveries as a table.
func FormatDeliveryList(deliveries []*domain.Delivery, now time.Time) string {
	headers := []string{"ID", "SUBJECT", "NAME", "DUE", "", "PRIORITY", "STATUS"}
	rows := make([][]string, 0, len(deliveries))
	for _, d := range deliveries {
		due := Dim("invalid date")
		if t, ok := scheduler.NormalizeDate(d.Date); ok && !d.Completed {
			due = DueStyled(t, now)
		} else if ok {
			due = Dim(RelativeDateFrom(t, now))
		}
		rows = append(rows, []string{
			Dim(d.DisplayID()),
			Subject(d.Subject, d.Color),
			d.Name,
			d.Date,
			due,
			PriorityBadge(d.Priority),
			StatusPill(d.Completed),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Deliveries"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Dim(fmt.Sprintf("%d deliveries", len(deliveries))))
	b.WriteString("\n")
	return b.String()
}

// FormatDelivery renders one delivery's details.
func FormatDelivery(d *domain.Delivery) string {
	var lines []string
	lines = append(lines,
		fmt.Sprintf("%s  %s", Bold(d.Name), Dim(d.DisplayID())),
		fmt.Sprintf("Subject:   %s", Subject(d.Subject, d.Color)),
		fmt.Sprintf("Due:       %s", d.Date),
		fmt.Sprintf("Priority:  %s", PriorityBadge(d.Priority)),
		fmt.Sprintf("Status:    %s", StatusPill(d.Completed)),
	)
	if d.StudyStart != "" {
		lines = append(lines, fmt.Sprintf("Start hint: %s", d.StudyStart))
	}
	return RenderBox("Delivery", strings.Join(lines, "\n"))
}
