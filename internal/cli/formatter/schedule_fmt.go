package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plazo/internal/app"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/scheduler"
)

// ScheduleRow returns the styled display cells for one schedule entry.
func ScheduleRow(item domain.StudySchedule) []string {
	window := fmt.Sprintf("%s → %s", scheduler.FormatDate(item.StartDate), scheduler.FormatDate(item.EndDate))
	days := fmt.Sprintf("%d", item.StudyDays)
	extra := fmt.Sprintf("%s/%s", SignedDays(item.AchievedExtra), SignedDays(item.DesiredExtra))

	flags := WarningPill(item.Warning)
	switch {
	case item.Completed:
		window = Dim("completed")
		days = Dim("-")
		extra = Dim("-")
	case item.Overridden:
		flags = strings.TrimSpace(flags + " " + StylePurple.Render("✎ override"))
	}

	return []string{
		Dim(item.DisplayID()),
		Subject(item.Subject, item.Color),
		item.Name,
		item.Date,
		window,
		days,
		extra,
		flags,
	}
}

// ScheduleHeaders are the column titles matching ScheduleRow.
var ScheduleHeaders = []string{"ID", "SUBJECT", "DELIVERY", "DUE", "STUDY WINDOW", "DAYS", "EXTRA", ""}

// FormatSchedule renders a built schedule with its context lines.
func FormatSchedule(resp *app.ScheduleResponse, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Study schedule"))
	b.WriteString("\n")

	semester := "Semester starts " + resp.SemesterStart
	if resp.SemesterStartDefaulted {
		semester += " (not configured, using today)"
	}
	b.WriteString(Dim(fmt.Sprintf("%s · base %d days · window %d days · as of %s",
		semester, resp.Config.BaseStudyDays, resp.Config.AllocationWindowDays, scheduler.FormatDate(now))))
	b.WriteString("\n\n")

	if len(resp.Items) == 0 {
		b.WriteString(Dim("Nothing to plan."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, len(resp.Items))
		for i, item := range resp.Items {
			rows[i] = ScheduleRow(item)
		}
		b.WriteString(RenderTable(ScheduleHeaders, rows))
	}

	if resp.Stats.Warnings > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf(
			"%d deliveries cannot get their minimum study days before the deadline.", resp.Stats.Warnings)))
		b.WriteString("\n")
	}
	for _, r := range resp.Rejections {
		b.WriteString(StyleRed.Render(fmt.Sprintf("Override for %s ignored: %s", TruncID(r.DeliveryID), r.Reason)))
		b.WriteString("\n")
	}
	for _, id := range resp.Excluded {
		b.WriteString(Dim(fmt.Sprintf("Skipped %s: due date is not a valid date", TruncID(id))))
		b.WriteString("\n")
	}
	return b.String()
}
