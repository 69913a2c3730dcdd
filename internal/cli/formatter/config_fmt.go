package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plazo/internal/domain"
)

// FormatConfig renders planner settings.
func FormatConfig(cfg domain.PlannerConfig, semesterStart string, defaulted bool) string {
	start := semesterStart
	if defaulted {
		start += " " + Dim("(not configured, using today)")
	}
	lines := []string{
		fmt.Sprintf("Semester start     %s", start),
		fmt.Sprintf("Base study days    %d", cfg.BaseStudyDays),
		fmt.Sprintf("Allocation window  %d days", cfg.AllocationWindowDays),
		"",
		Bold("Priority variations"),
	}
	for _, p := range domain.AllPriorities {
		lines = append(lines, fmt.Sprintf("  %-8s %s", p, SignedDays(cfg.Variation(p))))
	}
	return RenderBox("Planner settings", strings.Join(lines, "\n"))
}
