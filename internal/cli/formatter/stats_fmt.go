package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatStats renders schedule statistics.
func FormatStats(s domain.StudyStats) string {
	var done float64
	if s.Total > 0 {
		done = float64(s.Completed) / float64(s.Total)
	}

	lines := []string{
		fmt.Sprintf("Total       %d", s.Total),
		fmt.Sprintf("Upcoming    %d", s.Upcoming),
		fmt.Sprintf("This week   %s", StyleYellow.Render(fmt.Sprintf("%d", s.ThisWeek))),
		fmt.Sprintf("Overdue     %s", countStyled(s.Overdue, StyleRed)),
		fmt.Sprintf("Warnings    %s", countStyled(s.Warnings, StyleYellow)),
		fmt.Sprintf("Completed   %d", s.Completed),
		"",
		RenderProgress(done, 24),
	}
	return RenderBox("Stats", strings.Join(lines, "\n"))
}

func countStyled(n int, style lipgloss.Style) string {
	text := fmt.Sprintf("%d", n)
	if n == 0 {
		return StyleGreen.Render(text)
	}
	return style.Render(text)
}
