package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"today at midnight", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestPriorityBadge(t *testing.T) {
	assert.Contains(t, stripANSI(PriorityBadge(domain.PriorityHigh)), "high")
	assert.Contains(t, stripANSI(PriorityBadge(domain.PriorityNormal)), "normal")
	assert.Contains(t, stripANSI(PriorityBadge(domain.PriorityLow)), "low")
}

func TestWarningPill(t *testing.T) {
	assert.Empty(t, WarningPill(false))
	assert.Contains(t, stripANSI(WarningPill(true)), "tight")
}

func TestSignedDays(t *testing.T) {
	assert.Equal(t, "+2", SignedDays(2))
	assert.Equal(t, "0", SignedDays(0))
	assert.Equal(t, "-1", SignedDays(-1))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abc", TruncID("abc"))
	assert.Equal(t, "12345678", TruncID("1234567890"))
}

func TestSubject_FallsBackWithoutHex(t *testing.T) {
	assert.Equal(t, "■ Algebra", stripANSI(Subject("Algebra", "")))
	assert.Equal(t, "■ Algebra", stripANSI(Subject("Algebra", "#3b82f6")))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{
			{StyleRed.Render("long cell"), "x"},
			{"s", "y"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
	assert.Equal(t, strings.Index(lines[0], "B"), strings.Index(lines[2], "x"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "0%"},
		{"half", 0.5, "50%"},
		{"full", 1, "100%"},
		{"over clamps", 1.5, "100%"},
		{"negative clamps", -0.5, "0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, 10))
			assert.True(t, strings.HasPrefix(got, "["))
			assert.Contains(t, got, tt.want)
			assert.Equal(t, 10, strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
		})
	}
}
