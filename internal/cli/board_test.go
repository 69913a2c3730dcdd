package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/teatest"
	"github.com/alexanderramin/plazo/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newBoardModel(context.Background(), app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func TestBoard_LoadsSchedule(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)

	d := newBoardDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "STUDY BOARD")
	assert.Contains(t, view, "all subjects · sorted by start")
	assert.Contains(t, view, "Midterm")
	assert.Contains(t, view, "Essay")
	assert.Contains(t, view, "2 upcoming")
}

func TestBoard_TabCyclesSubjects(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)
	d := newBoardDriver(t, app)

	d.Press(tea.KeyTab)
	assert.Contains(t, d.View(), "Algebra · sorted by start")
	assert.Contains(t, d.View(), "Midterm")
	assert.NotContains(t, d.View(), "Essay")
	assert.Contains(t, d.View(), "2 upcoming", "stats still cover every subject")

	d.Press(tea.KeyTab)
	assert.True(t, d.ViewContains("History · sorted by start", "Essay"))
	assert.NotContains(t, d.View(), "Midterm")

	d.Press(tea.KeyTab)
	assert.Contains(t, d.View(), "all subjects")

	d.Press(tea.KeyShiftTab)
	assert.Contains(t, d.View(), "History")
}

func TestBoard_SortCycles(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)
	d := newBoardDriver(t, app)

	d.PressKey('s')
	assert.Contains(t, d.View(), "sorted by date")
	d.PressKey('s')
	assert.Contains(t, d.View(), "sorted by subject")
	d.PressKey('s')
	assert.Contains(t, d.View(), "sorted by start")
}

func TestBoard_RefreshPicksUpChanges(t *testing.T) {
	app := testApp(t)
	seedSchedule(t, app)
	d := newBoardDriver(t, app)
	assert.NotContains(t, d.View(), "Quiz")

	seedDelivery(t, app, "cccc3333", "Quiz", testutil.WithDueDate("2025-03-20"), testutil.WithPriority(domain.PriorityHigh))
	d.PressKey('r')

	assert.Contains(t, d.View(), "Quiz")
}

func TestBoard_EmptyAndError(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)
	assert.Contains(t, d.View(), "Nothing to plan.")

	d.Send(scheduleLoadedMsg{err: errors.New("database is locked")})
	assert.Contains(t, d.View(), "Error: database is locked")
}

func TestBoard_Quit(t *testing.T) {
	app := testApp(t)
	d := newBoardDriver(t, app)

	d.PressKey('q')
	require.True(t, d.Quitting)
}

func TestSubjectsOf(t *testing.T) {
	items := []domain.StudySchedule{
		{Delivery: domain.Delivery{Subject: "history"}},
		{Delivery: domain.Delivery{Subject: "Algebra"}},
		{Delivery: domain.Delivery{Subject: "History"}},
	}
	assert.Equal(t, []string{"", "Algebra", "history"}, subjectsOf(items))
}
