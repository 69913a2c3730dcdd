package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/plazo/internal/app"
	"github.com/alexanderramin/plazo/internal/cli/formatter"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/scheduler"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Browse the study schedule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("board needs an interactive terminal; use 'plazo schedule' instead")
			}
			ctx := cmd.Context()
			_, err := tea.NewProgram(newBoardModel(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}

// scheduleLoadedMsg carries a freshly built schedule into the board.
type scheduleLoadedMsg struct {
	resp *app.ScheduleResponse
	err  error
}

type boardKeyMap struct {
	NextSubject key.Binding
	PrevSubject key.Binding
	Sort        key.Binding
	Refresh     key.Binding
	Quit        key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSubject, k.Sort, k.Refresh, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextSubject, k.PrevSubject}, {k.Sort, k.Refresh, k.Quit}}
}

var boardKeys = boardKeyMap{
	NextSubject: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next subject")),
	PrevSubject: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous subject")),
	Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var boardSorts = []domain.ScheduleSort{domain.SortByStart, domain.SortByDate, domain.SortBySubject}

// boardModel is a read-only schedule browser. The subject filter is applied
// locally so statistics always describe the whole schedule.
type boardModel struct {
	ctx  context.Context
	app  *App
	keys boardKeyMap
	help help.Model

	table    table.Model
	resp     *app.ScheduleResponse
	subjects []string // index 0 is "all subjects"
	subject  int
	sort     int
	loading  bool
	err      error
}

func newBoardModel(ctx context.Context, a *App) *boardModel {
	t := table.New(
		table.WithColumns(boardColumns()),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorDim)
	t.SetStyles(styles)

	return &boardModel{
		ctx:      ctx,
		app:      a,
		keys:     boardKeys,
		help:     help.New(),
		table:    t,
		subjects: []string{""},
		loading:  true,
	}
}

func boardColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Subject", Width: 14},
		{Title: "Delivery", Width: 24},
		{Title: "Due", Width: 10},
		{Title: "Study window", Width: 23},
		{Title: "Days", Width: 4},
		{Title: "", Width: 3},
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load()
}

func (m *boardModel) load() tea.Cmd {
	a, ctx, sortBy := m.app, m.ctx, boardSorts[m.sort]
	return func() tea.Msg {
		resp, err := buildSchedule(ctx, a, "", string(sortBy), nil)
		return scheduleLoadedMsg{resp: resp, err: err}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-8, 3))
		m.help.Width = msg.Width
		return m, nil

	case scheduleLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.resp = msg.resp
			m.subjects = subjectsOf(msg.resp.Items)
			if m.subject >= len(m.subjects) {
				m.subject = 0
			}
			m.refreshRows()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextSubject):
			m.subject = (m.subject + 1) % len(m.subjects)
			m.refreshRows()
			return m, nil
		case key.Matches(msg, m.keys.PrevSubject):
			m.subject = (m.subject - 1 + len(m.subjects)) % len(m.subjects)
			m.refreshRows()
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.sort = (m.sort + 1) % len(boardSorts)
			m.loading = true
			return m, m.load()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *boardModel) refreshRows() {
	if m.resp == nil {
		return
	}
	filter := m.subjects[m.subject]
	rows := make([]table.Row, 0, len(m.resp.Items))
	for _, item := range m.resp.Items {
		if filter != "" && !strings.EqualFold(item.Subject, filter) {
			continue
		}
		rows = append(rows, boardRow(item))
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// boardRow renders plain cells; the table widget measures raw text.
func boardRow(item domain.StudySchedule) table.Row {
	window := scheduler.FormatDate(item.StartDate) + " → " + scheduler.FormatDate(item.EndDate)
	days := fmt.Sprintf("%d", item.StudyDays)
	flag := ""
	switch {
	case item.Completed:
		window, days, flag = "completed", "-", "✓"
	case item.Warning:
		flag = "⚠"
	case item.Overridden:
		flag = "✎"
	}
	return table.Row{item.DisplayID(), item.Subject, item.Name, item.Date, window, days, flag}
}

// subjectsOf returns "" followed by the distinct subjects, case-insensitively
// deduplicated and sorted.
func subjectsOf(items []domain.StudySchedule) []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, item := range items {
		k := strings.ToLower(item.Subject)
		if seen[k] {
			continue
		}
		seen[k] = true
		subjects = append(subjects, item.Subject)
	}
	sort.Slice(subjects, func(i, j int) bool {
		return strings.ToLower(subjects[i]) < strings.ToLower(subjects[j])
	})
	return append([]string{""}, subjects...)
}

func (m *boardModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Study board"))
	b.WriteString("\n")

	filter := "all subjects"
	if s := m.subjects[m.subject]; s != "" {
		filter = s
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("%s · sorted by %s", filter, boardSorts[m.sort])))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading && m.resp == nil:
		b.WriteString(formatter.Dim("Loading…"))
		b.WriteString("\n")
	case len(m.table.Rows()) == 0:
		b.WriteString(formatter.Dim("Nothing to plan."))
		b.WriteString("\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.resp != nil {
		s := m.resp.Stats
		b.WriteString("\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("%d upcoming · %d this week · %d overdue · %d tight",
			s.Upcoming, s.ThisWeek, s.Overdue, s.Warnings)))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
