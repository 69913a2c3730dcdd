package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plazo/internal/cli/formatter"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// plazoHuhTheme returns a huh theme using the Gruvbox palette.
func plazoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// deliveryInput collects the string fields of a delivery form.
type deliveryInput struct {
	Subject    string
	Name       string
	Due        string
	Priority   string
	StudyStart string
}

// deliveryForm builds the interactive add form. Known subjects are offered
// as completions so colours stay consistent.
func deliveryForm(in *deliveryInput, subjects []string) *huh.Form {
	if in.Priority == "" {
		in.Priority = string(domain.PriorityNormal)
	}

	priorities := make([]huh.Option[string], 0, len(domain.AllPriorities))
	for _, p := range domain.AllPriorities {
		label := strings.ToUpper(string(p[:1])) + string(p[1:])
		priorities = append(priorities, huh.NewOption(label, string(p)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Algebra").
				Suggestions(subjects).
				Value(&in.Subject).
				Validate(validateRequired("subject")),
			huh.NewInput().
				Title("Delivery").
				Placeholder("Midterm exam").
				Value(&in.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD)").
				Placeholder(time.Now().AddDate(0, 0, 14).Format(domain.DateLayout)).
				Value(&in.Due).
				Validate(validateRequiredDate),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorities...).
				Value(&in.Priority),
			huh.NewInput().
				Title("Study start hint (optional)").
				Value(&in.StudyStart).
				Validate(validateOptionalDate),
		),
	).WithTheme(plazoHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(plazoHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateRequiredDate accepts a YYYY-MM-DD date string.
func validateRequiredDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("date is required")
	}
	return validateOptionalDate(s)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
