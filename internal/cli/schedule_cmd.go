package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/plazo/internal/app"
	"github.com/alexanderramin/plazo/internal/cli/formatter"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/importer"
	"github.com/alexanderramin/plazo/internal/scheduler"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var subject, sortBy, overridesPath string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the proposed study window for every delivery",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := loadOverrides(overridesPath)
			if err != nil {
				return err
			}

			resp, err := buildSchedule(cmd.Context(), app, subject, sortBy, overrides)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Only show this subject")
	cmd.Flags().StringVar(&sortBy, "sort", string(domain.SortByStart), "Order by start, date or subject")
	cmd.Flags().StringVar(&overridesPath, "overrides", "", "JSON file with externally proposed study windows")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize upcoming, overdue and at-risk deliveries",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := buildSchedule(cmd.Context(), app, "", "", nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(resp.Stats))
			return nil
		},
	}
}

func buildSchedule(ctx context.Context, a *App, subject, sortBy string, overrides map[string]scheduler.Override) (*app.ScheduleResponse, error) {
	today := a.now()
	req := app.NewScheduleRequest()
	req.Subject = subject
	if sortBy != "" {
		req.SortBy = domain.ScheduleSort(sortBy)
	}
	req.Overrides = overrides
	req.Today = &today
	return a.Schedule.Build(ctx, req)
}

// loadOverrides reads, validates and converts an overrides file. An empty
// path yields no overrides.
func loadOverrides(path string) (map[string]scheduler.Override, error) {
	if path == "" {
		return nil, nil
	}
	doc, err := importer.LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateOverrides(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid overrides file %s: %w", path, errors.Join(errs...))
	}
	return importer.ToOverrideMap(doc), nil
}
