package cli

import (
	"fmt"

	"github.com/alexanderramin/plazo/internal/cli/formatter"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change planner settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
		newConfigResetCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show planner settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(cmd, app)
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var base, high, normal, low, window int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change planner settings",
		Long: "Change planner settings. Only the flags given are changed. " +
			"Priority deltas are signed day counts added to the base.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if flags.NFlag() == 0 {
				return fmt.Errorf("nothing to change (use --base, --high, --normal, --low or --window)")
			}

			cfg, err := app.Settings.Config(ctx)
			if err != nil {
				return err
			}
			if flags.Changed("base") {
				cfg.BaseStudyDays = base
			}
			if flags.Changed("window") {
				cfg.AllocationWindowDays = window
			}
			deltas := []struct {
				flag  string
				p     domain.Priority
				value int
			}{
				{"high", domain.PriorityHigh, high},
				{"normal", domain.PriorityNormal, normal},
				{"low", domain.PriorityLow, low},
			}
			for _, d := range deltas {
				if flags.Changed(d.flag) {
					cfg.PriorityVariations[d.p] = d.value
				}
			}

			if _, err := app.Settings.UpdateConfig(ctx, cfg); err != nil {
				return err
			}
			return printConfig(cmd, app)
		},
	}

	cmd.Flags().IntVar(&base, "base", domain.DefaultBaseStudyDays, "Base study days per delivery")
	cmd.Flags().IntVar(&high, "high", 1, "Extra days wanted by high priority deliveries")
	cmd.Flags().IntVar(&normal, "normal", 0, "Extra days wanted by normal priority deliveries")
	cmd.Flags().IntVar(&low, "low", -1, "Extra days wanted by low priority deliveries")
	cmd.Flags().IntVar(&window, "window", domain.DefaultAllocationWindowDays, "Days past a due date that spare time may flow to")

	return cmd
}

func newConfigResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings and clear the semester start",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings restored to defaults.")
			return nil
		},
	}
}

func printConfig(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	cfg, err := app.Settings.Config(ctx)
	if err != nil {
		return err
	}
	start, defaulted, err := app.Settings.SemesterStart(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConfig(cfg, start, defaulted))
	return nil
}

func newSemesterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semester",
		Short: "Show or set the semester start date",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the semester start date",
			RunE: func(cmd *cobra.Command, args []string) error {
				start, defaulted, err := app.Settings.SemesterStart(cmd.Context())
				if err != nil {
					return err
				}
				if defaulted {
					fmt.Fprintf(cmd.OutOrStdout(), "Semester start not set; planning from today (%s).\n", start)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Semester starts %s.\n", start)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set DATE",
			Short: "Set the semester start date (YYYY-MM-DD)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Settings.SetSemesterStart(cmd.Context(), args[0]); err != nil {
					return err
				}
				start, _, err := app.Settings.SemesterStart(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Semester starts %s.\n", start)
				return nil
			},
		},
	)

	return cmd
}
