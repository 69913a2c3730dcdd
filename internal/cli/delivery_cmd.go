package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plazo/internal/cli/formatter"
	"github.com/alexanderramin/plazo/internal/domain"
	"github.com/alexanderramin/plazo/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newDeliveryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delivery",
		Aliases: []string{"d"},
		Short:   "Manage deliveries (exams, assignments, projects)",
	}

	cmd.AddCommand(
		newDeliveryAddCmd(app),
		newDeliveryListCmd(app),
		newDeliveryShowCmd(app),
		newDeliveryEditCmd(app),
		newDeliveryDoneCmd(app),
		newDeliveryReopenCmd(app),
		newDeliveryRemoveCmd(app),
	)

	return cmd
}

func newDeliveryAddCmd(app *App) *cobra.Command {
	var in deliveryInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a delivery",
		Long:  "Add a delivery. Without flags on a terminal an interactive form opens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if cmd.Flags().NFlag() == 0 && app.interactive() {
				subjects, err := app.Deliveries.Subjects(ctx)
				if err != nil {
					return err
				}
				if err := deliveryForm(&in, subjects).Run(); err != nil {
					return err
				}
			}

			priority, err := domain.ParsePriority(in.Priority)
			if err != nil {
				return err
			}
			d := &domain.Delivery{
				Subject:    in.Subject,
				Name:       in.Name,
				Date:       strings.TrimSpace(in.Due),
				StudyStart: strings.TrimSpace(in.StudyStart),
				Priority:   priority,
			}
			if err := app.Deliveries.Create(ctx, d); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s due %s [%s]\n",
				formatter.Subject(d.Subject, d.Color), d.Name, d.Date, d.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Subject, "subject", "", "Subject the delivery belongs to")
	cmd.Flags().StringVar(&in.Name, "name", "", "Delivery name")
	cmd.Flags().StringVar(&in.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Priority, "priority", "normal", "Priority: low, normal or high")
	cmd.Flags().StringVar(&in.StudyStart, "start", "", "Advisory study start (YYYY-MM-DD)")

	return cmd
}

func newDeliveryListCmd(app *App) *cobra.Command {
	var subject string
	var pending bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deliveries by due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			deliveries, err := app.Deliveries.List(cmd.Context(), repository.DeliveryFilter{
				Subject:     subject,
				PendingOnly: pending,
			})
			if err != nil {
				return err
			}

			if len(deliveries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No deliveries found.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDeliveryList(deliveries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Only show this subject")
	cmd.Flags().BoolVar(&pending, "pending", false, "Hide completed deliveries")

	return cmd
}

func newDeliveryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show delivery details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeliveryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deliveries.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDelivery(d))
			return nil
		},
	}
}

func newDeliveryEditCmd(app *App) *cobra.Command {
	var in deliveryInput

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a delivery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeliveryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deliveries.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.NFlag() == 0 {
				return fmt.Errorf("nothing to change (use --subject, --name, --due, --priority or --start)")
			}
			setIfChanged(flags, "subject", &d.Subject, in.Subject)
			setIfChanged(flags, "name", &d.Name, in.Name)
			setIfChanged(flags, "due", &d.Date, in.Due)
			if flags.Changed("priority") {
				if d.Priority, err = domain.ParsePriority(in.Priority); err != nil {
					return err
				}
			}
			setIfChanged(flags, "start", &d.StudyStart, in.StudyStart)

			if err := app.Deliveries.Update(ctx, d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s [%s]\n", d.Name, d.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Subject, "subject", "", "New subject")
	cmd.Flags().StringVar(&in.Name, "name", "", "New name")
	cmd.Flags().StringVar(&in.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Priority, "priority", "", "New priority: low, normal or high")
	cmd.Flags().StringVar(&in.StudyStart, "start", "", "New study start hint; empty clears it")

	return cmd
}

// setIfChanged copies value into dst when the flag was given on the command line.
func setIfChanged(flags *pflag.FlagSet, name string, dst *string, value string) {
	if flags.Changed(name) {
		*dst = strings.TrimSpace(value)
	}
}

func newDeliveryDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a delivery completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeliveryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Deliveries.Complete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newDeliveryReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen ID",
		Short: "Mark a completed delivery pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeliveryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Deliveries.Reopen(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newDeliveryRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a delivery",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeliveryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deliveries.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				confirmed := false
				if err := wizardConfirm(fmt.Sprintf("Delete %q?", d.Name), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Deliveries.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s [%s]\n", d.Name, d.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
