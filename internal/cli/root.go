package cli

import (
	"time"

	"github.com/alexanderramin/plazo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Deliveries service.DeliveryService
	Settings   service.SettingsService
	Schedule   service.ScheduleService

	// IsInteractive reports whether stdin is a terminal. Forms and the board
	// only run when it returns true. Nil means non-interactive.
	IsInteractive func() bool

	// Now is the clock for relative dates and statistics. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "plazo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "plazo",
		Short:         "Study planner that spreads preparation time across academic deadlines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDeliveryCmd(app),
		newScheduleCmd(app),
		newStatsCmd(app),
		newBoardCmd(app),
		newConfigCmd(app),
		newSemesterCmd(app),
	)

	return root
}
