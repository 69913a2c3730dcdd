package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/plazo/internal/cli"
	"github.com/alexanderramin/plazo/internal/db"
	"github.com/alexanderramin/plazo/internal/logger"
	"github.com/alexanderramin/plazo/internal/repository"
	"github.com/alexanderramin/plazo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	// Determine DB path: env var or default ~/.plazo/plazo.db
	dbPath := os.Getenv("PLAZO_DB")
	if dbPath == "" {
		dbPath = filepath.Join(home, ".plazo", "plazo.db")
	}

	logDir := os.Getenv("PLAZO_LOG_DIR")
	if logDir == "" {
		logDir = filepath.Join(home, ".plazo", "logs")
	}
	debug, _ := strconv.ParseBool(os.Getenv("PLAZO_DEBUG"))

	log, err := logger.New(logger.Config{Debug: debug, Dir: logDir})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer log.Close()

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	log.Debug("database ready", "path", dbPath)

	// Wire repositories
	deliveryRepo := repository.NewSQLiteDeliveryRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(log.Slog())
	settingsSvc := service.NewSettingsService(settingsRepo, uow, observer)

	app := &cli.App{
		Deliveries: service.NewDeliveryService(deliveryRepo, observer),
		Settings:   settingsSvc,
		Schedule:   service.NewScheduleService(deliveryRepo, settingsSvc, observer),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		log.Error("command failed", "err", err)
		return err
	}
	return nil
}
