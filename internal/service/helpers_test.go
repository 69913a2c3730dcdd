package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/plazo/internal/repository"
	"github.com/alexanderramin/plazo/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type testServices struct {
	db         *sql.DB
	deliveries DeliveryService
	settings   SettingsService
	schedule   ScheduleService
	observer   *recordingObserver
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	deliveryRepo := repository.NewSQLiteDeliveryRepo(database)
	settings := NewSettingsService(repository.NewSQLiteSettingsRepo(database), testutil.NewTestUoW(database), obs)
	return testServices{
		db:         database,
		deliveries: NewDeliveryService(deliveryRepo, obs),
		settings:   settings,
		schedule:   NewScheduleService(deliveryRepo, settings, obs),
		observer:   obs,
	}
}

func day(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}
