package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/plan"
	"github.com/alexanderramin/repcoach/internal/repository"
	"github.com/alexanderramin/repcoach/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	sets    *repository.SQLiteSetRepo
	log     LogService
	coach   CoachService
	deload  DeloadService
	catalog *plan.Catalog
	events  *recordingObserver
}

func testCatalog() *plan.Catalog {
	return &plan.Catalog{
		Days: map[domain.Day][]domain.ExerciseSpec{
			domain.DayA: {
				{Name: "Bench", RepRangeLow: 6, RepRangeHigh: 10, WeightIncrement: decimal.RequireFromString("2.5"), Category: domain.CategoryMain},
				{Name: "Curl", RepRangeLow: 10, RepRangeHigh: 15, WeightIncrement: decimal.RequireFromString("1"), Category: domain.CategoryIsolation},
			},
			domain.DayB: {
				{Name: "Row", RepRangeLow: 8, RepRangeHigh: 12, WeightIncrement: decimal.RequireFromString("2.5"), Category: domain.CategoryMain},
			},
		},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	sets := repository.NewSQLiteSetRepo(database)
	tx := repository.NewSQLiteTransactor(testutil.NewTestUoW(database))
	catalog := testCatalog()
	events := &recordingObserver{}
	return &fixture{
		sets:    sets,
		log:     NewLogService(sets, tx, events),
		coach:   NewCoachService(sets, catalog, events),
		deload:  NewDeloadService(sets, catalog, events),
		catalog: catalog,
		events:  events,
	}
}

func (f *fixture) logSets(t *testing.T, day domain.Day, exercise string, date time.Time, weight string, reps []int, rpe float64) {
	t.Helper()
	for _, n := range reps {
		_, err := f.log.LogSet(context.Background(), app.LogSetRequest{
			Date:     &date,
			Day:      day,
			Exercise: exercise,
			Weight:   decimal.RequireFromString(weight),
			Reps:     n,
			RPE:      rpe,
		})
		require.NoError(t, err)
	}
}

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
