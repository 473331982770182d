package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/repcoach/internal/db"
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/alexanderramin/repcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var benchKey = UnitKey{Date: testutil.Date(2024, time.January, 1), Day: domain.DayA, Exercise: "Bench"}

func setNumbers(records []domain.SetRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.SetNumber
	}
	return out
}

func TestSQLiteSetRepo_AppendAssignsContiguousNumbers(t *testing.T) {
	repo := NewSQLiteSetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := testutil.NewTestSet("Bench", testutil.WithSetNumber(99))
		require.NoError(t, repo.AppendNext(ctx, rec))
		assert.Equal(t, i+1, rec.SetNumber)
	}

	// A different unit starts again at 1.
	other := testutil.NewTestSet("Bench", testutil.WithDay(domain.DayB))
	require.NoError(t, repo.AppendNext(ctx, other))
	assert.Equal(t, 1, other.SetNumber)

	sets, err := repo.ListUnit(ctx, benchKey)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, setNumbers(sets))
}

func TestSQLiteSetRepo_UndoMakesNumberReusable(t *testing.T) {
	repo := NewSQLiteSetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, reps := range []int{10, 10, 11} {
		require.NoError(t, repo.AppendNext(ctx, testutil.NewTestSet("Bench", testutil.WithReps(reps))))
	}

	removed, err := repo.DeleteLast(ctx, benchKey)
	require.NoError(t, err)
	assert.Equal(t, 3, removed.SetNumber)
	assert.Equal(t, 11, removed.Reps)

	next := testutil.NewTestSet("Bench", testutil.WithReps(9))
	require.NoError(t, repo.AppendNext(ctx, next))
	assert.Equal(t, 3, next.SetNumber)

	sets, err := repo.ListUnit(ctx, benchKey)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, setNumbers(sets))
	assert.Equal(t, 9, sets[2].Reps)
}

func TestSQLiteSetRepo_DeleteLastEmptyUnit(t *testing.T) {
	repo := NewSQLiteSetRepo(testutil.NewTestDB(t))

	_, err := repo.DeleteLast(context.Background(), benchKey)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLiteSetRepo_RoundTripsFields(t *testing.T) {
	repo := NewSQLiteSetRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	in := testutil.NewTestSet("Lateral Raise",
		testutil.WithDay(domain.DayB),
		testutil.WithWeight("7.25"),
		testutil.WithReps(14),
		testutil.WithRPE(0),
		testutil.WithNote("cable"),
	)
	require.NoError(t, repo.AppendNext(ctx, in))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, domain.DayB, got.Day)
	assert.Equal(t, "7.25", got.Weight.String())
	assert.Equal(t, 14, got.Reps)
	assert.Equal(t, 0.0, got.RPE)
	assert.Equal(t, "cable", got.Note)
	assert.True(t, got.Date.Equal(testutil.Date(2024, time.January, 1)))
	assert.True(t, got.CreatedAt.Equal(in.CreatedAt))
}

func TestSQLiteSetRepo_ListOrdering(t *testing.T) {
	repo := NewSQLiteSetRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	logged := []*domain.SetRecord{
		testutil.NewTestSet("Row", testutil.WithDate(testutil.Date(2024, 1, 3)), testutil.WithDay(domain.DayB)),
		testutil.NewTestSet("Bench", testutil.WithDate(testutil.Date(2024, 1, 1))),
		testutil.NewTestSet("Bench", testutil.WithDate(testutil.Date(2024, 1, 1))),
	}
	for i, rec := range logged {
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.AppendNext(ctx, rec))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Bench", "Bench", "Row"}, []string{all[0].Exercise, all[1].Exercise, all[2].Exercise})
	assert.Equal(t, []int{1, 2, 1}, setNumbers(all))

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, logged[2].ID, recent[0].ID)
	assert.Equal(t, logged[1].ID, recent[1].ID)

	unlimited, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, unlimited, 3)
}

func TestSQLiteTransactor_RollsBackOnError(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	tr := NewSQLiteTransactor(testutil.NewTestUoW(database))
	boom := errors.New("boom")

	err := tr.WithinTx(ctx, func(ctx context.Context, sets SetRepo) error {
		require.NoError(t, sets.AppendNext(ctx, testutil.NewTestSet("Bench")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	all, err := NewSQLiteSetRepo(database).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLiteTransactor_InjectedWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := &testutil.FailOnNthWriteUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	tr := NewSQLiteTransactor(uow)

	err := tr.WithinTx(ctx, func(ctx context.Context, sets SetRepo) error {
		for i := 0; i < 3; i++ {
			if err := sets.AppendNext(ctx, testutil.NewTestSet("Bench")); err != nil {
				return err
			}
		}
		return nil
	})
	require.Error(t, err)

	all, err := NewSQLiteSetRepo(database).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "first append must be rolled back with the failed one")
}

func TestSQLiteSetRepo_ConcurrentAppendsStayContiguous(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	tr := NewSQLiteTransactor(db.NewSQLiteUnitOfWork(database))

	retry := func(fn func() error) error {
		const maxRetries = 10
		var err error
		for attempt := 0; attempt < maxRetries; attempt++ {
			if err = fn(); err == nil {
				return nil
			}
			time.Sleep(time.Millisecond * time.Duration(1<<attempt))
		}
		return err
	}

	const workers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := retry(func() error {
				return tr.WithinTx(ctx, func(ctx context.Context, sets SetRepo) error {
					return sets.AppendNext(ctx, testutil.NewTestSet("Bench"))
				})
			})
			if err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	sets, err := NewSQLiteSetRepo(database).ListUnit(ctx, benchKey)
	require.NoError(t, err)
	require.Len(t, sets, workers)
	for i, s := range sets {
		assert.Equal(t, i+1, s.SetNumber)
	}
}
