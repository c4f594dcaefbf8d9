package repo_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LourceDev/3pages/internal/model"
	"github.com/LourceDev/3pages/internal/pkg/dateutil"
	appErr "github.com/LourceDev/3pages/internal/pkg/errors"
	"github.com/LourceDev/3pages/internal/repo"
	"github.com/LourceDev/3pages/test/testutil"
)

func createTestUser(t *testing.T, users *repo.UserRepo) *model.User {
	t.Helper()
	user := &model.User{
		Email:        testutil.RandomEmail(t),
		Name:         "tester",
		PasswordHash: "x",
	}
	require.NoError(t, users.Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func mustDate(t *testing.T, s string) dateutil.Date {
	t.Helper()
	d, err := dateutil.Parse(s)
	require.NoError(t, err)
	return d
}

func TestUserCreateConflict(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)

	user := createTestUser(t, users)
	dup := &model.User{Email: user.Email, Name: "other", PasswordHash: "y"}
	require.ErrorIs(t, users.Create(context.Background(), dup), appErr.ErrConflict)

	fetched, err := users.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	require.Equal(t, user.ID, fetched.ID)
	require.Equal(t, "tester", fetched.Name)

	_, err = users.GetByID(context.Background(), -1)
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestEntryUpsertIdempotence(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)
	entries := repo.NewEntryRepo(conn)
	user := createTestUser(t, users)
	date := mustDate(t, "2025-07-26")

	first := &model.Entry{UserID: user.ID, Date: date, Text: json.RawMessage(`{"v":1}`), WordCount: 1}
	require.NoError(t, entries.Upsert(context.Background(), first))
	second := &model.Entry{UserID: user.ID, Date: date, Text: json.RawMessage(`{"v":2}`), WordCount: 2}
	require.NoError(t, entries.Upsert(context.Background(), second))

	// created_at survives the replace.
	require.True(t, first.CreatedAt.Equal(second.CreatedAt))

	got, err := entries.Get(context.Background(), user.ID, date)
	require.NoError(t, err)
	require.JSONEq(t, `{"v":2}`, string(got.Text))
	require.Equal(t, int64(2), got.WordCount)

	dates, err := entries.ListDates(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, dates, 1)
}

func TestEntryConcurrentUpserts(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)
	entries := repo.NewEntryRepo(conn)
	user := createTestUser(t, users)
	date := mustDate(t, "2025-07-26")

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			entry := &model.Entry{UserID: user.ID, Date: date, Text: json.RawMessage(`{}`), WordCount: n}
			errs <- entries.Upsert(context.Background(), entry)
		}(int64(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	dates, err := entries.ListDates(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, dates, 1)
}

func TestEntryListDatesOrdered(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)
	entries := repo.NewEntryRepo(conn)
	user := createTestUser(t, users)

	for _, s := range []string{"2025-07-26", "2025-01-01", "2025-12-31"} {
		entry := &model.Entry{UserID: user.ID, Date: mustDate(t, s), Text: json.RawMessage(`{}`)}
		require.NoError(t, entries.Upsert(context.Background(), entry))
	}

	dates, err := entries.ListDates(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	require.Equal(t, "2025-01-01", dates[0].String())
	require.Equal(t, "2025-07-26", dates[1].String())
	require.Equal(t, "2025-12-31", dates[2].String())
}

func TestEntryDeleteIdempotent(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	users := repo.NewUserRepo(conn)
	entries := repo.NewEntryRepo(conn)
	user := createTestUser(t, users)
	date := mustDate(t, "2025-07-26")

	entry := &model.Entry{UserID: user.ID, Date: date, Text: json.RawMessage(`{}`)}
	require.NoError(t, entries.Upsert(context.Background(), entry))
	require.NoError(t, entries.Delete(context.Background(), user.ID, date))

	_, err := entries.Get(context.Background(), user.ID, date)
	require.ErrorIs(t, err, appErr.ErrNotFound)

	require.NoError(t, entries.Delete(context.Background(), user.ID, date))
}
