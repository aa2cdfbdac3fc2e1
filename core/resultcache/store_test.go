package resultcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"follow-checker/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	err := store.Save(ctx, LastResultKey, Entry{
		NotFollowingBack: []string{"alice", "carol", "alice"},
		NotFollowedBack:  []string{"dave"},
		Both:             true,
	})
	require.NoError(t, err)

	entry, err := store.Load(ctx, LastResultKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "carol", "alice"}, entry.NotFollowingBack)
	assert.Equal(t, []string{"dave"}, entry.NotFollowedBack)
	assert.True(t, entry.Both)
	assert.True(t, fixed.Equal(entry.UpdatedAt))
}

func TestGormStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, LastResultKey, Entry{NotFollowingBack: []string{"old"}, NotFollowedBack: []string{"x"}, Both: true}))
	require.NoError(t, store.Save(ctx, LastResultKey, Entry{NotFollowingBack: []string{"new1", "new2"}}))

	entry, err := store.Load(ctx, LastResultKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"new1", "new2"}, entry.NotFollowingBack)
	assert.Nil(t, entry.NotFollowedBack)
	assert.False(t, entry.Both)
}

func TestGormStore_EmptyResult(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, LastResultKey, Entry{NotFollowingBack: []string{}}))

	entry, err := store.Load(ctx, LastResultKey)
	require.NoError(t, err)
	assert.NotNil(t, entry.NotFollowingBack)
	assert.Empty(t, entry.NotFollowingBack)
}

func TestGormStore_NotFoundAndDelete(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	_, err := store.Load(ctx, LastResultKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, LastResultKey, Entry{NotFollowingBack: []string{"a"}}))
	require.NoError(t, store.Delete(ctx, LastResultKey))
	require.NoError(t, store.Delete(ctx, LastResultKey), "deleting an empty slot is fine")

	_, err = store.Load(ctx, LastResultKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	row := CachedResult{Slot: LastResultKey, NotFollowingBack: "{not json", UpdatedAt: time.Now()}
	require.NoError(t, store.db.Create(&row).Error)

	_, err := store.Load(ctx, LastResultKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt result list")
}

func TestGormStore_LoadDatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewGormStore(db)

	mock.ExpectQuery("SELECT \\* FROM `result_cache`").WillReturnError(errors.New("connection reset"))

	_, err := store.Load(context.Background(), LastResultKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Save(ctx, LastResultKey, Entry{NotFollowingBack: []string{"alice", "bob"}}))

	var g errgroup.Group
	entries := make([]*Entry, 8)
	for i := range entries {
		g.Go(func() error {
			entry, err := store.Load(ctx, LastResultKey)
			entries[i] = entry
			return err
		})
	}
	require.NoError(t, g.Wait())

	// Each caller owns its slices even when the query was shared
	entries[0].NotFollowingBack[0] = "mutated"
	for _, entry := range entries[1:] {
		assert.Equal(t, []string{"alice", "bob"}, entry.NotFollowingBack)
	}
}

func TestGormStore_LoadCallerCancelled(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Save(context.Background(), LastResultKey, Entry{NotFollowingBack: []string{"alice"}}))

	err := store.db.Callback().Query().Before("gorm:query").Register("test:slow_query", func(*gorm.DB) {
		time.Sleep(100 * time.Millisecond)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := store.Load(ctx, LastResultKey)
		first <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	// The query started by the first caller is still running
	entry, err := store.Load(context.Background(), LastResultKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, entry.NotFollowingBack)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Load(ctx, LastResultKey)
	assert.ErrorIs(t, err, ErrNotFound)

	input := []string{"a", "b"}
	require.NoError(t, store.Save(ctx, LastResultKey, Entry{NotFollowingBack: input}))
	input[0] = "mutated"

	entry, err := store.Load(ctx, LastResultKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, entry.NotFollowingBack)
	assert.False(t, entry.UpdatedAt.IsZero())

	require.NoError(t, store.Delete(ctx, LastResultKey))
	_, err = store.Load(ctx, LastResultKey)
	assert.ErrorIs(t, err, ErrNotFound)
}
