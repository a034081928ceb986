package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/bookstore/services/items/internal/db"
	"github.com/bookstore/services/items/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func setupTestDB(t *testing.T) *db.DB {
	database, err := db.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	// every pooled connection to :memory: would see its own empty database
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.EnsureSchema(database))
	t.Cleanup(func() { database.Close() })

	return database
}

func newTestRepo(t *testing.T) *ItemRepository {
	return NewItemRepository(setupTestDB(t), logger.NewLogger("test", "error"))
}

func strPtr(s string) *string {
	return &s
}

func TestCreateItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item, err := repo.CreateItem(ctx, "Widget", strPtr("A thing"))
	require.NoError(t, err)

	assert.Equal(t, int32(1), item.ID)
	assert.Equal(t, "Widget", item.Name)
	require.NotNil(t, item.Description)
	assert.Equal(t, "A thing", *item.Description)
	assert.True(t, item.CreatedAt.Valid)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, item.CreatedAt.String())
}

func TestCreateItemWithoutDescription(t *testing.T) {
	repo := newTestRepo(t)

	item, err := repo.CreateItem(context.Background(), "Bare", nil)
	require.NoError(t, err)

	assert.Nil(t, item.Description)
}

func TestCreateItemAcceptsEmptyName(t *testing.T) {
	repo := newTestRepo(t)

	item, err := repo.CreateItem(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "", item.Name)
}

func TestCreateItemAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var last int32
	for i := 0; i < 5; i++ {
		item, err := repo.CreateItem(ctx, "item", nil)
		require.NoError(t, err)
		assert.Greater(t, item.ID, last)
		last = item.ID
	}
}

func TestCreateItemIDsNotReusedAfterDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateItem(ctx, "first", nil)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteItem(ctx, first.ID))

	second, err := repo.CreateItem(ctx, "second", nil)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestGetItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateItem(ctx, "Widget", strPtr("A thing"))
	require.NoError(t, err)

	fetched, err := repo.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.CreatedAt.String(), fetched.CreatedAt.String())
}

func TestGetItemNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetItem(context.Background(), 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListItemsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListItemsOrderedByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	names := []string{"c", "a", "b", "d"}
	for _, name := range names {
		_, err := repo.CreateItem(ctx, name, nil)
		require.NoError(t, err)
	}

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, len(names))

	for i, item := range items {
		assert.Equal(t, names[i], item.Name)
		if i > 0 {
			assert.Greater(t, item.ID, items[i-1].ID)
		}
	}
}

func TestListItemsAfterConcurrentCreates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateItem(ctx, "concurrent", nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, n)

	seen := make(map[int32]bool, n)
	for i, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
		if i > 0 {
			assert.Greater(t, item.ID, items[i-1].ID)
		}
	}
}

func TestDeleteItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	keep, err := repo.CreateItem(ctx, "keep", nil)
	require.NoError(t, err)
	drop, err := repo.CreateItem(ctx, "drop", nil)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItem(ctx, drop.ID))

	_, err = repo.GetItem(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, err = repo.GetItem(ctx, keep.ID)
	assert.NoError(t, err)
}

func TestDeleteItemNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateItem(ctx, "only", nil)
	require.NoError(t, err)

	err = repo.DeleteItem(ctx, 999)
	assert.ErrorIs(t, err, ErrItemNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRepositoryErrorsOnClosedDB(t *testing.T) {
	database := setupTestDB(t)
	repo := NewItemRepository(database, logger.NewLogger("test", "error"))
	require.NoError(t, database.Close())

	ctx := context.Background()

	_, err := repo.ListItems(ctx)
	assert.Error(t, err)

	_, err = repo.GetItem(ctx, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrItemNotFound)

	_, err = repo.CreateItem(ctx, "x", nil)
	assert.Error(t, err)

	err = repo.DeleteItem(ctx, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}
