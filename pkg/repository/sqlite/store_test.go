package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/repository/sqlite"
)

func openTempStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.db")
	store, err := sqlite.Open(context.Background(), path)
	gt.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and Get", func(t *testing.T) {
		store, _ := openTempStore(t)

		created, err := store.Create(ctx, "ifconfig", "ifconfig", "eth0: flags=4163<UP>")
		gt.NoError(t, err)
		gt.True(t, created.ID > 0)

		got, err := store.Get(ctx, created.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.Command, "ifconfig")
		gt.Equal(t, got.Name, "ifconfig")
		gt.Equal(t, got.Output, "eth0: flags=4163<UP>")
		gt.True(t, got.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("Cyrillic output survives the round trip", func(t *testing.T) {
		store, _ := openTempStore(t)

		created, err := store.Create(ctx, "touchfile", "touchfile", "Файл отчёт.txt создан")
		gt.NoError(t, err)

		got, err := store.Get(ctx, created.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.Output, "Файл отчёт.txt создан")
	})

	t.Run("Get missing record", func(t *testing.T) {
		store, _ := openTempStore(t)

		_, err := store.Get(ctx, 999)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrRecordNotFound))
	})

	t.Run("List newest first", func(t *testing.T) {
		store, _ := openTempStore(t)
		for _, out := range []string{"first", "second", "third"} {
			_, err := store.Create(ctx, "touchfile", "touchfile", out)
			gt.NoError(t, err)
		}

		records, err := store.List(ctx, 0)
		gt.NoError(t, err)
		gt.Equal(t, len(records), 3)
		gt.Equal(t, records[0].Output, "third")
		gt.Equal(t, records[2].Output, "first")

		limited, err := store.List(ctx, 1)
		gt.NoError(t, err)
		gt.Equal(t, len(limited), 1)
		gt.Equal(t, limited[0].Output, "third")
	})

	t.Run("reopening keeps data and skips applied migrations", func(t *testing.T) {
		store, path := openTempStore(t)
		_, err := store.Create(ctx, "ifconfig", "ifconfig", "kept")
		gt.NoError(t, err)
		gt.NoError(t, store.Close())

		reopened, err := sqlite.Open(ctx, path)
		gt.NoError(t, err)
		defer reopened.Close()

		records, err := reopened.List(ctx, 10)
		gt.NoError(t, err)
		gt.Equal(t, len(records), 1)
		gt.Equal(t, records[0].Output, "kept")
	})

	t.Run("in-memory database", func(t *testing.T) {
		store, err := sqlite.Open(ctx, sqlite.MemoryPath)
		gt.NoError(t, err)
		defer store.Close()

		_, err = store.Create(ctx, "ifconfig", "ifconfig", "mem")
		gt.NoError(t, err)

		records, err := store.List(ctx, 0)
		gt.NoError(t, err)
		gt.Equal(t, len(records), 1)
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := sqlite.Open(ctx, " ")
		gt.Error(t, err)
	})
}
