package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/repository/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns increasing IDs", func(t *testing.T) {
		store := memory.New()

		first, err := store.Create(ctx, "ifconfig", "ifconfig", "out")
		gt.NoError(t, err)
		second, err := store.Create(ctx, "touchfile", "touchfile", "Файл a создан")
		gt.NoError(t, err)

		gt.Equal(t, first.ID, int64(1))
		gt.Equal(t, second.ID, int64(2))
		gt.False(t, first.CreatedAt.IsZero())
		gt.Equal(t, store.Len(), 2)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		store := memory.New()
		created, err := store.Create(ctx, "ifconfig", "ifconfig", "original")
		gt.NoError(t, err)

		created.Output = "changed"

		got, err := store.Get(ctx, created.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.Output, "original")
	})

	t.Run("Get missing record", func(t *testing.T) {
		store := memory.New()
		_, err := store.Get(ctx, 10)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrRecordNotFound))
	})

	t.Run("List newest first with limit", func(t *testing.T) {
		store := memory.New()
		for _, out := range []string{"a", "b", "c"} {
			_, err := store.Create(ctx, "touchfile", "touchfile", out)
			gt.NoError(t, err)
		}

		all, err := store.List(ctx, 0)
		gt.NoError(t, err)
		gt.Equal(t, len(all), 3)
		gt.Equal(t, all[0].Output, "c")
		gt.Equal(t, all[2].Output, "a")

		limited, err := store.List(ctx, 2)
		gt.NoError(t, err)
		gt.Equal(t, len(limited), 2)
		gt.Equal(t, limited[1].Output, "b")
	})

	t.Run("Create fails on cancelled context", func(t *testing.T) {
		store := memory.New()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Create(cancelled, "ifconfig", "ifconfig", "out")
		gt.Error(t, err)
		gt.Equal(t, store.Len(), 0)
	})
}
