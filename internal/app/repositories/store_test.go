package repositories

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lmsdash/internal/app/models"
	"github.com/yigit/lmsdash/internal/pkg/idgen"
)

func newTaskTable(t *testing.T) *Table[models.Task] {
	t.Helper()
	return NewTable[models.Task](idgen.NewSequence("t"))
}

func TestTableCreateAssignsFreshIDs(t *testing.T) {
	table := newTaskTable(t)

	a := table.Create(models.Task{ID: "ignored", Title: "a"})
	b := table.Create(models.Task{Title: "b"})

	assert.Equal(t, "t1", a.ID)
	assert.Equal(t, "t2", b.ID)

	got, ok := table.Get("t1")
	require.True(t, ok)
	assert.Equal(t, a, got)

	_, ok = table.Get("ignored")
	assert.False(t, ok)
}

func TestTableCreateSkipsTakenIDs(t *testing.T) {
	table := newTaskTable(t)
	require.NoError(t, table.Insert(models.Task{ID: "t1", Title: "fixture"}))

	created := table.Create(models.Task{Title: "new"})
	assert.Equal(t, "t2", created.ID)
	assert.Equal(t, 2, table.Len())
}

func TestTableListPreservesInsertionOrder(t *testing.T) {
	table := NewTable[models.Task](idgen.Func(func() string { return "unused" }))
	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, table.Insert(models.Task{ID: id, UserID: "u"}))
	}
	require.NoError(t, table.Insert(models.Task{ID: "b", UserID: "other"}))

	var ids []string
	for _, task := range table.List(nil) {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"z", "a", "m", "b"}, ids)

	filtered := table.List(func(t models.Task) bool { return t.UserID == "u" })
	assert.Len(t, filtered, 3)

	none := table.List(func(models.Task) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTableInsertRejectsDuplicates(t *testing.T) {
	table := newTaskTable(t)
	require.NoError(t, table.Insert(models.Task{ID: "task1"}))

	err := table.Insert(models.Task{ID: "task1"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	assert.Error(t, table.Insert(models.Task{}))
}

func TestTableUpdate(t *testing.T) {
	table := newTaskTable(t)
	require.NoError(t, table.Insert(models.Task{ID: "task1", Title: "Read", Completed: false}))

	t.Run("merges and keeps key", func(t *testing.T) {
		updated, ok, err := table.Update("task1", func(cur models.Task) (models.Task, error) {
			cur.Completed = true
			cur.ID = "hijacked"
			return cur, nil
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "task1", updated.ID)
		assert.True(t, updated.Completed)
		assert.Equal(t, "Read", updated.Title)

		stored, _ := table.Get("task1")
		assert.Equal(t, updated, stored)
	})

	t.Run("unknown id", func(t *testing.T) {
		called := false
		_, ok, err := table.Update("missing", func(cur models.Task) (models.Task, error) {
			called = true
			return cur, nil
		})
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, called)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("apply error leaves record", func(t *testing.T) {
		boom := errors.New("boom")
		_, ok, err := table.Update("task1", func(cur models.Task) (models.Task, error) {
			cur.Title = "changed"
			return cur, boom
		})
		assert.True(t, ok)
		assert.ErrorIs(t, err, boom)

		stored, _ := table.Get("task1")
		assert.Equal(t, "Read", stored.Title)
	})
}

func TestTableCreateUnique(t *testing.T) {
	table := NewTable[models.User](idgen.NewSequence("u"))
	sameName := func(name string) func(models.User) bool {
		return func(existing models.User) bool { return existing.Username == name }
	}

	_, err := table.CreateUnique(models.User{Username: "ada"}, sameName("ada"))
	require.NoError(t, err)

	_, err = table.CreateUnique(models.User{Username: "ada"}, sameName("ada"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, table.Len())
}

func TestTableConcurrentAccess(t *testing.T) {
	table := newTaskTable(t)
	require.NoError(t, table.Insert(models.Task{ID: "counter"}))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table.Create(models.Task{Title: fmt.Sprintf("task %d", i)})
			_, _, _ = table.Update("counter", func(cur models.Task) (models.Task, error) {
				cur.Title += "x"
				return cur, nil
			})
			_ = table.List(nil)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers+1, table.Len())
	counter, _ := table.Get("counter")
	assert.Len(t, counter.Title, workers)
}
