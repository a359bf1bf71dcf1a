package db

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Hits  int    `json:"hits"`
}

func (r testRecord) RecordID() int { return r.ID }

var testSeed = []testRecord{
	{ID: 1, Title: "first"},
	{ID: 2, Title: "second"},
	{ID: 5, Title: "fifth"},
}

func titles(list []testRecord) []string {
	result := make([]string, len(list))
	for i := range list {
		result[i] = list[i].Title
	}
	return result
}

// runTableSuite checks the Table contract against any backend.
func runTableSuite(t *testing.T, newTable func(t *testing.T) Table[testRecord]) {
	ctx := context.Background()

	seeded := func(t *testing.T) Table[testRecord] {
		table := newTable(t)
		require.NoError(t, table.Reset(ctx, testSeed))
		return table
	}

	t.Run("ListKeepsSeedOrder", func(t *testing.T) {
		table := seeded(t)

		list, err := table.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "fifth"}, titles(list))

		count, err := table.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("ByID", func(t *testing.T) {
		table := seeded(t)

		rec, err := table.ByID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "second", rec.Title)

		missing, err := table.ByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("InsertAssignsMaxPlusOne", func(t *testing.T) {
		table := seeded(t)

		rec, err := table.Insert(ctx, Append, func(id int) testRecord {
			return testRecord{ID: id, Title: "appended"}
		})
		require.NoError(t, err)
		assert.Equal(t, 6, rec.ID)

		rec, err = table.Insert(ctx, Prepend, func(id int) testRecord {
			return testRecord{ID: id, Title: "prepended"}
		})
		require.NoError(t, err)
		assert.Equal(t, 7, rec.ID)

		list, err := table.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"prepended", "first", "second", "fifth", "appended"}, titles(list))
	})

	t.Run("InsertIntoEmptyStartsAtOne", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Reset(ctx, nil))

		rec, err := table.Insert(ctx, Append, func(id int) testRecord {
			return testRecord{ID: id, Title: "only"}
		})
		require.NoError(t, err)
		assert.Equal(t, 1, rec.ID)
	})

	t.Run("DeletedMaxIDIsReused", func(t *testing.T) {
		table := seeded(t)

		ok, err := table.Delete(ctx, 5)
		require.NoError(t, err)
		assert.True(t, ok)

		rec, err := table.Insert(ctx, Append, func(id int) testRecord {
			return testRecord{ID: id}
		})
		require.NoError(t, err)
		assert.Equal(t, 3, rec.ID)
	})

	t.Run("Update", func(t *testing.T) {
		table := seeded(t)

		rec, err := table.Update(ctx, 1, func(r *testRecord) {
			r.Hits++
			r.Title = "changed"
		})
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, 1, rec.Hits)

		stored, err := table.ByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, testRecord{ID: 1, Title: "changed", Hits: 1}, *stored)

		list, err := table.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "changed", list[0].Title, "update must keep position")

		missing, err := table.Update(ctx, 42, func(r *testRecord) { r.Hits++ })
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Delete", func(t *testing.T) {
		table := seeded(t)

		ok, err := table.Delete(ctx, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = table.Delete(ctx, 2)
		require.NoError(t, err)
		assert.False(t, ok)

		list, err := table.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "fifth"}, titles(list))
	})

	t.Run("ConcurrentIncrements", func(t *testing.T) {
		table := seeded(t)

		const workers = 8
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := table.Update(ctx, 1, func(r *testRecord) { r.Hits++ })
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		rec, err := table.ByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, workers, rec.Hits)
	})

	t.Run("ConcurrentInsertsGetDistinctIDs", func(t *testing.T) {
		table := seeded(t)

		const workers = 8
		ids := make(chan int, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec, err := table.Insert(ctx, Append, func(id int) testRecord {
					return testRecord{ID: id}
				})
				assert.NoError(t, err)
				ids <- rec.ID
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int]bool)
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers)
	})
}

func TestMemoryTable(t *testing.T) {
	runTableSuite(t, func(t *testing.T) Table[testRecord] {
		return NewMemoryTable[testRecord]()
	})
}

func TestMemoryTable_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	table := NewMemoryTable[testRecord]()
	require.NoError(t, table.Reset(ctx, testSeed))

	list, err := table.List(ctx)
	require.NoError(t, err)
	list[0].Title = "mutated"

	rec, err := table.ByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "first", rec.Title)
}
