package scaffold

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataStoreMerge(t *testing.T) {
	s := NewDataStore()
	assert.Nil(t, s.Get("/p/index.html"))

	s.Merge("/p/index.html", map[string]any{"a": 1, "b": 2})
	s.Merge("/p/./index.html", map[string]any{"b": 3})

	assert.Equal(t, map[string]any{"a": 1, "b": 3}, s.Get("/p/index.html"))
	assert.Equal(t, 1, s.Len())
}

func TestDataStoreGetReturnsCopy(t *testing.T) {
	s := NewDataStore()
	s.Set("x", map[string]any{"k": "v"})
	got := s.Get("x")
	got["k"] = "changed"
	assert.Equal(t, "v", s.Get("x")["k"])
}

func TestCallbacksRunInOrder(t *testing.T) {
	var order []int
	cbs := &Callbacks{}
	for i := range 3 {
		cbs.Add(func(_ context.Context, store *DataStore) error {
			order = append(order, i)
			store.Merge("f", map[string]any{"last": i})
			return nil
		})
	}

	store := NewDataStore()
	require.NoError(t, cbs.Run(context.Background(), store))
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, 2, store.Get("f")["last"])
}

func TestCallbacksStopAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := 0
	cbs := &Callbacks{}
	cbs.Add(func(context.Context, *DataStore) error { ran++; return boom })
	cbs.Add(func(context.Context, *DataStore) error { ran++; return nil })

	err := cbs.Run(context.Background(), NewDataStore())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ran)
}

func TestCallbacksHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cbs := &Callbacks{}
	cbs.Add(func(context.Context, *DataStore) error { return nil })
	assert.ErrorIs(t, cbs.Run(ctx, NewDataStore()), context.Canceled)
}
