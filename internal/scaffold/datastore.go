package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
)

// DataStore carries per-destination template data from the copy step to the
// render step. Keys are cleaned destination paths.
type DataStore struct {
	entries map[string]map[string]any
}

// NewDataStore returns an empty store.
func NewDataStore() *DataStore {
	return &DataStore{entries: make(map[string]map[string]any)}
}

// Get returns a copy of the data for dest, or nil.
func (s *DataStore) Get(dest string) map[string]any {
	data, ok := s.entries[filepath.Clean(dest)]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

// Set replaces the data for dest.
func (s *DataStore) Set(dest string, data map[string]any) {
	s.entries[filepath.Clean(dest)] = data
}

// Merge overlays data onto whatever dest already holds.
func (s *DataStore) Merge(dest string, data map[string]any) {
	key := filepath.Clean(dest)
	cur, ok := s.entries[key]
	if !ok {
		cur = make(map[string]any, len(data))
		s.entries[key] = cur
	}
	for k, v := range data {
		cur[k] = v
	}
}

// Len returns the number of destinations with data.
func (s *DataStore) Len() int { return len(s.entries) }

// Callback is registered during template copy and run before rendering.
type Callback func(ctx context.Context, store *DataStore) error

// Callbacks is an ordered callback registry.
type Callbacks struct {
	list []Callback
}

// Add appends cb.
func (c *Callbacks) Add(cb Callback) {
	c.list = append(c.list, cb)
}

// Len returns the number of registered callbacks.
func (c *Callbacks) Len() int { return len(c.list) }

// Run calls every callback in registration order, each one finishing before
// the next starts. The first error stops the run.
func (c *Callbacks) Run(ctx context.Context, store *DataStore) error {
	for i, cb := range c.list {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cb(ctx, store); err != nil {
			return fmt.Errorf("callback %d: %w", i, err)
		}
	}
	return nil
}
