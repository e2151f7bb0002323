// Package repository persists whole collections to flat JSON files. Every
// operation reads or rewrites the entire file; there is no incremental write.
// This is a prototype-grade store kept behind a narrow contract so it can be
// swapped for row-level CRUD later without touching the services.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

// Store owns a single JSON file holding one collection. The mutex serializes
// the whole read-modify-write cycle per resource class, so concurrent callers
// cannot lose each other's updates.
type Store[T any] struct {
	path string
	mu   sync.Mutex
}

func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// LoadAll reads the entire collection. A missing or unreadable file yields an
// empty collection; read failures are logged, never surfaced.
func (s *Store[T]) LoadAll() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveAll overwrites the entire collection.
func (s *Store[T]) SaveAll(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(items)
}

// Mutate runs fn over the loaded collection and persists whatever it returns,
// holding the store lock for the full cycle. Errors from fn abort the write
// and propagate unchanged.
func (s *Store[T]) Mutate(fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := fn(s.load())
	if err != nil {
		return err
	}
	return s.save(items)
}

func (s *Store[T]) load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("store read failed, treating as empty", "path", s.path, "error", err)
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("store decode failed, treating as empty", "path", s.path, "error", err)
		return nil
	}
	return items
}

func (s *Store[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}
