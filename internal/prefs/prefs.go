// Package prefs persists the display preference (light or dark theme) for
// the surrounding application. The preference carries no computational
// semantics; it is stored and echoed back verbatim.
package prefs

import (
	"context"
	"sync"

	"installment-calc/pkg/constants"
)

// Store persists the display theme preference.
type Store interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	mu    sync.RWMutex
	theme string
}

// NewMemoryStore creates a new in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{theme: constants.DefaultTheme}
}

// Theme returns the stored theme.
func (s *MemoryStore) Theme(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

// SetTheme stores the theme.
func (s *MemoryStore) SetTheme(_ context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}
