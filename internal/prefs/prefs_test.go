package prefs

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryStoreDefaultTheme(t *testing.T) {
	store := NewMemoryStore()

	theme, err := store.Theme(context.Background())
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if theme != "light" {
		t.Errorf("expected default theme light, got %s", theme)
	}
}

func TestMemoryStoreSetTheme(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.SetTheme(ctx, "dark"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	theme, err := store.Theme(ctx)
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if theme != "dark" {
		t.Errorf("expected dark after SetTheme, got %s", theme)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.SetTheme(ctx, "dark")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Theme(ctx)
		}()
	}
	wg.Wait()

	theme, err := store.Theme(ctx)
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if theme != "dark" {
		t.Errorf("expected dark after concurrent writes, got %s", theme)
	}
}
