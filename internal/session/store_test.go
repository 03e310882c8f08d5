package session

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	last, err := store.LastShown(ctx, "s1")
	if err != nil {
		t.Fatalf("LastShown: %v", err)
	}
	if last != "" {
		t.Fatalf("fresh session LastShown = %q, want empty", last)
	}

	if err := store.SetLastShown(ctx, "s1", "tt1"); err != nil {
		t.Fatalf("SetLastShown: %v", err)
	}

	last, err = store.LastShown(ctx, "s1")
	if err != nil {
		t.Fatalf("LastShown: %v", err)
	}
	if last != "tt1" {
		t.Fatalf("LastShown = %q, want tt1", last)
	}
}

func TestMemoryStoreSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.SetLastShown(ctx, "s1", "tt1"); err != nil {
		t.Fatalf("SetLastShown: %v", err)
	}

	last, err := store.LastShown(ctx, "s2")
	if err != nil {
		t.Fatalf("LastShown: %v", err)
	}
	if last != "" {
		t.Fatalf("other session LastShown = %q, want empty", last)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = store.SetLastShown(ctx, "s1", "tt1")
	_ = store.SetLastShown(ctx, "s1", "tt2")

	last, _ := store.LastShown(ctx, "s1")
	if last != "tt2" {
		t.Fatalf("LastShown = %q, want tt2", last)
	}
}
