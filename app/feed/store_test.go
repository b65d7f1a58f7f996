package feed

import (
	"testing"
	"time"
)

func TestStore(t *testing.T) {
	store := NewStore()

	if _, ok := store.Get("fda-cosmetics"); ok {
		t.Error("Get on an empty store should report absence")
	}
	if store.Count() != 0 {
		t.Errorf("Expected empty store, got %d feeds", store.Count())
	}

	first := &Result{XML: "<rss/>", ItemCount: 2, GeneratedAt: time.Now().UTC()}
	store.Set("fda-cosmetics", first)

	got, ok := store.Get("fda-cosmetics")
	if !ok {
		t.Fatal("Stored feed should be retrievable")
	}
	if got.ItemCount != 2 {
		t.Errorf("Expected 2 items, got %d", got.ItemCount)
	}

	// A refresh replaces the feed wholesale
	second := &Result{XML: "<rss/>", ItemCount: 5, GeneratedAt: time.Now().UTC()}
	store.Set("fda-cosmetics", second)

	got, _ = store.Get("fda-cosmetics")
	if got.ItemCount != 5 {
		t.Errorf("Refresh should replace the stored feed, got %d items", got.ItemCount)
	}
	if store.Count() != 1 {
		t.Errorf("Expected 1 feed, got %d", store.Count())
	}
}
