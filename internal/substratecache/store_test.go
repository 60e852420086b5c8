// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package substratecache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
	"github.com/google/uuid"

	"github.com/philocalyst/anki/internal/noteschema"
	"github.com/philocalyst/anki/internal/resolver"
)

func mustNote(name string) noteschema.Note {
	return noteschema.Note{
		Fields: []noteschema.NoteField{
			{Name: "Front", Content: []noteschema.TextElement{noteschema.NewText(name)}},
		},
	}
}

func TestSaveAndLoadHostUUID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if _, ok, err := store.CachedHostUUID(ctx, "deck.deck", "cards.flash"); err != nil {
		t.Fatalf("CachedHostUUID on empty store: %v", err)
	} else if ok {
		t.Fatalf("expected no cached host uuid in an empty store")
	}

	host := uuid.New()
	substrate := resolver.NewSubstrate([]noteschema.Note{mustNote("a"), mustNote("b")}, host)

	if err := store.SaveSubstrate(ctx, "deck.deck", "cards.flash", host, substrate); err != nil {
		t.Fatalf("SaveSubstrate: %v", err)
	}

	got, ok, err := store.CachedHostUUID(ctx, "deck.deck", "cards.flash")
	if err != nil {
		t.Fatalf("CachedHostUUID: %v", err)
	}
	if !ok {
		t.Fatalf("expected a cached host uuid after save")
	}
	if got != host {
		t.Errorf("got host %s, want %s", got, host)
	}
}

func TestSaveSubstrateOverwritesPriorEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	host := uuid.New()

	first := resolver.NewSubstrate([]noteschema.Note{mustNote("a"), mustNote("b")}, host)
	if err := store.SaveSubstrate(ctx, "deck.deck", "cards.flash", host, first); err != nil {
		t.Fatalf("SaveSubstrate (first): %v", err)
	}

	second := resolver.NewSubstrate([]noteschema.Note{mustNote("c")}, host)
	if err := store.SaveSubstrate(ctx, "deck.deck", "cards.flash", host, second); err != nil {
		t.Fatalf("SaveSubstrate (second): %v", err)
	}

	ids, err := store.CachedNoteUUIDs(ctx, "deck.deck", "cards.flash")
	if err != nil {
		t.Fatalf("CachedNoteUUIDs: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("got %d cached note ids, want 1 after overwrite", len(ids))
	}
	if diff := deep.Equal(ids[0], second[0].ID); diff != nil {
		t.Errorf("cached note id mismatch: %v", diff)
	}
}

func TestCachedNoteUUIDsPreservesPositionOrder(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	host := uuid.New()
	substrate := resolver.NewSubstrate([]noteschema.Note{mustNote("a"), mustNote("b"), mustNote("c")}, host)
	if err := store.SaveSubstrate(ctx, "deck.deck", "cards.flash", host, substrate); err != nil {
		t.Fatalf("SaveSubstrate: %v", err)
	}

	ids, err := store.CachedNoteUUIDs(ctx, "deck.deck", "cards.flash")
	if err != nil {
		t.Fatalf("CachedNoteUUIDs: %v", err)
	}
	var want []uuid.UUID
	for _, entry := range substrate {
		want = append(want, entry.ID)
	}
	if diff := deep.Equal(ids, want); diff != nil {
		t.Errorf("note id order mismatch: %v", diff)
	}
}

func TestSaveSubstrateIsolatesEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	hostA, hostB := uuid.New(), uuid.New()
	subA := resolver.NewSubstrate([]noteschema.Note{mustNote("a")}, hostA)
	subB := resolver.NewSubstrate([]noteschema.Note{mustNote("b")}, hostB)

	if err := store.SaveSubstrate(ctx, "deck.deck", "a.flash", hostA, subA); err != nil {
		t.Fatalf("SaveSubstrate (a): %v", err)
	}
	if err := store.SaveSubstrate(ctx, "deck.deck", "b.flash", hostB, subB); err != nil {
		t.Fatalf("SaveSubstrate (b): %v", err)
	}

	gotA, _, err := store.CachedHostUUID(ctx, "deck.deck", "a.flash")
	if err != nil {
		t.Fatalf("CachedHostUUID (a): %v", err)
	}
	if gotA != hostA {
		t.Errorf("got host %s for a.flash, want %s", gotA, hostA)
	}
	gotB, _, err := store.CachedHostUUID(ctx, "deck.deck", "b.flash")
	if err != nil {
		t.Fatalf("CachedHostUUID (b): %v", err)
	}
	if gotB != hostB {
		t.Errorf("got host %s for b.flash, want %s", gotB, hostB)
	}
}
