package library

import (
	"errors"
	"testing"

	"github.com/vmunix/streamgen/pkg/streamlink"
)

func TestTx_Commit(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	tx, err := store.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	title := &Title{TMDBID: 1, Type: streamlink.ModeMovie, Title: "TX Movie", Year: 2024}
	if err := tx.UpsertTitle(title); err != nil {
		t.Fatalf("UpsertTitle in tx failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	got, err := store.GetTitle(title.ID)
	if err != nil {
		t.Fatalf("GetTitle after commit failed: %v", err)
	}
	if got.Title != "TX Movie" {
		t.Errorf("expected title 'TX Movie', got %q", got.Title)
	}
}

func TestTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	tx, err := store.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	title := &Title{TMDBID: 1, Type: streamlink.ModeMovie, Title: "TX Movie", Year: 2024}
	if err := tx.UpsertTitle(title); err != nil {
		t.Fatalf("UpsertTitle in tx failed: %v", err)
	}
	if err := tx.ReplaceLinks(title.ID, map[streamlink.PositionKey]string{
		streamlink.OptionKey(1): "https://streamwish.to/e/aaa111",
	}); err != nil {
		t.Fatalf("ReplaceLinks in tx failed: %v", err)
	}
	id := title.ID

	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	_, err = store.GetTitle(id)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after rollback, got %v", err)
	}
	links, err := store.ListLinks(id)
	if err != nil {
		t.Fatalf("ListLinks: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links after rollback, got %d", len(links))
	}
}

func TestTx_ReadsOwnWrites(t *testing.T) {
	store := NewStore(setupTestDB(t))

	tx, err := store.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	title := &Title{TMDBID: 5, Type: streamlink.ModeSeries, Title: "Dark"}
	if err := tx.UpsertTitle(title); err != nil {
		t.Fatalf("UpsertTitle: %v", err)
	}
	got, err := tx.GetTitleByTMDB(5, streamlink.ModeSeries)
	if err != nil {
		t.Fatalf("GetTitleByTMDB in tx: %v", err)
	}
	if got.ID != title.ID {
		t.Errorf("expected id %d, got %d", title.ID, got.ID)
	}
	_, total, err := tx.ListTitles(TitleFilter{})
	if err != nil {
		t.Fatalf("ListTitles in tx: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 title, got %d", total)
	}
}
