// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package substratecache

import (
	"context"
	"crypto/sha1"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/philocalyst/anki/internal/noteschema"
	"github.com/philocalyst/anki/internal/resolver"
)

//go:embed schema.sql
var schemaDDL string

// Store is a substrate cache backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("substratecache: opening", "path", absPath)

	db, err := sql.Open("sqlite", absPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveSubstrate replaces the cached substrate for (deckPath, entryPath)
// with the current one, atomically.
func (s *Store) SaveSubstrate(ctx context.Context, deckPath, entryPath string, hostUUID uuid.UUID, substrate resolver.Substrate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM substrate_entry WHERE deck_path = ? AND entry_path = ?`,
		deckPath, entryPath); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO deck_host (deck_path, entry_path, host_uuid) VALUES (?, ?, ?)
		 ON CONFLICT(deck_path, entry_path) DO UPDATE SET host_uuid = excluded.host_uuid`,
		deckPath, entryPath, hostUUID.String()); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO substrate_entry (deck_path, entry_path, position, note_uuid, content_hash) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, entry := range substrate {
		if _, err := stmt.ExecContext(ctx, deckPath, entryPath, i, entry.ID.String(), contentHash(entry.Inner)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Debug("substratecache: saved", "deck", deckPath, "entry", entryPath, "notes", len(substrate))
	return nil
}

// CachedHostUUID returns the host_uuid cached for (deckPath, entryPath),
// if any.
func (s *Store) CachedHostUUID(ctx context.Context, deckPath, entryPath string) (uuid.UUID, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT host_uuid FROM deck_host WHERE deck_path = ? AND entry_path = ?`,
		deckPath, entryPath).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.UUID{}, false, nil
	}
	if err != nil {
		return uuid.UUID{}, false, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false, fmt.Errorf("substratecache: malformed host_uuid %q: %w", raw, err)
	}
	return id, true, nil
}

// CachedNoteUUIDs returns the cached note ids for (deckPath, entryPath) in
// substrate position order.
func (s *Store) CachedNoteUUIDs(ctx context.Context, deckPath, entryPath string) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT note_uuid FROM substrate_entry WHERE deck_path = ? AND entry_path = ? ORDER BY position ASC`,
		deckPath, entryPath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("substratecache: malformed note_uuid %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func contentHash(n noteschema.Note) string {
	sum := sha1.Sum([]byte(n.ContentString()))
	return fmt.Sprintf("%x", sum)
}
