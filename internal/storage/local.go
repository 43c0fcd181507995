// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

// Package storage persists all chatbot state in a local SQLite file
// used as a flat key-value store: registered users, the current-user
// pointer, and one session collection per user. Values are JSON blobs
// keyed by well-known string keys, so the on-disk model stays a direct
// analog of browser localStorage.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;
`

// Well-known store keys. sessionKeyPrefix is completed with a user ID.
const (
	usersKey         = "chatbot_users"
	currentUserKey   = "chatbot_current_user"
	sessionKeyPrefix = "chatbot_sessions_"
)

// CorruptError reports that the value under a key is not valid JSON
// for the expected shape. Callers treat the record as empty but can
// still distinguish corruption from absence.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt record at key %q: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Is allows errors.Is(err, ErrCorruptRecord) regardless of key.
func (e *CorruptError) Is(target error) bool {
	return target == ErrCorruptRecord
}

// ErrCorruptRecord is the sentinel matched by errors.Is for any
// CorruptError.
var ErrCorruptRecord = errors.New("corrupt record")

// LocalStore is the SQLite-backed key-value store.
type LocalStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path. The database is
// limited to a single connection; SQLite serializes writers anyway and
// one connection keeps the WAL file small.
func Open(path string) (*LocalStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return &LocalStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Get returns the raw value under key. The second return is false when
// the key is absent.
func (s *LocalStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *LocalStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *LocalStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// getJSON decodes the value under key into v. Absent keys leave v
// untouched and return (false, nil). Undecodable values return a
// CorruptError.
func (s *LocalStore) getJSON(key string, v any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, &CorruptError{Key: key, Err: err}
	}
	return true, nil
}

// setJSON encodes v and stores it under key.
func (s *LocalStore) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(key, string(data))
}
