// Copyright 2026 The Richmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package asset stores media payloads under short reference names.
//
// Payloads live in namespaces. [NamespaceCurrent] holds entries written
// by the active upload flow; [NamespaceLegacy] carries entries migrated
// from the previous storage generation and exists so that old authored
// content keeps resolving as the storage layout evolves.
package asset

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const (
	NamespaceCurrent = "assets"
	NamespaceLegacy  = "legacy"
)

// Config controls store initialization.
type Config struct {
	// Path is the database file path. ":memory:" is supported.
	Path string
}

// Store is a SQLite-backed namespaced key-to-payload mapping.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS assets (
    namespace  TEXT NOT NULL,
    key        TEXT NOT NULL,
    payload    TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (namespace, key)
);
`

// Open opens the asset database, creating it and its schema as needed.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("open asset store: empty path")
	}
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("create asset store directory: %w", err)
		}
	}

	dsn := cfg.Path
	if strings.Contains(dsn, "?") {
		dsn += "&"
	} else {
		dsn += "?"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open asset store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize asset store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores payload under (namespace, key), replacing any prior entry.
func (s *Store) Put(namespace, key, payload string) error {
	if namespace == "" || key == "" {
		return fmt.Errorf("put asset: namespace and key are required")
	}
	_, err := s.db.Exec(
		`INSERT INTO assets (namespace, key, payload) VALUES (?, ?, ?)
		 ON CONFLICT (namespace, key) DO UPDATE SET payload = excluded.payload`,
		namespace, key, payload,
	)
	if err != nil {
		return fmt.Errorf("put asset %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Get returns the payload stored under (namespace, key).
func (s *Store) Get(namespace, key string) (string, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM assets WHERE namespace = ? AND key = ?`,
		namespace, key,
	).Scan(&payload)
	if err != nil {
		return "", fmt.Errorf("get asset %s/%s: %w", namespace, key, err)
	}
	return payload, nil
}

// Delete removes the entry stored under (namespace, key), if any.
func (s *Store) Delete(namespace, key string) error {
	if _, err := s.db.Exec(
		`DELETE FROM assets WHERE namespace = ? AND key = ?`,
		namespace, key,
	); err != nil {
		return fmt.Errorf("delete asset %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Namespace returns a read view of one namespace satisfying the
// renderer's asset-store contract.
func (s *Store) Namespace(name string) *View {
	return &View{s: s, namespace: name}
}

// A View is a read-only window onto one namespace of a [Store].
// A missed or failed lookup reports ok=false; the resolver treats
// both as a fall-through to its next tier.
type View struct {
	s         *Store
	namespace string
}

// Get returns the payload stored under key in the view's namespace.
// Lookup failures degrade to a miss; the reference renders unresolved
// rather than failing the document.
func (v *View) Get(key string) (string, bool) {
	payload, err := v.s.Get(v.namespace, key)
	if err != nil {
		return "", false
	}
	return payload, true
}
