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

// Package poll persists poll vote ledgers.
//
// The ledger records, per poll identity, aggregate option counts and a
// single immutable choice per voter. Whether results are shown back to
// a voter (transparent polls) or withheld (secret polls) is a rendering
// concern; the ledger semantics are identical for both.
package poll

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrAlreadyVoted is returned by [Store.CastVote] when the voter
// already holds a recorded choice for the poll. Votes are immutable:
// no changes, no retractions.
var ErrAlreadyVoted = errors.New("poll: voter already has a recorded choice")

// Config controls ledger initialization.
type Config struct {
	// Path is the database file path. ":memory:" is supported.
	Path string
}

// State is the readable ledger entry for one poll.
type State struct {
	// Counts maps every known option to its vote count.
	// Options with no recorded votes are present with a zero count.
	Counts map[string]int
	// VoterChoice is the reading voter's recorded option,
	// or "" when that voter has not voted.
	VoterChoice string
}

// Total returns the number of recorded votes,
// which always equals the number of distinct voters who voted.
func (s *State) Total() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}

// Store is a SQLite-backed poll vote ledger.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS poll_votes (
    poll_id TEXT NOT NULL,
    option  TEXT NOT NULL,
    votes   INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (poll_id, option)
);

CREATE TABLE IF NOT EXISTS poll_voters (
    poll_id  TEXT NOT NULL,
    voter_id TEXT NOT NULL,
    choice   TEXT NOT NULL,
    PRIMARY KEY (poll_id, voter_id)
);
`

// Open opens the ledger database, creating it and its schema as needed.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("open poll ledger: empty path")
	}
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("create poll ledger directory: %w", err)
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
		return nil, fmt.Errorf("open poll ledger: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize poll ledger schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// State reads the ledger entry for pollID. Every option in options is
// initialized to zero before recorded counts are applied, so a poll
// with no prior votes reads as all zeros rather than as missing.
// voterID may be empty, in which case VoterChoice is always "".
func (s *Store) State(pollID string, options []string, voterID string) (*State, error) {
	st := &State{Counts: make(map[string]int, len(options))}
	for _, opt := range options {
		st.Counts[opt] = 0
	}

	rows, err := s.db.Query(`SELECT option, votes FROM poll_votes WHERE poll_id = ?`, pollID)
	if err != nil {
		return nil, fmt.Errorf("read poll %s: %w", pollID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var option string
		var votes int
		if err := rows.Scan(&option, &votes); err != nil {
			return nil, fmt.Errorf("read poll %s: %w", pollID, err)
		}
		st.Counts[option] = votes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read poll %s: %w", pollID, err)
	}

	if voterID != "" {
		err := s.db.QueryRow(
			`SELECT choice FROM poll_voters WHERE poll_id = ? AND voter_id = ?`,
			pollID, voterID,
		).Scan(&st.VoterChoice)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("read poll %s voter: %w", pollID, err)
		}
	}
	return st, nil
}

// CastVote records voterID's choice for pollID and increments the
// option's count by one. The read-modify-write runs in a single
// transaction, so concurrent votes for the same poll cannot lose
// updates. A voter holds at most one choice per poll; a repeat vote
// returns [ErrAlreadyVoted] and leaves the ledger unchanged.
func (s *Store) CastVote(pollID, voterID, option string) error {
	if pollID == "" || voterID == "" || option == "" {
		return fmt.Errorf("cast vote: poll id, voter id, and option are required")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cast vote on %s: %w", pollID, err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRow(
		`SELECT choice FROM poll_voters WHERE poll_id = ? AND voter_id = ?`,
		pollID, voterID,
	).Scan(&existing)
	if err == nil {
		return ErrAlreadyVoted
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("cast vote on %s: %w", pollID, err)
	}

	if _, err := tx.Exec(
		`INSERT INTO poll_voters (poll_id, voter_id, choice) VALUES (?, ?, ?)`,
		pollID, voterID, option,
	); err != nil {
		return fmt.Errorf("cast vote on %s: %w", pollID, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO poll_votes (poll_id, option, votes) VALUES (?, ?, 1)
		 ON CONFLICT (poll_id, option) DO UPDATE SET votes = votes + 1`,
		pollID, option,
	); err != nil {
		return fmt.Errorf("cast vote on %s: %w", pollID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cast vote on %s: %w", pollID, err)
	}
	return nil
}
