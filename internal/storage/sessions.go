package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seamusw/cubeviz"
)

// ErrSessionNotFound is returned when a session id has no row.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session is one recorded scramble: the cube size, the seed the moves
// were drawn with, and when it was created. Moves live in their own
// table, fetched with SessionMoves.
type Session struct {
	ID        string
	Side      int
	Seed      int64
	MoveCount int
	Notes     string
	CreatedAt time.Time
}

// CreateSession stores a scramble and its move sequence atomically,
// returning the new session with its generated id.
func (db *DB) CreateSession(side int, seed int64, notes string, moves []cubeviz.Move) (*Session, error) {
	s := &Session{
		ID:        uuid.New().String(),
		Side:      side,
		Seed:      seed,
		MoveCount: len(moves),
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	err := db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO sessions (id, side, seed, move_count, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, s.Side, s.Seed, s.MoveCount, s.Notes, s.CreatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO session_moves (session_id, seq, axis, rotation, depth)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare move insert: %w", err)
		}
		defer stmt.Close()

		for i, m := range moves {
			if _, err := stmt.Exec(s.ID, i, int(m.Axis), int(m.Rotation), m.Depth); err != nil {
				return fmt.Errorf("failed to insert move %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListSessions returns the most recent sessions, newest first.
func (db *DB) ListSessions(limit int) ([]Session, error) {
	rows, err := db.Query(`
		SELECT id, side, seed, move_count, notes, created_at
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// GetSession fetches a single session by id.
func (db *DB) GetSession(id string) (*Session, error) {
	row := db.QueryRow(`
		SELECT id, side, seed, move_count, notes, created_at
		FROM sessions WHERE id = ?`, id)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, err
}

// LatestSession fetches the most recently created session.
func (db *DB) LatestSession() (*Session, error) {
	row := db.QueryRow(`
		SELECT id, side, seed, move_count, notes, created_at
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no sessions recorded", ErrSessionNotFound)
	}
	return s, err
}

// SessionMoves returns a session's move sequence in order.
func (db *DB) SessionMoves(id string) ([]cubeviz.Move, error) {
	rows, err := db.Query(`
		SELECT axis, rotation, depth
		FROM session_moves
		WHERE session_id = ?
		ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	var moves []cubeviz.Move
	for rows.Next() {
		var axis, rotation, depth int
		if err := rows.Scan(&axis, &rotation, &depth); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, cubeviz.Move{
			Axis:     cubeviz.Axis(axis),
			Rotation: cubeviz.Rotation(rotation),
			Depth:    depth,
		})
	}
	return moves, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var createdAt string
	if err := row.Scan(&s.ID, &s.Side, &s.Seed, &s.MoveCount, &s.Notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session timestamp: %w", err)
	}
	s.CreatedAt = ts
	return &s, nil
}
