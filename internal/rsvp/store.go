package rsvp

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // CGO-free driver
)

// Store persists attendance votes, keyed by digest message and user. A second
// tap on the button withdraws the vote.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the vote database.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// Single connection: sqlite tolerates one writer at a time.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS votes (
		message_id   TEXT NOT NULL,
		user_id      TEXT NOT NULL,
		display_name TEXT,
		created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (message_id, user_id)
	);`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}
	log.Println("✅ [RSVP] Base de votos lista.")
	return nil
}

// Toggle flips the user's vote on a message and returns the new total plus
// whether the user is now attending.
func (s *Store) Toggle(ctx context.Context, messageID, userID, displayName string) (count int, attending bool, err error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM votes WHERE message_id = ? AND user_id = ?`, messageID, userID)
	if err != nil {
		return 0, false, err
	}

	removed, _ := res.RowsAffected()
	if removed == 0 {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO votes (message_id, user_id, display_name) VALUES (?, ?, ?)`,
			messageID, userID, displayName)
		if err != nil {
			return 0, false, err
		}
		attending = true
	}

	count, err = s.Count(ctx, messageID)
	return count, attending, err
}

// Count returns how many users confirmed attendance for a message.
func (s *Store) Count(ctx context.Context, messageID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM votes WHERE message_id = ?`, messageID).Scan(&n)
	return n, err
}

// Attendees lists the display names of everyone attending, oldest vote first.
func (s *Store) Attendees(ctx context.Context, messageID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT display_name FROM votes WHERE message_id = ? ORDER BY created_at`, messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err == nil {
			names = append(names, name)
		}
	}
	return names, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
