package player

import (
	"database/sql"

	// database driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a Store backed by a sqlite database file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			bankroll INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the player with the id, or ErrPlayerNotFound
func (s *SQLiteStore) Get(id string) (*Player, error) {
	var p Player
	row := s.db.QueryRow("SELECT id, name, bankroll FROM players WHERE id = ?", id)
	if err := row.Scan(&p.ID, &p.Name, &p.Bankroll); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPlayerNotFound
		}

		return nil, err
	}

	return &p, nil
}

// Save inserts or updates the player
func (s *SQLiteStore) Save(player *Player) error {
	_, err := s.db.Exec(`
		INSERT INTO players (id, name, bankroll)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, bankroll = excluded.bankroll
	`, player.ID, player.Name, player.Bankroll)

	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
