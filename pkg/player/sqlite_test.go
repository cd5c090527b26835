package player

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	a := assert.New(t)

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "players.db"))
	require.NoError(t, err)
	defer s.Close() // nolint:errcheck

	_, err = s.Get("abc")
	a.Equal(ErrPlayerNotFound, err)

	a.NoError(s.Save(&Player{ID: "abc", Name: "Alice", Bankroll: 100}))

	p, err := s.Get("abc")
	a.NoError(err)
	a.Equal(&Player{ID: "abc", Name: "Alice", Bankroll: 100}, p)

	// saving again upserts
	a.NoError(s.Save(&Player{ID: "abc", Name: "Alicia", Bankroll: 42}))

	p, err = s.Get("abc")
	a.NoError(err)
	a.Equal(&Player{ID: "abc", Name: "Alicia", Bankroll: 42}, p)
}

func TestSQLiteStore_registry(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "players.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)

	r := NewRegistry(s, 500)
	_, err = r.Lookup("abc", "Alice")
	a.NoError(err)
	a.True(r.Pay("abc", 100))
	require.NoError(t, s.Close())

	// bankrolls survive a restart
	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close() // nolint:errcheck

	balance, err := NewRegistry(s, 500).Balance("abc")
	a.NoError(err)
	a.Equal(400, balance)
}
