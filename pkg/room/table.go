// Package room connects websocket clients to tables. A Dealer owns one
// table's game and serializes every action through its run loop; the PitBoss
// dispatches connecting clients to dealers.
package room

import (
	"time"

	"github.com/google/uuid"

	"holdemtable-server/pkg/holdem"
)

// Table is the room-level record of a table
type Table struct {
	UUID      string         `json:"uuid"`
	Name      string         `json:"name"`
	Options   holdem.Options `json:"options"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NewTable returns a table record with a fresh UUID
func NewTable(name string, opts holdem.Options) *Table {
	return &Table{
		UUID:      uuid.New().String(),
		Name:      name,
		Options:   opts,
		CreatedAt: time.Now(),
	}
}
