// Package player tracks player identity and bankrolls across tables.
package player

// Player is a registered player and their bankroll
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bankroll int    `json:"bankroll"`
}
