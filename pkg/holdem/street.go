package holdem

import "encoding/json"

// Street represents the stage of a hand
type Street int

// constants for Street
const (
	StreetBeforeGame Street = iota
	StreetPreflop
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
	StreetGameEnd
)

func (s Street) String() string {
	switch s {
	case StreetBeforeGame:
		return "before-game"
	case StreetPreflop:
		return "preflop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	case StreetGameEnd:
		return "game-end"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
