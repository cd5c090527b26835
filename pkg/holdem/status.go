package holdem

import (
	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/handrank"
)

// Update is one status notification produced by the game. The room layer
// delivers the unicast payload to its addressee and the broadcast payload to
// everyone else; a player's unicast entry always wins over the broadcast.
type Update struct {
	Unicast   map[string]*Status
	Broadcast *Status
}

// Status is a table snapshot delivered to clients. Hand and HandRank are the
// recipient's private cards and are only populated on unicast payloads.
type Status struct {
	State    string             `json:"state"`
	Hand     deck.Hand          `json:"hand,omitempty"`
	HandRank *handrank.HandRank `json:"handRank,omitempty"`
	Seats    []*SeatStatus      `json:"seats"`
	Button   int                `json:"button"`
	Current  int                `json:"current"`
	Board    deck.Hand          `json:"board"`
	Pot      int                `json:"pot"`
	Stakes   Stakes             `json:"stakes"`
}

// SeatStatus is one entry of the seating chart; an empty seat is nil.
// Hand is only set once the occupant revealed at showdown.
type SeatStatus struct {
	PlayerID string    `json:"playerId"`
	Name     string    `json:"name"`
	Bet      int       `json:"bet"`
	Ongoing  bool      `json:"ongoing"`
	Acted    bool      `json:"acted"`
	Hand     deck.Hand `json:"hand,omitempty"`
	HandName string    `json:"handName,omitempty"`
	Result   result    `json:"result,omitempty"`
	Winnings int       `json:"winnings,omitempty"`
}

// CurrentStatus returns the notification for the table as it stands, for
// bringing a newly-connected observer up to date
func (g *Game) CurrentStatus() Update {
	return g.status()
}

// status builds the notification for the current table state
func (g *Game) status() Update {
	unicast := make(map[string]*Status)
	for _, p := range g.table.seats {
		if p == nil {
			continue
		}

		s := g.snapshot()
		s.Hand = p.cards.Clone()
		s.HandRank = p.handRank
		unicast[p.PlayerID] = s
	}

	return Update{
		Unicast:   unicast,
		Broadcast: g.snapshot(),
	}
}

func (g *Game) snapshot() *Status {
	seats := make([]*SeatStatus, len(g.table.seats))
	for i, p := range g.table.seats {
		if p == nil {
			continue
		}

		s := &SeatStatus{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Bet:      p.bet,
			Ongoing:  p.ongoing,
			Acted:    p.acted,
			Result:   p.result,
			Winnings: p.winnings,
		}

		if p.reveal && p.ongoing {
			s.Hand = p.cards.Clone()
			if p.handRank != nil {
				s.HandName = p.handRank.String()
			}
		}

		seats[i] = s
	}

	return &Status{
		State:   g.street.String(),
		Seats:   seats,
		Button:  g.table.buttonSeat,
		Current: g.table.currentSeat,
		Board:   g.table.board.Clone(),
		Pot:     g.table.pot,
		Stakes:  g.table.options.Stakes,
	}
}
