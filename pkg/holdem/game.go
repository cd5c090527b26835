package holdem

import (
	"github.com/sirupsen/logrus"
)

// Game drives a table through the streets of a hand. It routes each inbound
// action to the table operation legal in the current street, ignores the
// rest, and performs the street transitions once a round is over. The table
// never transitions on its own.
//
// Game is not safe for concurrent use; the room layer serializes all calls.
type Game struct {
	table  *Table
	street Street
	logger logrus.FieldLogger
}

// NewGame returns a game waiting for players
func NewGame(logger logrus.FieldLogger, table *Table) *Game {
	return &Game{
		table:  table,
		street: StreetBeforeGame,
		logger: logger,
	}
}

// Street returns the current street
func (g *Game) Street() Street {
	return g.street
}

// Table returns the underlying table
func (g *Game) Table() *Table {
	return g.table
}

// HandleAction processes one inbound action and returns the notifications it
// produced, one per successful mutation or street entered, in order. An
// action that is illegal in the current street, out of turn, or invalid is
// rejected silently: nil is returned and nothing was mutated.
func (g *Game) HandleAction(act Action) []Update {
	switch g.street {
	case StreetBeforeGame:
		return g.handleBeforeGame(act)
	case StreetPreflop, StreetFlop, StreetTurn, StreetRiver:
		return g.handleBettingRound(act)
	case StreetShowdown:
		return g.handleShowdown(act)
	case StreetGameEnd:
		return g.handleGameEnd(act)
	}

	return nil
}

func (g *Game) handleBeforeGame(act Action) []Update {
	switch act.Kind {
	case ActionSeat:
		if err := g.table.SeatPlayer(act.ClientID, act.Name, act.Amount); err != nil {
			g.reject(act, err)
			return nil
		}
	case ActionLeave:
		if err := g.table.LeavePlayer(act.ClientID); err != nil {
			g.reject(act, err)
			return nil
		}
	case ActionReset:
		g.table.ResetHand()
	case ActionStart:
		if err := g.table.StartHand(); err != nil {
			g.reject(act, err)
			return nil
		}

		g.street = StreetPreflop
	default:
		return nil
	}

	return []Update{g.status()}
}

func (g *Game) handleBettingRound(act Action) []Update {
	p := g.table.CurrentParticipant()
	if p == nil || p.PlayerID != act.ClientID {
		return nil
	}

	var err error
	switch act.Kind {
	case ActionCheck:
		err = g.table.Check()
	case ActionBet:
		err = g.table.Bet(act.Amount)
	case ActionCall:
		err = g.table.Call()
	case ActionRaise:
		err = g.table.Raise(act.Amount)
	case ActionFold:
		g.table.Fold()
	default:
		return nil
	}

	if err != nil {
		g.reject(act, err)
		return nil
	}

	return g.advance()
}

func (g *Game) handleShowdown(act Action) []Update {
	p := g.table.CurrentParticipant()
	if p == nil || p.PlayerID != act.ClientID {
		return nil
	}

	switch act.Kind {
	case ActionShowdown:
		g.table.Reveal()
	case ActionMuck:
		g.table.Fold()
	default:
		return nil
	}

	return g.advance()
}

// handleGameEnd runs the acknowledgement round: each remaining player checks
// to signal they are ready before the table resets for the next hand
func (g *Game) handleGameEnd(act Action) []Update {
	p := g.table.CurrentParticipant()
	if p == nil || p.PlayerID != act.ClientID {
		return nil
	}

	if act.Kind != ActionCheck {
		return nil
	}

	if err := g.table.Check(); err != nil {
		g.reject(act, err)
		return nil
	}

	return g.advance()
}

// advance emits the status for the mutation just made and, if it ended the
// round, drives street transitions until a street that awaits player input
// is reached, emitting a status per street entered
func (g *Game) advance() []Update {
	if !g.table.IsRoundOver() {
		g.table.NextSeat()
		return []Update{g.status()}
	}

	updates := make([]Update, 0, 2)
	updates = append(updates, g.status())

	for g.table.IsRoundOver() {
		g.enterNextStreet()
		updates = append(updates, g.status())

		if g.street == StreetBeforeGame {
			break
		}
	}

	return updates
}

func (g *Game) enterNextStreet() {
	// a decided hand skips straight to settlement
	if g.street != StreetGameEnd && g.table.OngoingCount() <= 1 {
		g.enterGameEnd()
		return
	}

	switch g.street {
	case StreetPreflop:
		g.table.NextRoundInitialize()
		g.dealBoard(3)
		g.street = StreetFlop
	case StreetFlop:
		g.table.NextRoundInitialize()
		g.dealBoard(1)
		g.street = StreetTurn
	case StreetTurn:
		g.table.NextRoundInitialize()
		g.dealBoard(1)
		g.street = StreetRiver
	case StreetRiver:
		g.table.NextRoundInitialize()
		g.street = StreetShowdown
	case StreetShowdown:
		g.enterGameEnd()
	case StreetGameEnd:
		g.table.ResetHand()
		g.street = StreetBeforeGame
	}
}

func (g *Game) enterGameEnd() {
	g.table.NextRoundInitialize()
	g.table.FinishHand()
	g.street = StreetGameEnd
}

func (g *Game) dealBoard(n int) {
	if err := g.table.DealBoard(n); err != nil {
		panic("deck exhausted while dealing the board")
	}

	g.table.UpdateHandRanks()
}

func (g *Game) reject(act Action, err error) {
	g.logger.WithError(err).WithFields(logrus.Fields{
		"action":   act.Kind.String(),
		"playerId": act.ClientID,
	}).Debug("action rejected")
}
