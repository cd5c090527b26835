package holdem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdemtable-server/pkg/player"
)

func testGame(t *testing.T, stakes Stakes, ids ...string) (*Game, *player.Registry) {
	t.Helper()

	registry := testBanker(t, 1000, ids...)
	table := NewTable(logrus.New(), registry, Options{
		PlayersLimit: 4,
		Stakes:       stakes,
		Seed:         1,
	})

	game := NewGame(logrus.New(), table)
	for i, id := range ids {
		updates := game.HandleAction(Action{Kind: ActionSeat, ClientID: id, Name: id, Amount: i})
		require.Len(t, updates, 1)
	}

	return game, registry
}

func act(kind ActionKind, id string, amount int) Action {
	return Action{Kind: kind, ClientID: id, Amount: amount}
}

// committed returns all chips in flight this hand: pot plus live bets
func committed(table *Table) int {
	total := table.Pot()
	for _, p := range table.seats {
		if p != nil {
			total += p.bet
		}
	}

	return total
}

func assertConserved(t *testing.T, game *Game, registry *player.Registry, ids []string, bankrolls int) {
	t.Helper()

	total := committed(game.Table())
	for _, id := range ids {
		total += balance(t, registry, id)
	}

	assert.Equal(t, bankrolls, total)
}

func TestGame_headsUpBlinds(t *testing.T) {
	a := assert.New(t)
	game, _ := testGame(t, Stakes{SmallBlind: 25, BigBlind: 50}, "p1", "p2")

	updates := game.HandleAction(act(ActionStart, "p1", 0))
	require.Len(t, updates, 1)
	a.Equal(StreetPreflop, game.Street())

	table := game.Table()

	// the button posts the small blind and acts first
	a.Equal(0, table.buttonSeat)
	a.Equal(25, table.seats[0].bet)
	a.Equal(50, table.seats[1].bet)
	a.Equal(50, table.CurrentBet())
	a.Equal("p1", table.CurrentParticipant().PlayerID)

	// a call by the button, then a check by the big blind, ends preflop
	updates = game.HandleAction(act(ActionCall, "p1", 0))
	require.Len(t, updates, 1)
	a.Equal(StreetPreflop, game.Street())
	a.Equal("p2", table.CurrentParticipant().PlayerID)

	updates = game.HandleAction(act(ActionCheck, "p2", 0))
	require.Len(t, updates, 2)
	a.Equal(StreetFlop, game.Street())

	// exactly three board cards, blinds swept into the pot
	a.Len(table.Board(), 3)
	a.Equal(100, table.Pot())
	a.Equal(0, table.CurrentBet())

	// post-flop the big blind acts first
	a.Equal("p2", table.CurrentParticipant().PlayerID)
}

func TestGame_foldDown(t *testing.T) {
	a := assert.New(t)
	ids := []string{"p1", "p2", "p3"}
	game, registry := testGame(t, Stakes{SmallBlind: 25, BigBlind: 50}, ids...)

	game.HandleAction(act(ActionStart, "p1", 0))
	table := game.Table()

	// button 0, small blind 1, big blind 2, action on the button
	a.Equal("p1", table.CurrentParticipant().PlayerID)

	game.HandleAction(act(ActionFold, "p1", 0))
	a.Equal(StreetPreflop, game.Street())
	a.Equal("p2", table.CurrentParticipant().PlayerID)

	// the second fold decides the hand despite the unmatched blinds
	updates := game.HandleAction(act(ActionFold, "p2", 0))
	require.NotEmpty(t, updates)

	// the sole remaining player wins uncontested and the table resets
	a.Equal(StreetBeforeGame, game.Street())
	a.Equal(0, table.Pot())
	a.Equal(1025, balance(t, registry, "p3"))
	a.Equal(975, balance(t, registry, "p2"))
	a.Equal(1000, balance(t, registry, "p1"))

	// updates walked through game-end and back to before-game
	last := updates[len(updates)-1]
	a.Equal("before-game", last.Broadcast.State)

	// seating survives the reset
	a.Equal(3, table.SeatedCount())
	a.Empty(table.Board())
}

func TestGame_silentRejections(t *testing.T) {
	a := assert.New(t)
	game, registry := testGame(t, Stakes{SmallBlind: 25, BigBlind: 50}, "p1", "p2")

	// start needs two players, but a lone stranger cannot trigger anything
	a.Nil(game.HandleAction(act(ActionBet, "p1", 100)))

	game.HandleAction(act(ActionStart, "p1", 0))
	table := game.Table()

	// out of turn
	a.Nil(game.HandleAction(act(ActionCall, "p2", 0)))
	a.Equal("p1", table.CurrentParticipant().PlayerID)

	// unknown client
	a.Nil(game.HandleAction(act(ActionCall, "p9", 0)))

	// raise at or below the current level
	a.Nil(game.HandleAction(act(ActionRaise, "p1", 50)))
	a.Equal(50, table.CurrentBet())

	// bet beyond the bankroll leaves everything untouched
	a.Nil(game.HandleAction(act(ActionBet, "p1", 5000)))
	a.Equal(25, table.seats[0].bet)
	a.Equal(975, balance(t, registry, "p1"))

	// actions not legal on this street
	a.Nil(game.HandleAction(act(ActionSeat, "p1", 3)))
	a.Nil(game.HandleAction(act(ActionShowdown, "p1", 0)))
	a.Nil(game.HandleAction(act(ActionStart, "p1", 0)))
	a.Nil(game.HandleAction(act(ActionUnknown, "p1", 0)))

	// the hand is still exactly where it was
	a.Equal(StreetPreflop, game.Street())
	a.Equal("p1", table.CurrentParticipant().PlayerID)
}

func TestGame_fullHandToShowdown(t *testing.T) {
	a := assert.New(t)
	ids := []string{"p1", "p2"}
	game, registry := testGame(t, Stakes{SmallBlind: 25, BigBlind: 50}, ids...)
	table := game.Table()

	game.HandleAction(act(ActionStart, "p1", 0))
	assertConserved(t, game, registry, ids, 2000)

	// preflop: button calls, big blind raises, button calls
	game.HandleAction(act(ActionCall, "p1", 0))
	game.HandleAction(act(ActionRaise, "p2", 150))
	updates := game.HandleAction(act(ActionCall, "p1", 0))
	require.Len(t, updates, 2)
	a.Equal(StreetFlop, game.Street())
	a.Equal(300, table.Pot())
	assertConserved(t, game, registry, ids, 2000)

	// flop and turn get checked through
	game.HandleAction(act(ActionCheck, "p2", 0))
	game.HandleAction(act(ActionCheck, "p1", 0))
	a.Equal(StreetTurn, game.Street())
	a.Len(table.Board(), 4)

	game.HandleAction(act(ActionCheck, "p2", 0))
	game.HandleAction(act(ActionCheck, "p1", 0))
	a.Equal(StreetRiver, game.Street())
	a.Len(table.Board(), 5)

	// river: a bet and a call
	game.HandleAction(act(ActionBet, "p2", 100))
	game.HandleAction(act(ActionCall, "p1", 0))
	a.Equal(StreetShowdown, game.Street())
	a.Equal(500, table.Pot())

	// both reveal
	a.Equal("p2", table.CurrentParticipant().PlayerID)
	game.HandleAction(act(ActionShowdown, "p2", 0))
	updates = game.HandleAction(act(ActionShowdown, "p1", 0))
	require.Len(t, updates, 2)
	a.Equal(StreetGameEnd, game.Street())

	// the pot has been paid out in full to the winner(s)
	a.Equal(0, table.Pot())
	paid := 0
	ranked := 0
	for _, p := range table.seats[:2] {
		paid += p.winnings
		a.True(p.reveal)
		if p.result == resultWon {
			a.Positive(p.winnings)
		}
		if p.handRank != nil {
			ranked++
		}
	}
	a.Equal(500, paid)
	a.Equal(2, ranked)
	assertConserved(t, game, registry, ids, 2000)

	// both players ack, the table resets and keeps the seats
	game.HandleAction(act(ActionCheck, table.CurrentParticipant().PlayerID, 0))
	updates = game.HandleAction(act(ActionCheck, table.CurrentParticipant().PlayerID, 0))
	require.Len(t, updates, 2)
	a.Equal(StreetBeforeGame, game.Street())
	a.Equal(2, table.SeatedCount())
	a.Empty(table.Board())
	a.Nil(table.seats[0].handRank)

	// and a new hand can start right away
	game.HandleAction(act(ActionStart, "p1", 0))
	a.Equal(StreetPreflop, game.Street())
	a.Equal(1, table.buttonSeat)
}

func TestGame_showdownMuck(t *testing.T) {
	a := assert.New(t)
	game, registry := testGame(t, Stakes{SmallBlind: 25, BigBlind: 50}, "p1", "p2")
	table := game.Table()

	game.HandleAction(act(ActionStart, "p1", 0))
	game.HandleAction(act(ActionCall, "p1", 0))
	game.HandleAction(act(ActionCheck, "p2", 0))
	for game.Street() != StreetShowdown {
		game.HandleAction(act(ActionCheck, table.CurrentParticipant().PlayerID, 0))
	}

	// first to show mucks instead: hand decided without ranking
	updates := game.HandleAction(act(ActionMuck, "p2", 0))
	require.NotEmpty(t, updates)
	a.Equal(StreetBeforeGame, game.Street())
	a.Equal(1050, balance(t, registry, "p1"))
	a.Equal(950, balance(t, registry, "p2"))
}

func TestGame_statusPayloads(t *testing.T) {
	a := assert.New(t)
	game, _ := testGame(t, Stakes{SmallBlind: 25, BigBlind: 50}, "p1", "p2")

	updates := game.HandleAction(act(ActionStart, "p1", 0))
	require.Len(t, updates, 1)

	update := updates[0]
	require.NotNil(t, update.Broadcast)
	a.Equal("preflop", update.Broadcast.State)
	a.Equal(0, update.Broadcast.Button)
	a.Equal(0, update.Broadcast.Current)

	// hole cards ride only on the owner's unicast payload
	a.Empty(update.Broadcast.Hand)
	for _, seat := range update.Broadcast.Seats {
		require.NotNil(t, seat)
		a.Empty(seat.Hand)
	}

	require.Len(t, update.Unicast, 2)
	a.Len(update.Unicast["p1"].Hand, 2)
	a.Len(update.Unicast["p2"].Hand, 2)
	a.NotEqual(update.Unicast["p1"].Hand.String(), update.Unicast["p2"].Hand.String())

	// empty seats are nil chart entries
	a.Nil(update.Unicast["p1"].Seats[3])

	// private payloads must not alias table state
	update.Unicast["p1"].Hand[0] = update.Unicast["p2"].Hand[0]
	a.NotEqual(game.Table().seats[0].cards[0], game.Table().seats[1].cards[0])
}

func TestGame_revealInStatus(t *testing.T) {
	a := assert.New(t)
	game, _ := testGame(t, Stakes{SmallBlind: 25, BigBlind: 50}, "p1", "p2")
	table := game.Table()

	game.HandleAction(act(ActionStart, "p1", 0))
	game.HandleAction(act(ActionCall, "p1", 0))
	game.HandleAction(act(ActionCheck, "p2", 0))
	for game.Street() != StreetShowdown {
		game.HandleAction(act(ActionCheck, table.CurrentParticipant().PlayerID, 0))
	}

	updates := game.HandleAction(act(ActionShowdown, "p2", 0))
	require.Len(t, updates, 1)

	// the revealed hand is visible to everyone, with its rank named
	seat := updates[0].Broadcast.Seats[1]
	a.Len(seat.Hand, 2)
	a.NotEmpty(seat.HandName)

	// the other hand stays hidden
	a.Empty(updates[0].Broadcast.Seats[0].Hand)
}

func TestActionFromMessage(t *testing.T) {
	a := assert.New(t)

	action := ActionFromMessage(ActionMessage{
		Action:   "raise",
		ClientID: "abc",
		Name:     "Alice",
		Amount:   100,
	})
	a.Equal(Action{Kind: ActionRaise, ClientID: "abc", Name: "Alice", Amount: 100}, action)
	a.Equal("raise", action.Kind.String())

	action = ActionFromMessage(ActionMessage{Action: "dance", ClientID: "abc"})
	a.Equal(ActionUnknown, action.Kind)
	a.Equal("unknown", action.Kind.String())
}

func TestStreet_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("before-game", StreetBeforeGame.String())
	a.Equal("preflop", StreetPreflop.String())
	a.Equal("showdown", StreetShowdown.String())
	a.Equal("game-end", StreetGameEnd.String())
	a.Equal("", Street(99).String())
}
