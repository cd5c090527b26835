// Package holdem implements the authoritative rules engine for a Texas
// Hold'em table: seating, blinds, betting rounds, pot settlement, and the
// street state machine that drives a hand from deal to payout.
package holdem

import (
	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/handrank"
)

// Banker moves chips between player bankrolls and the table. The table never
// touches bankrolls directly; the player registry satisfies this interface.
type Banker interface {
	// Pay deducts amount from the player's bankroll, returning false without
	// mutation if it cannot be covered
	Pay(id string, amount int) bool
	// Collect credits winnings back to the player
	Collect(id string, amount int) error
	// Balance returns the player's current bankroll
	Balance(id string) (int, error)
}

// Stakes are the forced bets for a table
type Stakes struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
	Ante       int `json:"ante"`
}

// Options configures a table
type Options struct {
	PlayersLimit int    `json:"playersLimit"`
	Stakes       Stakes `json:"stakes"`

	// Seed makes every shuffle reproducible when non-zero. Tests only.
	Seed int64 `json:"-"`
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		PlayersLimit: 9,
		Stakes: Stakes{
			SmallBlind: 25,
			BigBlind:   50,
		},
	}
}

// Table owns all per-hand mutable state: seating, bets, pot, board, and the
// turn pointer. It exposes the betting primitives; it never initiates its own
// street transitions, the Game is the sole driver.
type Table struct {
	options     Options
	seats       []*Participant
	board       deck.Hand
	pot         int
	currentBet  int
	buttonSeat  int
	currentSeat int
	deck        *deck.Deck
	banker      Banker
	logger      logrus.FieldLogger
}

// NewTable returns a table with every seat empty
func NewTable(logger logrus.FieldLogger, banker Banker, opts Options) *Table {
	if opts.PlayersLimit <= 0 {
		opts.PlayersLimit = DefaultOptions().PlayersLimit
	}

	return &Table{
		options:     opts,
		seats:       make([]*Participant, opts.PlayersLimit),
		board:       make(deck.Hand, 0, 5),
		buttonSeat:  -1,
		currentSeat: -1,
		banker:      banker,
		logger:      logger,
	}
}

// SeatPlayer binds the player to the seat. It fails if the seat index is out
// of range, the seat is taken, or the player already holds a seat.
func (t *Table) SeatPlayer(id, name string, seat int) error {
	if seat < 0 || seat >= len(t.seats) {
		return ErrSeatOutOfRange
	}

	if t.seats[seat] != nil {
		return ErrSeatOccupied
	}

	for _, p := range t.seats {
		if p != nil && p.PlayerID == id {
			return ErrPlayerAlreadySeated
		}
	}

	t.seats[seat] = newParticipant(id, name)
	return nil
}

// LeavePlayer vacates the player's seat
func (t *Table) LeavePlayer(id string) error {
	for i, p := range t.seats {
		if p != nil && p.PlayerID == id {
			t.seats[i] = nil
			return nil
		}
	}

	return ErrPlayerNotSeated
}

// CurrentParticipant returns the participant whose turn it is, or nil
func (t *Table) CurrentParticipant() *Participant {
	if t.currentSeat < 0 {
		return nil
	}

	return t.seats[t.currentSeat]
}

// NextSeat advances the turn pointer to the next ongoing occupant.
// The caller guarantees at least one ongoing occupant exists.
func (t *Table) NextSeat() {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		index := (t.currentSeat + i) % n
		if p := t.seats[index]; p != nil && p.ongoing {
			t.currentSeat = index
			return
		}
	}

	panic("no ongoing participants")
}

// Bet commits the acting seat to amount for this round. The delta over what
// the seat already committed is paid from the bankroll; an uncovered delta
// rejects the bet without mutation.
func (t *Table) Bet(amount int) error {
	p := t.CurrentParticipant()
	if p == nil {
		return ErrPlayerNotSeated
	}

	if amount < p.bet {
		return ErrInvalidBet
	}

	if !t.banker.Pay(p.PlayerID, amount-p.bet) {
		return ErrInsufficientFunds
	}

	p.commit(amount)
	if amount > t.currentBet {
		t.currentBet = amount
	}

	p.acted = true
	return nil
}

// Call matches the current bet level
func (t *Table) Call() error {
	return t.Bet(t.currentBet)
}

// Raise bets above the current bet level
func (t *Table) Raise(amount int) error {
	if amount <= t.currentBet {
		return ErrRaiseTooLow
	}

	return t.Bet(amount)
}

// Fold removes the acting seat from the hand
func (t *Table) Fold() {
	p := t.CurrentParticipant()
	if p == nil {
		return
	}

	p.ongoing = false
	p.acted = true
	p.result = resultFolded
}

// Check passes the action. It is only legal when the acting seat has already
// matched the current bet level (the big blind's preflop option included).
func (t *Table) Check() error {
	p := t.CurrentParticipant()
	if p == nil {
		return ErrPlayerNotSeated
	}

	if p.bet != t.currentBet {
		return ErrCheckNotAllowed
	}

	p.acted = true
	return nil
}

// Reveal marks the acting seat's hole cards visible at showdown
func (t *Table) Reveal() {
	p := t.CurrentParticipant()
	if p == nil {
		return
	}

	p.reveal = true
	p.acted = true
}

// IsRoundOver reports whether the current betting round is complete: false
// with no ongoing seats, true with exactly one (hand decided), otherwise true
// iff every ongoing seat has acted and matched the current bet level.
func (t *Table) IsRoundOver() bool {
	ongoing := t.ongoingParticipants()
	if len(ongoing) == 0 {
		return false
	}

	if len(ongoing) == 1 {
		return true
	}

	for _, p := range ongoing {
		if !p.acted || p.bet != t.currentBet {
			return false
		}
	}

	return true
}

// NextRoundInitialize sweeps all per-seat bets into the pot, clears the
// per-round state, and puts the action on the first ongoing seat after the
// button.
func (t *Table) NextRoundInitialize() {
	for _, p := range t.seats {
		if p == nil {
			continue
		}

		t.pot += p.bet
		p.newRound()
	}

	t.currentBet = 0

	if t.OngoingCount() == 0 {
		t.currentSeat = -1
		return
	}

	t.currentSeat = t.buttonSeat
	t.NextSeat()
}

// UpdateHandRanks recomputes every ongoing occupant's hand rank from their
// hole cards and the board
func (t *Table) UpdateHandRanks() {
	for _, p := range t.seats {
		if p != nil && p.ongoing {
			p.updateHandRank(t.board)
		}
	}
}

// DealBoard draws n cards onto the board
func (t *Table) DealBoard(n int) error {
	cards, err := t.deck.Draw(n)
	if err != nil {
		return err
	}

	t.board = append(t.board, cards...)
	return nil
}

// StartHand deals a fresh hand: it replaces the deck, advances the button,
// collects antes, deals two hole cards to each dealt-in player, and posts the
// blinds. Seated players whose bankroll cannot cover the ante plus the big
// blind sit the hand out. Fails without mutation if fewer than two players
// can be dealt in.
func (t *Table) StartHand() error {
	required := t.options.Stakes.Ante + t.options.Stakes.BigBlind

	eligible := make([]*Participant, 0, len(t.seats))
	for _, p := range t.seats {
		if p == nil {
			continue
		}

		balance, err := t.banker.Balance(p.PlayerID)
		if err != nil || balance < required {
			continue
		}

		eligible = append(eligible, p)
	}

	if len(eligible) < 2 {
		return ErrNotEnoughPlayers
	}

	d := deck.New()
	d.Shuffle(t.options.Seed)
	t.deck = d
	t.board = make(deck.Hand, 0, 5)
	t.pot = 0
	t.currentBet = 0

	for _, p := range t.seats {
		if p != nil {
			p.newHand()
		}
	}

	for _, p := range eligible {
		p.ongoing = true
	}

	if ante := t.options.Stakes.Ante; ante > 0 {
		for _, p := range eligible {
			if t.banker.Pay(p.PlayerID, ante) {
				t.pot += ante
			} else {
				p.ongoing = false
			}
		}

		if t.OngoingCount() < 2 {
			t.refundAntes()
			return ErrNotEnoughPlayers
		}
	}

	t.buttonSeat = t.nextOngoingSeat(t.buttonSeat)
	t.dealHoleCards()
	t.postBlinds()

	return nil
}

func (t *Table) refundAntes() {
	ante := t.options.Stakes.Ante
	for _, p := range t.seats {
		if p == nil || !p.ongoing {
			continue
		}

		if err := t.banker.Collect(p.PlayerID, ante); err != nil {
			t.logger.WithError(err).WithField("playerId", p.PlayerID).Error("could not refund ante")
		}

		p.ongoing = false
	}

	t.pot = 0
}

func (t *Table) dealHoleCards() {
	for i := 0; i < 2; i++ {
		seat := t.buttonSeat
		for j := 0; j < t.OngoingCount(); j++ {
			seat = t.nextOngoingSeat(seat)
			cards, err := t.deck.Draw(1)
			if err != nil {
				panic("deck exhausted while dealing hole cards")
			}

			t.seats[seat].cards.AddCard(cards[0])
		}
	}
}

// postBlinds posts the forced bets and sets the opening turn. Heads-up the
// button posts the small blind and acts first; otherwise the two seats after
// the button post and the action opens on the seat after the big blind.
func (t *Table) postBlinds() {
	var sb, bb, first int
	if t.OngoingCount() == 2 {
		sb = t.buttonSeat
		bb = t.nextOngoingSeat(sb)
		first = t.buttonSeat
	} else {
		sb = t.nextOngoingSeat(t.buttonSeat)
		bb = t.nextOngoingSeat(sb)
		first = t.nextOngoingSeat(bb)
	}

	t.postBlind(sb, t.options.Stakes.SmallBlind)
	t.postBlind(bb, t.options.Stakes.BigBlind)
	t.currentSeat = first
}

func (t *Table) postBlind(seat, amount int) {
	p := t.seats[seat]
	if !t.banker.Pay(p.PlayerID, amount) {
		t.logger.WithField("playerId", p.PlayerID).Warn("could not post blind")
		p.ongoing = false
		return
	}

	p.commit(amount)
	if amount > t.currentBet {
		t.currentBet = amount
	}
}

// FinishHand settles the pot: a sole ongoing occupant wins it uncontested,
// otherwise it goes to the strongest hand among the ongoing occupants, split
// evenly on ties with odd chips to the earliest winner clockwise from the
// button. All outstanding bets must have been swept into the pot first.
func (t *Table) FinishHand() []*Participant {
	ongoing := t.ongoingParticipants()
	if len(ongoing) == 0 {
		t.pot = 0
		return nil
	}

	var winners []*Participant
	if len(ongoing) == 1 {
		winners = ongoing
	} else {
		t.UpdateHandRanks()
		winners = t.bestHands(ongoing)
	}

	share := t.pot / len(winners)
	remainder := t.pot % len(winners)

	isWinner := make(map[*Participant]bool, len(winners))
	for _, p := range winners {
		isWinner[p] = true
	}

	// pay clockwise from the button so odd chips land on the earliest winner
	seat := t.buttonSeat
	paid := 0
	for i := 0; i < len(t.seats) && paid < len(winners); i++ {
		seat = t.nextOngoingSeat(seat)
		p := t.seats[seat]

		if !isWinner[p] {
			p.result = resultLost
			continue
		}

		amount := share
		if paid < remainder {
			amount++
		}

		p.result = resultWon
		p.winnings = amount
		if err := t.banker.Collect(p.PlayerID, amount); err != nil {
			t.logger.WithError(err).WithField("playerId", p.PlayerID).Error("could not pay out winnings")
		}

		paid++
	}

	// losers past the last winner in seat order
	for _, p := range ongoing {
		if p.result == resultPending {
			p.result = resultLost
		}
	}

	t.pot = 0
	return winners
}

// bestHands returns the participants holding the strongest hand, in seat
// order clockwise from the button
func (t *Table) bestHands(ongoing []*Participant) []*Participant {
	var best *handrank.HandRank
	for _, p := range ongoing {
		if p.handRank == nil {
			continue
		}

		if best == nil || handrank.Compare(*p.handRank, *best) > 0 {
			best = p.handRank
		}
	}

	if best == nil {
		return ongoing
	}

	winners := make([]*Participant, 0, len(ongoing))
	seat := t.buttonSeat
	for i := 0; i < len(ongoing); i++ {
		seat = t.nextOngoingSeat(seat)
		p := t.seats[seat]
		if p.handRank != nil && handrank.Compare(*p.handRank, *best) == 0 {
			winners = append(winners, p)
		}
	}

	return winners
}

// ResetHand clears all per-hand state back to the pre-deal baseline. Seating
// and the button are preserved.
func (t *Table) ResetHand() {
	for _, p := range t.seats {
		if p != nil {
			p.newHand()
		}
	}

	t.board = make(deck.Hand, 0, 5)
	t.pot = 0
	t.currentBet = 0
	t.currentSeat = -1
	t.deck = nil
}

// OngoingCount returns the number of seats still in the hand
func (t *Table) OngoingCount() int {
	return len(t.ongoingParticipants())
}

// SeatedCount returns the number of occupied seats
func (t *Table) SeatedCount() int {
	count := 0
	for _, p := range t.seats {
		if p != nil {
			count++
		}
	}

	return count
}

// Pot returns the settled pot size
func (t *Table) Pot() int {
	return t.pot
}

// CurrentBet returns the amount every ongoing seat must match
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// Board returns the community cards
func (t *Table) Board() deck.Hand {
	return t.board
}

func (t *Table) ongoingParticipants() []*Participant {
	ongoing := make([]*Participant, 0, len(t.seats))
	for _, p := range t.seats {
		if p != nil && p.ongoing {
			ongoing = append(ongoing, p)
		}
	}

	return ongoing
}

// nextOngoingSeat returns the first seat after from holding an ongoing
// occupant, precondition: one exists
func (t *Table) nextOngoingSeat(from int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		index := (from + i) % n
		if p := t.seats[index]; p != nil && p.ongoing {
			return index
		}
	}

	panic("no ongoing participants")
}
