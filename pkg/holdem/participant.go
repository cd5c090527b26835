package holdem

import (
	"holdemtable-server/pkg/deck"
	"holdemtable-server/pkg/handrank"
)

type result string

const (
	resultPending result = ""
	resultFolded  result = "folded"
	resultLost    result = "lost"
	resultWon     result = "won"
)

// Participant represents a seated player for the duration of a hand
type Participant struct {
	PlayerID string
	Name     string

	cards deck.Hand
	bet   int

	ongoing bool
	acted   bool
	reveal  bool

	handRank *handrank.HandRank
	result   result
	winnings int
}

func newParticipant(id, name string) *Participant {
	return &Participant{
		PlayerID: id,
		Name:     name,
		cards:    make(deck.Hand, 0, 2),
		result:   resultPending,
	}
}

// Bet commits the participant to the specified total for the round and
// returns the delta over what was already committed
func (p *Participant) commit(amount int) int {
	diff := amount - p.bet
	p.bet = amount

	return diff
}

// newRound resets the participant's per-round betting state
func (p *Participant) newRound() {
	p.bet = 0
	p.acted = false
}

// newHand resets the participant for the next hand, keeping the seat
func (p *Participant) newHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.bet = 0
	p.ongoing = false
	p.acted = false
	p.reveal = false
	p.handRank = nil
	p.result = resultPending
	p.winnings = 0
}

// updateHandRank recomputes the participant's best hand from hole + board.
// With fewer than five cards available the rank stays nil.
func (p *Participant) updateHandRank(board deck.Hand) {
	cards := make([]deck.Card, 0, len(p.cards)+len(board))
	cards = append(cards, p.cards...)
	cards = append(cards, board...)

	rank, err := handrank.Evaluate(cards)
	if err != nil {
		p.handRank = nil
		return
	}

	p.handRank = &rank
}
