package handrank

import (
	"testing"

	"holdemtable-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func mustEvaluate(t *testing.T, s string) HandRank {
	t.Helper()

	rank, err := Evaluate(deck.CardsFromString(s))
	assert.NoError(t, err)
	return rank
}

func TestEvaluate_categories(t *testing.T) {
	a := assert.New(t)

	a.Equal(HandRank{Category: RoyalFlush}, mustEvaluate(t, "10s,11s,12s,13s,14s"))

	a.Equal(HandRank{Category: StraightFlush, Tiebreaks: []int{9}}, mustEvaluate(t, "5h,6h,7h,8h,9h"))

	a.Equal(HandRank{
		Category:  FourOfAKind,
		Tiebreaks: []int{3},
		Kickers:   []int{2},
	}, mustEvaluate(t, "2c,3c,3d,3h,3s"))

	a.Equal(HandRank{
		Category:  FullHouse,
		Tiebreaks: []int{5, 14},
	}, mustEvaluate(t, "5c,5d,5h,14c,14d"))

	a.Equal(HandRank{
		Category: Flush,
		Kickers:  []int{13, 9, 7, 4, 2},
	}, mustEvaluate(t, "2d,4d,7d,9d,13d"))

	a.Equal(HandRank{Category: Straight, Tiebreaks: []int{8}}, mustEvaluate(t, "4c,5d,6h,7s,8c"))

	a.Equal(HandRank{
		Category:  ThreeOfAKind,
		Tiebreaks: []int{7},
		Kickers:   []int{12, 3},
	}, mustEvaluate(t, "7c,7d,7h,12c,3d"))

	a.Equal(HandRank{
		Category:  TwoPair,
		Tiebreaks: []int{10, 4},
		Kickers:   []int{14},
	}, mustEvaluate(t, "10c,10d,4h,4s,14c"))

	a.Equal(HandRank{
		Category:  OnePair,
		Tiebreaks: []int{5},
		Kickers:   []int{13, 8, 2},
	}, mustEvaluate(t, "5c,5d,13h,8s,2c"))

	a.Equal(HandRank{
		Category: HighCard,
		Kickers:  []int{14, 8, 5, 3, 2},
	}, mustEvaluate(t, "14c,2c,5c,8d,3h"))
}

func TestEvaluate_wheel(t *testing.T) {
	a := assert.New(t)

	// the ace plays low in a wheel, so its high card is the five
	wheel := mustEvaluate(t, "14c,2d,3h,4s,5c")
	a.Equal(HandRank{Category: Straight, Tiebreaks: []int{5}}, wheel)

	sixHigh := mustEvaluate(t, "2d,3h,4s,5c,6d")
	a.True(Compare(wheel, sixHigh) < 0)

	steelWheel := mustEvaluate(t, "14c,2c,3c,4c,5c")
	a.Equal(HandRank{Category: StraightFlush, Tiebreaks: []int{5}}, steelWheel)
}

func TestEvaluate_bestOfSeven(t *testing.T) {
	a := assert.New(t)

	// the pair of aces must not crowd out the flush
	rank := mustEvaluate(t, "14c,14d,2c,6c,9c,12c,3d")
	a.Equal(Flush, rank.Category)
	a.Equal([]int{14, 12, 9, 6, 2}, rank.Kickers)

	// board plays: everyone holds the same straight
	rank = mustEvaluate(t, "9c,10d,11h,12s,13c,2d,2h")
	a.Equal(HandRank{Category: Straight, Tiebreaks: []int{13}}, rank)

	// seven suited cards keep only the five highest
	rank = mustEvaluate(t, "2s,3s,5s,7s,9s,11s,13s")
	a.Equal(HandRank{
		Category: Flush,
		Kickers:  []int{13, 11, 9, 7, 5},
	}, rank)
}

func TestEvaluate_notEnoughCards(t *testing.T) {
	_, err := Evaluate(deck.CardsFromString("2c,3c,4c,5c"))
	assert.Equal(t, ErrNotEnoughCards, err)

	_, err = Evaluate(nil)
	assert.Equal(t, ErrNotEnoughCards, err)
}

func TestCompare_ordering(t *testing.T) {
	a := assert.New(t)

	// weakest to strongest, one hand per category
	hands := []HandRank{
		mustEvaluate(t, "14c,2c,5c,8d,3h"),
		mustEvaluate(t, "5c,5d,13h,8s,2c"),
		mustEvaluate(t, "10c,10d,4h,4s,14c"),
		mustEvaluate(t, "7c,7d,7h,12c,3d"),
		mustEvaluate(t, "4c,5d,6h,7s,8c"),
		mustEvaluate(t, "2d,4d,7d,9d,13d"),
		mustEvaluate(t, "5c,5d,5h,14c,14d"),
		mustEvaluate(t, "2c,3c,3d,3h,3s"),
		mustEvaluate(t, "5h,6h,7h,8h,9h"),
		mustEvaluate(t, "10s,11s,12s,13s,14s"),
	}

	for i := range hands {
		for j := range hands {
			cmp := Compare(hands[i], hands[j])
			switch {
			case i < j:
				a.Negative(cmp, "expected hand %d < hand %d", i, j)
			case i > j:
				a.Positive(cmp, "expected hand %d > hand %d", i, j)
			default:
				a.Zero(cmp)
			}
		}
	}
}

func TestCompare_sameCategory(t *testing.T) {
	a := assert.New(t)

	// higher pair wins before kickers are consulted
	a.Positive(Compare(
		mustEvaluate(t, "9c,9d,2h,3s,4c"),
		mustEvaluate(t, "8c,8d,14h,13s,12c"),
	))

	// identical pairs fall through to kickers
	a.Positive(Compare(
		mustEvaluate(t, "9c,9d,14h,3s,4c"),
		mustEvaluate(t, "9h,9s,13h,3d,4d"),
	))

	// same hand in different suits is an exact tie
	a.Zero(Compare(
		mustEvaluate(t, "2c,5c,9c,11c,13c"),
		mustEvaluate(t, "2d,5d,9d,11d,13d"),
	))

	// fuller full house
	a.Positive(Compare(
		mustEvaluate(t, "6c,6d,6h,2c,2d"),
		mustEvaluate(t, "5c,5d,5h,14c,14d"),
	))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Royal flush", RoyalFlush.String())
	assert.Equal(t, "Straight flush", mustEvaluate(t, "5h,6h,7h,8h,9h").String())

	assert.Panics(t, func() {
		_ = Category(0).String()
	})
}
