package handrank

import (
	"errors"
	"sort"

	"holdemtable-server/pkg/deck"
)

// ErrNotEnoughCards is an error when fewer than five cards are offered for evaluation
var ErrNotEnoughCards = errors.New("at least five cards are required")

// HandRank is the rank of the best five-card hand a set of cards can make.
// Two ranks are compared by category first, then tiebreaks, then kickers.
type HandRank struct {
	Category  Category `json:"category"`
	Tiebreaks []int    `json:"tiebreaks"`
	Kickers   []int    `json:"kickers"`
}

func (h HandRank) String() string {
	return h.Category.String()
}

// Evaluate returns the rank of the best five-card hand found among the cards.
// Any number of cards >= 5 may be passed; every five-card subset is considered.
func Evaluate(cards []deck.Card) (HandRank, error) {
	if len(cards) < 5 {
		return HandRank{}, ErrNotEnoughCards
	}

	var best HandRank
	found := false

	forEachCombination(len(cards), 5, func(idx [5]int) {
		var five [5]deck.Card
		for i, j := range idx {
			five[i] = cards[j]
		}

		rank := evaluate5(five)
		if !found || Compare(rank, best) > 0 {
			best = rank
			found = true
		}
	})

	return best, nil
}

// Compare returns a negative number if a is weaker than b, a positive number
// if a is stronger, and zero if the two hands tie exactly
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}

	if cmp := compareRanks(a.Tiebreaks, b.Tiebreaks); cmp != 0 {
		return cmp
	}

	return compareRanks(a.Kickers, b.Kickers)
}

func compareRanks(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}

	return len(a) - len(b)
}

// forEachCombination calls fn with the indexes of every five-element subset of [0,n)
func forEachCombination(n, k int, fn func(idx [5]int)) {
	var idx [5]int

	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			fn(idx)
			return
		}

		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			recurse(i+1, depth+1)
		}
	}

	recurse(0, 0)
}

func evaluate5(cards [5]deck.Card) HandRank {
	ranks := make([]int, 5)
	isFlush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if c.Suit != cards[0].Suit {
			isFlush = false
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	high := straightHigh(ranks)

	if isFlush && high == deck.Ace {
		return HandRank{Category: RoyalFlush}
	}

	if isFlush && high > 0 {
		return HandRank{Category: StraightFlush, Tiebreaks: []int{high}}
	}

	// group ranks by multiplicity, strongest group first
	groups := groupRanks(ranks)

	switch {
	case groups[0].count == 4:
		return HandRank{
			Category:  FourOfAKind,
			Tiebreaks: []int{groups[0].rank},
			Kickers:   []int{groups[1].rank},
		}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{
			Category:  FullHouse,
			Tiebreaks: []int{groups[0].rank, groups[1].rank},
		}
	case isFlush:
		return HandRank{Category: Flush, Kickers: ranks}
	case high > 0:
		return HandRank{Category: Straight, Tiebreaks: []int{high}}
	case groups[0].count == 3:
		return HandRank{
			Category:  ThreeOfAKind,
			Tiebreaks: []int{groups[0].rank},
			Kickers:   []int{groups[1].rank, groups[2].rank},
		}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{
			Category:  TwoPair,
			Tiebreaks: []int{groups[0].rank, groups[1].rank},
			Kickers:   []int{groups[2].rank},
		}
	case groups[0].count == 2:
		return HandRank{
			Category:  OnePair,
			Tiebreaks: []int{groups[0].rank},
			Kickers:   []int{groups[1].rank, groups[2].rank, groups[3].rank},
		}
	}

	return HandRank{Category: HighCard, Kickers: ranks}
}

// straightHigh returns the high card of a straight made from the five ranks,
// or 0 if they do not form one. The ranks must be sorted descending.
// A wheel (A-5-4-3-2) counts the ace low, so its high card is the five.
func straightHigh(ranks []int) int {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return 0
		}
	}

	if ranks[0]-ranks[4] == 4 {
		return ranks[0]
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[4] == 2 {
		return 5
	}

	return 0
}

type rankGroup struct {
	rank  int
	count int
}

// groupRanks buckets the ranks by multiplicity, ordered by count descending
// then rank descending
func groupRanks(ranks []int) []rankGroup {
	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}
