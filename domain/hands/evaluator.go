package hands

import (
	"sort"

	"github.com/lazharichir/holdem/cards"
)

// HandRank represents the strength of a poker hand
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a display label for the hand rank.
func (r HandRank) String() string {
	switch r {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "Pair"
	default:
		return "High Card"
	}
}

// BestHand is a 5-card hand with its rank and the ordered tie-break list
// for that rank. Kickers are compared lexicographically, so two hands of
// the same rank are fully ordered by their kicker lists.
type BestHand struct {
	Rank    HandRank
	Cards   cards.Stack // the 5 cards forming the hand, sorted by rank descending
	Kickers []int
}

// Compare returns -1 if a is worse than b, 0 if equal, 1 if better.
func Compare(a, b BestHand) int {
	if a.Rank != b.Rank {
		if a.Rank < b.Rank {
			return -1
		}
		return 1
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] < b.Kickers[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// EvaluateBest returns the best 5-card hand from the given card set,
// trying every 5-card combination. For the engine's 7-card input that is
// the C(7,5)=21 combinations. Panics if fewer than 5 cards are given.
func EvaluateBest(cardSet cards.Stack) BestHand {
	if len(cardSet) < 5 {
		panic("hand evaluation requires at least 5 cards")
	}

	var best BestHand
	first := true
	for _, combo := range combinations(len(cardSet), 5) {
		hand := make(cards.Stack, 5)
		for i, idx := range combo {
			hand[i] = cardSet[idx]
		}

		eval := evaluateFive(hand)
		if first || Compare(eval, best) > 0 {
			best = eval
			first = false
		}
	}

	return best
}

// evaluateFive evaluates exactly 5 cards and returns their ranking.
func evaluateFive(hand cards.Stack) BestHand {
	if len(hand) != 5 {
		panic("hand must contain exactly 5 cards")
	}

	sorted := sortCardsByRank(hand)
	groups := groupByRank(sorted)
	flush := isFlush(sorted)
	straightHigh := straightHighCard(sorted)

	switch {
	case flush && straightHigh == 14:
		return BestHand{Rank: RoyalFlush, Cards: sorted, Kickers: []int{14}}
	case flush && straightHigh > 0:
		return BestHand{Rank: StraightFlush, Cards: sorted, Kickers: []int{straightHigh}}
	case groups[0].count == 4:
		return BestHand{Rank: FourOfAKind, Cards: sorted, Kickers: []int{groups[0].rank, groups[1].rank}}
	case groups[0].count == 3 && groups[1].count == 2:
		return BestHand{Rank: FullHouse, Cards: sorted, Kickers: []int{groups[0].rank, groups[1].rank}}
	case flush:
		return BestHand{Rank: Flush, Cards: sorted, Kickers: ranksOf(sorted)}
	case straightHigh > 0:
		return BestHand{Rank: Straight, Cards: sorted, Kickers: []int{straightHigh}}
	case groups[0].count == 3:
		return BestHand{Rank: ThreeOfAKind, Cards: sorted, Kickers: []int{groups[0].rank, groups[1].rank, groups[2].rank}}
	case groups[0].count == 2 && groups[1].count == 2:
		return BestHand{Rank: TwoPair, Cards: sorted, Kickers: []int{groups[0].rank, groups[1].rank, groups[2].rank}}
	case groups[0].count == 2:
		return BestHand{Rank: OnePair, Cards: sorted, Kickers: []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}}
	default:
		return BestHand{Rank: HighCard, Cards: sorted, Kickers: ranksOf(sorted)}
	}
}

// sortCardsByRank sorts cards by rank in descending order
func sortCardsByRank(hand cards.Stack) cards.Stack {
	result := hand.Clone()
	sort.Slice(result, func(i, j int) bool {
		return result[i].Rank() > result[j].Rank()
	})
	return result
}

func ranksOf(hand cards.Stack) []int {
	ranks := make([]int, len(hand))
	for i, card := range hand {
		ranks[i] = card.Rank()
	}
	return ranks
}

type rankGroup struct {
	rank  int
	count int
}

// groupByRank collapses the hand into (rank, count) groups, ordered by
// count descending then rank descending. The group order is exactly the
// tie-break order for paired hands.
func groupByRank(sorted cards.Stack) []rankGroup {
	counts := map[int]int{}
	for _, card := range sorted {
		counts[card.Rank()]++
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

// isFlush checks if all cards are of the same suit
func isFlush(hand cards.Stack) bool {
	if len(hand) == 0 {
		return false
	}
	suit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != suit {
			return false
		}
	}
	return true
}

// straightHighCard returns the high card of a straight, or 0 when the
// hand is no straight. The wheel (A-2-3-4-5) ranks as 5-high, strictly
// below the 6-high straight, even though it contains an ace.
func straightHighCard(sorted cards.Stack) int {
	ranks := ranksOf(sorted) // descending

	// The wheel: ace plays low.
	if ranks[0] == 14 && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return 5
	}

	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]-1 {
			return 0
		}
	}
	return ranks[0]
}

// combinations generates all possible combinations of k elements from a set
func combinations(n, k int) [][]int {
	if k > n {
		return nil
	}

	var result [][]int
	var combine func(int, []int)

	combine = func(start int, current []int) {
		if len(current) == k {
			combo := make([]int, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}

		for i := start; i < n; i++ {
			current = append(current, i)
			combine(i+1, current)
			current = current[:len(current)-1]
		}
	}

	combine(0, []int{})
	return result
}
