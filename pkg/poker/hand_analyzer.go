package poker

import (
	"errors"
	"fmt"
	"sort"

	"thegang-server/pkg/deck"
)

// ErrInvalidHandSize is returned when the analyzer is given fewer than five or more than seven cards
var ErrInvalidHandSize = errors.New("a hand must be made from 5 to 7 cards")

// ErrDuplicateCard is returned when the same card appears twice
var ErrDuplicateCard = errors.New("duplicate card")

const handSize = 5

// HandAnalyzer finds the best five-card hand out of five to seven cards
type HandAnalyzer struct {
	cards     deck.Hand
	hand      Hand
	tiebreaks []int
	bestFive  deck.Hand
	strength  int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// Every five-card subset is scored, and the strongest one is kept
func NewHandAnalyzer(cards []deck.Card) (*HandAnalyzer, error) {
	if len(cards) < handSize || len(cards) > 7 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if seen[card] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}

		seen[card] = true
	}

	h := &HandAnalyzer{
		cards:    deck.Hand(cards).Clone(),
		strength: -1,
	}

	subset := make(deck.Hand, handSize)
	combinations(len(cards), handSize, func(indexes []int) {
		for i, idx := range indexes {
			subset[i] = cards[idx]
		}

		s := analyzeFive(subset)
		if s.strength > h.strength {
			h.hand = s.hand
			h.tiebreaks = s.tiebreaks
			h.bestFive = s.cards
			h.strength = s.strength
		}
	})

	return h, nil
}

// MustAnalyze is like NewHandAnalyzer, but panics on invalid input
// This should only be used with cards that are known to be valid, i.e., tests
func MustAnalyze(cards []deck.Card) *HandAnalyzer {
	h, err := NewHandAnalyzer(cards)
	if err != nil {
		panic(err)
	}

	return h
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetStrength returns a totally ordered value for the hand
// A higher value is a stronger hand, and equal values are equal hands
func (h *HandAnalyzer) GetStrength() int {
	return h.strength
}

// GetTiebreaks returns the rank values used to break ties within the category,
// in descending order of significance
func (h *HandAnalyzer) GetTiebreaks() []int {
	tb := make([]int, len(h.tiebreaks))
	copy(tb, h.tiebreaks)
	return tb
}

// GetBestFive returns the five cards forming the best hand
// Grouped cards come first (i.e., trips before the pair of a full house)
func (h *HandAnalyzer) GetBestFive() deck.Hand {
	return h.bestFive.Clone()
}

// GetCards returns every card the analyzer considered
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.cards.Clone()
}

// Compare returns -1, 0, or 1 when h is weaker than, equal to, or stronger than other
func (h *HandAnalyzer) Compare(other *HandAnalyzer) int {
	switch {
	case h.strength < other.strength:
		return -1
	case h.strength > other.strength:
		return 1
	}

	return 0
}

// String returns a human readable description, i.e., "Full House, Kings over Fours"
func (h *HandAnalyzer) String() string {
	tb := h.tiebreaks

	switch h.hand {
	case HighCard:
		return fmt.Sprintf("High Card, %s", rankName(tb[0]))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankNamePlural(tb[0]))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", rankNamePlural(tb[0]), rankNamePlural(tb[1]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", rankNamePlural(tb[0]))
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankName(tb[0]))
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankName(tb[0]))
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", rankNamePlural(tb[0]), rankNamePlural(tb[1]))
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", rankNamePlural(tb[0]))
	case StraightFlush:
		if tb[0] == deck.Ace {
			return "Royal Flush"
		}

		return fmt.Sprintf("Straight Flush, %s high", rankName(tb[0]))
	}

	panic(fmt.Sprintf("unknown hand: %d", h.hand))
}

type scoredFive struct {
	hand      Hand
	tiebreaks []int
	cards     deck.Hand
	strength  int
}

// analyzeFive scores exactly five cards
func analyzeFive(cards deck.Hand) scoredFive {
	sorted := cards.SortedByRank()

	counts := make(map[int]int, handSize)
	suits := make(map[deck.Suit]int, 4)
	for _, card := range sorted {
		counts[card.Rank]++
		suits[card.Suit]++
	}

	// ranks grouped by how often they appear, then by rank
	groups := make([]int, 0, len(counts))
	for rank := range counts {
		groups = append(groups, rank)
	}
	sort.Slice(groups, func(i, j int) bool {
		if counts[groups[i]] != counts[groups[j]] {
			return counts[groups[i]] > counts[groups[j]]
		}

		return groups[i] > groups[j]
	})

	isFlush := len(suits) == 1
	straightHigh, isStraight := straightHighCard(sorted, counts)

	var hand Hand
	var tiebreaks []int
	ordered := orderByGroups(sorted, groups)

	switch {
	case isStraight && isFlush:
		hand = StraightFlush
		tiebreaks = []int{straightHigh}
		ordered = orderStraight(sorted, straightHigh)
	case counts[groups[0]] == 4:
		hand = FourOfAKind
		tiebreaks = groups
	case counts[groups[0]] == 3 && counts[groups[1]] == 2:
		hand = FullHouse
		tiebreaks = groups
	case isFlush:
		hand = Flush
		tiebreaks = ranksOf(sorted)
	case isStraight:
		hand = Straight
		tiebreaks = []int{straightHigh}
		ordered = orderStraight(sorted, straightHigh)
	case counts[groups[0]] == 3:
		hand = ThreeOfAKind
		tiebreaks = groups
	case counts[groups[0]] == 2 && counts[groups[1]] == 2:
		hand = TwoPair
		tiebreaks = groups
	case counts[groups[0]] == 2:
		hand = OnePair
		tiebreaks = groups
	default:
		hand = HighCard
		tiebreaks = ranksOf(sorted)
	}

	return scoredFive{
		hand:      hand,
		tiebreaks: tiebreaks,
		cards:     ordered,
		strength:  calculateStrength(hand, tiebreaks),
	}
}

// straightHighCard returns the top rank of a straight
// The wheel (A-2-3-4-5) is a five-high straight
func straightHighCard(sorted deck.Hand, counts map[int]int) (int, bool) {
	if len(counts) != handSize {
		return 0, false
	}

	high := sorted[0].Rank
	low := sorted[handSize-1].Rank
	if high-low == handSize-1 {
		return high, true
	}

	if high == deck.Ace && sorted[1].Rank == 5 && low == 2 {
		return 5, true
	}

	return 0, false
}

// calculateStrength packs the category and up to five tiebreaks into one comparable int
// Ranks never exceed 14, so each slot fits in four bits
func calculateStrength(hand Hand, tiebreaks []int) int {
	strength := int(hand)
	for i := 0; i < handSize; i++ {
		strength <<= 4
		if i < len(tiebreaks) {
			strength |= tiebreaks[i]
		}
	}

	return strength
}

func ranksOf(cards deck.Hand) []int {
	ranks := make([]int, len(cards))
	for i, card := range cards {
		ranks[i] = card.Rank
	}

	return ranks
}

func orderByGroups(sorted deck.Hand, groups []int) deck.Hand {
	ordered := make(deck.Hand, 0, len(sorted))
	for _, rank := range groups {
		for _, card := range sorted {
			if card.Rank == rank {
				ordered = append(ordered, card)
			}
		}
	}

	return ordered
}

// orderStraight puts a low ace at the end of a wheel
func orderStraight(sorted deck.Hand, high int) deck.Hand {
	if high != 5 || sorted[0].Rank != deck.Ace {
		return sorted.Clone()
	}

	ordered := append(deck.Hand{}, sorted[1:]...)
	return append(ordered, sorted[0])
}

// combinations calls fn with every k-sized set of indexes out of n, in lexicographic order
// The slice passed to fn is reused between calls
func combinations(n, k int, fn func(indexes []int)) {
	if k > n || k <= 0 {
		return
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
