package poker

import (
	"math/rand"
	"testing"

	oracle "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"thegang-server/pkg/deck"
)

var oracleSuits = map[deck.Suit]oracle.Suit{
	deck.Clubs:    oracle.Club,
	deck.Diamonds: oracle.Diamond,
	deck.Hearts:   oracle.Heart,
	deck.Spades:   oracle.Spade,
}

func toOracle(t *testing.T, cards []deck.Card) *[7]oracle.Card {
	t.Helper()

	var out [7]oracle.Card
	for i, card := range cards {
		rank := card.Rank
		if rank == deck.Ace {
			rank = deck.LowAce
		}

		c, err := oracle.MakeCard(oracleSuits[card.Suit], oracle.Rank(rank))
		if err != nil {
			t.Fatalf("could not convert %s: %v", card, err)
		}

		out[i] = c
	}

	return &out
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}

	return 0
}

// compares the relative order of random seven-card hands against an independent evaluator
func TestHandAnalyzer_matchesOracle(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		d := deck.NewShuffled(r)
		first, err := d.DrawN(7)
		a.NoError(err)
		second, err := d.DrawN(7)
		a.NoError(err)

		ours := MustAnalyze(first).Compare(MustAnalyze(second))
		theirs := sign(int(oracle.Eval7(toOracle(t, first))) - int(oracle.Eval7(toOracle(t, second))))

		if !a.Equal(theirs, ours, "%s vs %s", deck.Hand(first), deck.Hand(second)) {
			return
		}
	}
}
