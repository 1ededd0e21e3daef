package deck

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, deck.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, deck.Cards[51])
	assert.Equal(t, "2c,3c,4c,5c,6c,7c,8c,9c,10c,11c,12c,13c,14c", CardsToString(deck.Cards[:13]))

	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		assert.True(t, card.IsValid())
		seen[card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	unshuffled := CardsToString(New().Cards)

	d1 := NewShuffled(rand.New(rand.NewSource(1))) // nolint:gosec
	d2 := NewShuffled(rand.New(rand.NewSource(1))) // nolint:gosec
	d3 := NewShuffled(rand.New(rand.NewSource(2))) // nolint:gosec

	assert.Equal(t, 52, d1.CardsLeft())
	assert.NotEqual(t, unshuffled, CardsToString(d1.Cards))
	assert.Equal(t, d1.Cards, d2.Cards)
	assert.NotEqual(t, d1.Cards, d3.Cards)

	// a shuffle is a permutation
	seen := make(map[Card]bool)
	for _, card := range d1.Cards {
		seen[card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_CanDraw(t *testing.T) {
	deck := New()
	assert.True(t, deck.CanDraw(52))
	assert.False(t, deck.CanDraw(53))

	_, err := deck.DrawN(52)
	assert.NoError(t, err)
	assert.Equal(t, 0, deck.CardsLeft())
	assert.False(t, deck.CanDraw(1))

	_, err = deck.DrawN(1)
	assert.True(t, errors.Is(err, ErrDeckExhausted))
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	deck := New()

	cards, err := deck.DrawN(3)
	a.NoError(err)
	a.Equal("2c,3c,4c", CardsToString(cards))
	a.Equal(49, deck.CardsLeft())

	cards, err = deck.DrawN(0)
	a.NoError(err)
	a.Empty(cards)

	_, err = deck.DrawN(50)
	a.True(errors.Is(err, ErrDeckExhausted))
	a.EqualError(err, "deck exhausted: wanted 50, 49 left")
	a.Equal(49, deck.CardsLeft(), "a failed draw must not remove cards")

	_, err = deck.DrawN(-1)
	a.EqualError(err, "cannot draw -1 cards")
}
