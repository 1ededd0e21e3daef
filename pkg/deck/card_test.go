package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: 11, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: 12, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: 13, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())
	assert.Equal(t, "10♠", Card{Rank: 10, Suit: Spades}.String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("14s").Equal(Card{Rank: Ace, Suit: Spades}))
	a.False(CardFromString("14s").Equal(Card{Rank: Ace, Suit: Hearts}))
	a.False(CardFromString("13s").Equal(Card{Rank: Ace, Suit: Spades}))
}

func TestCard_IsValid(t *testing.T) {
	a := assert.New(t)
	a.True(Card{Rank: 2, Suit: Clubs}.IsValid())
	a.True(Card{Rank: 14, Suit: Hearts}.IsValid())
	a.False(Card{Rank: 1, Suit: Hearts}.IsValid())
	a.False(Card{Rank: 15, Suit: Hearts}.IsValid())
	a.False(Card{Rank: 5, Suit: "stars"}.IsValid())
}

func TestCard_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(CardFromString("12h"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"rank":12,"rank_str":"Q","suit":"hearts"}`, string(b))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(Card{Rank: 10, Suit: Diamonds}, CardFromString("10d"))
	a.Equal(Card{Rank: 2, Suit: Clubs}, CardFromString("2C"))
	a.PanicsWithValue("could not parse card: 1c", func() {
		CardFromString("1c")
	})
	a.PanicsWithValue("could not parse card: 3x", func() {
		CardFromString("3x")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("14s,2c,10h")
	assert.Equal(t, 3, len(cards))
	assert.Equal(t, "14s,2c,10h", CardsToString(cards))
	assert.Equal(t, []Card{}, CardsFromString(""))
}
