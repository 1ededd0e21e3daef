package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
	assert.Equal(t, "14s,3c", h.String())
}

func TestHand_SortedByRank(t *testing.T) {
	h := Hand(CardsFromString("3c,14s,3d,10h"))
	sorted := h.SortedByRank()
	assert.Equal(t, "14s,10h,3c,3d", sorted.String())
	assert.Equal(t, "3c,14s,3d,10h", h.String(), "original is untouched")
}

func TestHand_Clone(t *testing.T) {
	h := Hand(CardsFromString("3c,4c"))
	c := h.Clone()
	c[0] = CardFromString("5c")
	assert.Equal(t, "3c,4c", h.String())
}
