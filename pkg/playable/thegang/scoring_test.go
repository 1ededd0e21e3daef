package thegang

import (
	"testing"

	"thegang-server/pkg/deck"
	"thegang-server/pkg/snapshot"
)

func TestScore_snapshot(t *testing.T) {
	players := []string{"ann", "bob", "cat", "dan"}
	pockets := map[string]deck.Hand{
		"ann": deck.CardsFromString("3d,5h"),
		"bob": deck.CardsFromString("9c,8s"),
		"cat": deck.CardsFromString("11d,11h"),
		"dan": deck.CardsFromString("5c,6c"),
	}
	board := deck.CardsFromString("2c,7d,9h,11s,4c")

	result, err := Score(players, pockets, board, map[string]int{"ann": 1, "bob": 2, "cat": 3, "dan": 4})
	if err != nil {
		t.Fatal(err)
	}

	snapshot.ValidateSnapshot(t, result, 0)
}
