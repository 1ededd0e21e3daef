package poker

import "thegang-server/pkg/deck"

var rankNames = map[int][2]string{
	2:          {"Two", "Twos"},
	3:          {"Three", "Threes"},
	4:          {"Four", "Fours"},
	5:          {"Five", "Fives"},
	6:          {"Six", "Sixes"},
	7:          {"Seven", "Sevens"},
	8:          {"Eight", "Eights"},
	9:          {"Nine", "Nines"},
	10:         {"Ten", "Tens"},
	deck.Jack:  {"Jack", "Jacks"},
	deck.Queen: {"Queen", "Queens"},
	deck.King:  {"King", "Kings"},
	deck.Ace:   {"Ace", "Aces"},
}

func rankName(rank int) string {
	return rankNames[rank][0]
}

func rankNamePlural(rank int) string {
	return rankNames[rank][1]
}
