package thegang

import (
	"encoding/json"
	"fmt"
)

// Round is a betting round of the game
// Each round, except scoring, has its own chip color
type Round int

// Constants for Round
const (
	Preflop Round = iota
	Flop
	Turn
	River
	Scoring
)

// ChipColor is the color of the chips handed out during a round
type ChipColor string

// Constants for ChipColor
const (
	White  ChipColor = "white"
	Yellow ChipColor = "yellow"
	Orange ChipColor = "orange"
	Red    ChipColor = "red"
)

// ChipColors is every chip color in round order
var ChipColors = []ChipColor{White, Yellow, Orange, Red}

// String returns the name of the round
func (r Round) String() string {
	switch r {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Scoring:
		return "scoring"
	}

	panic(fmt.Sprintf("unknown round: %d", r))
}

// MarshalJSON encodes the round name
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Color returns the chip color of the round
// Scoring has no chips, so the second value is false
func (r Round) Color() (ChipColor, bool) {
	if r < Preflop || r >= Scoring {
		return "", false
	}

	return ChipColors[r], true
}

// Next returns the round that follows
func (r Round) Next() (Round, bool) {
	if r >= Scoring {
		return r, false
	}

	return r + 1, true
}

// communityCards is how many community cards are dealt when entering the round
func (r Round) communityCards() int {
	switch r {
	case Flop:
		return 3
	case Turn, River:
		return 1
	}

	return 0
}
