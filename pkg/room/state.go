package room

import (
	"encoding/json"
	"fmt"
)

// State is the state of a room
type State int

// Constants for State
const (
	StateWaiting State = iota
	StatePlaying
	StateIntermission
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateIntermission:
		return "intermission"
	}

	panic(fmt.Sprintf("unknown state: %d", s))
}

// MarshalJSON encodes the state name
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
