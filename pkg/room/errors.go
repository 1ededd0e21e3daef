package room

import (
	"errors"

	"thegang-server/pkg/playable"
)

// ErrNameTaken is returned when joining with a name already in the room
var ErrNameTaken = playable.NewUserError(playable.KindNameTaken, "that name is already taken in this room")

// ErrRoomFull is returned when joining a room with six players
var ErrRoomFull = playable.NewUserError(playable.KindRoomFull, "the room is full")

// ErrGameInProgress is returned when joining or starting while a game is being played
var ErrGameInProgress = playable.NewUserError(playable.KindGameInProgress, "a game is in progress")

// ErrNoGame is returned for game actions when no game is being played
var ErrNoGame = playable.NewUserError(playable.KindInvalidState, "no game is in progress")

// ErrRoomNotFound is returned when acting on a room that does not exist
var ErrRoomNotFound = playable.NewUserError(playable.KindRoomNotFound, "room not found")

// ErrInvalidAction is returned when a message cannot be turned into an action
var ErrInvalidAction = playable.NewUserError(playable.KindInvalidAction, "invalid action")

// ErrRoomClosed is returned when an action reaches a room that has been shut down
// The registry retries joins that hit it with a fresh room
var ErrRoomClosed = errors.New("room is closed")
