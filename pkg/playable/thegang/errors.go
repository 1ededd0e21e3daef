package thegang

import "thegang-server/pkg/playable"

// ErrChipNotAvailable is returned when the chip is not in the public area
var ErrChipNotAvailable = playable.NewUserError(playable.KindChipNotAvailable, "that chip is not available")

// ErrPlayerAlreadyHolding is returned when a player holding a chip tries to take another
var ErrPlayerAlreadyHolding = playable.NewUserError(playable.KindPlayerAlreadyHolding, "you already hold a chip this round")

// ErrTargetHasNoChip is returned when taking a chip from a player who holds none
var ErrTargetHasNoChip = playable.NewUserError(playable.KindTargetHasNoChip, "that player does not hold a chip")

// ErrPlayerHasNoChip is returned when a player without a chip tries to return one
var ErrPlayerHasNoChip = playable.NewUserError(playable.KindPlayerHasNoChip, "you do not hold a chip")

// ErrRoundNotReady is returned when advancing while chips remain in the public area
var ErrRoundNotReady = playable.NewUserError(playable.KindRoundNotReady, "every player must hold a chip before advancing")

// ErrInvalidRoundTransition is returned when advancing past scoring
var ErrInvalidRoundTransition = playable.NewUserError(playable.KindInvalidRoundTransition, "the game is already being scored")

// ErrPlayerNotFound is returned when the player is not part of the game
var ErrPlayerNotFound = playable.NewUserError(playable.KindPlayerNotFound, "player not found")

// ErrNotEnoughPlayers is returned when starting with fewer than three players
var ErrNotEnoughPlayers = playable.NewUserError(playable.KindNotEnoughPlayers, "at least 3 players are needed")

// ErrTooManyPlayers is returned when starting with more than six players
var ErrTooManyPlayers = playable.NewUserError(playable.KindTooManyPlayers, "at most 6 players can play")
