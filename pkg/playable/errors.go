package playable

import (
	"errors"
	"fmt"
)

// Error kinds sent to clients
const (
	KindNameTaken              = "name_taken"
	KindRoomFull               = "room_full"
	KindGameInProgress         = "game_in_progress"
	KindNotEnoughPlayers       = "not_enough_players"
	KindTooManyPlayers         = "too_many_players"
	KindPlayerNotFound         = "player_not_found"
	KindChipNotAvailable       = "chip_not_available"
	KindPlayerAlreadyHolding   = "player_already_holding"
	KindTargetHasNoChip        = "target_has_no_chip"
	KindPlayerHasNoChip        = "player_has_no_chip"
	KindRoundNotReady          = "round_not_ready"
	KindInvalidRoundTransition = "invalid_round_transition"
	KindInvalidAction          = "invalid_action"
	KindInvalidState           = "invalid_state"
	KindRoomNotFound           = "room_not_found"
	KindInternal               = "internal_error"
)

// UserError is an error caused by the player's request
// These are safe to send back to the client
type UserError struct {
	Kind    string
	Message string
}

// NewUserError returns a new UserError
func NewUserError(kind, message string) UserError {
	return UserError{Kind: kind, Message: message}
}

func (u UserError) Error() string {
	return u.Message
}

// AsUserError returns the UserError wrapped within err, if any
func AsUserError(err error) (UserError, bool) {
	var ue UserError
	if errors.As(err, &ue) {
		return ue, true
	}

	return UserError{}, false
}

// InvariantError signals the server reached a state that should be impossible
type InvariantError struct {
	Err error
}

// NewInvariantError wraps err as an invariant violation
func NewInvariantError(err error) error {
	return InvariantError{Err: err}
}

func (i InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %v", i.Err)
}

// Unwrap returns the underlying error
func (i InvariantError) Unwrap() error {
	return i.Err
}

// IsInvariantError returns true if err is, or wraps, an InvariantError
func IsInvariantError(err error) bool {
	var ie InvariantError
	return errors.As(err, &ie)
}
