package room

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"thegang-server/pkg/playable"
)

// Action types
const (
	ActionJoinRoom        = "join_room"
	ActionLeaveRoom       = "leave_room"
	ActionStartGame       = "start_game"
	ActionTakeChipPublic  = "take_chip_public"
	ActionTakeChipPlayer  = "take_chip_player"
	ActionReturnChip      = "return_chip"
	ActionAdvanceRound    = "advance_round"
	ActionEndGame         = "end_game"
	ActionRestartGame     = "restart_game"
	ActionDistributeChips = "distribute_chips"
)

// Action is something a player does in a room
// Every action is applied inside the room's run loop
type Action interface {
	Type() string
	apply(r *Room, actor string) error
}

// JoinRoom adds the actor to the room
type JoinRoom struct{}

// LeaveRoom removes the actor from the room
type LeaveRoom struct{}

// StartGame deals a new game to everyone in the room
type StartGame struct{}

// TakeChipPublic takes a chip from the public area
type TakeChipPublic struct {
	ChipNumber int `mapstructure:"chip_number"`
}

// TakeChipPlayer takes the chip another player holds
type TakeChipPlayer struct {
	TargetPlayer string `mapstructure:"target_player"`
}

// ReturnChip puts the actor's chip back in the public area
type ReturnChip struct{}

// AdvanceRound moves the game to the next round
type AdvanceRound struct{}

// EndGame ends the game and sends the room to intermission
type EndGame struct{}

// RestartGame deals a fresh game to the same players
type RestartGame struct{}

// DistributeChips hands out every public chip, only available in dev mode
type DistributeChips struct{}

// Type returns "join_room"
func (JoinRoom) Type() string { return ActionJoinRoom }

// Type returns "leave_room"
func (LeaveRoom) Type() string { return ActionLeaveRoom }

// Type returns "start_game"
func (StartGame) Type() string { return ActionStartGame }

// Type returns "take_chip_public"
func (TakeChipPublic) Type() string { return ActionTakeChipPublic }

// Type returns "take_chip_player"
func (TakeChipPlayer) Type() string { return ActionTakeChipPlayer }

// Type returns "return_chip"
func (ReturnChip) Type() string { return ActionReturnChip }

// Type returns "advance_round"
func (AdvanceRound) Type() string { return ActionAdvanceRound }

// Type returns "end_game"
func (EndGame) Type() string { return ActionEndGame }

// Type returns "restart_game"
func (RestartGame) Type() string { return ActionRestartGame }

// Type returns "distribute_chips"
func (DistributeChips) Type() string { return ActionDistributeChips }

func (JoinRoom) apply(r *Room, actor string) error {
	return r.join(actor, nil)
}

func (LeaveRoom) apply(r *Room, actor string) error {
	return r.leave(actor)
}

func (StartGame) apply(r *Room, actor string) error {
	return r.startGame(actor)
}

func (a TakeChipPublic) apply(r *Room, actor string) error {
	return r.takeChipPublic(actor, a.ChipNumber)
}

func (a TakeChipPlayer) apply(r *Room, actor string) error {
	return r.takeChipPlayer(actor, a.TargetPlayer)
}

func (ReturnChip) apply(r *Room, actor string) error {
	return r.returnChip(actor)
}

func (AdvanceRound) apply(r *Room, actor string) error {
	return r.advanceRound(actor)
}

func (EndGame) apply(r *Room, actor string) error {
	return r.endGame(actor)
}

func (RestartGame) apply(r *Room, actor string) error {
	return r.restartGame(actor)
}

func (DistributeChips) apply(r *Room, actor string) error {
	return r.distributeChips(actor)
}

// DecodeAction turns an inbound message into an Action
func DecodeAction(msg *playable.PayloadIn) (Action, error) {
	var action Action
	switch msg.Type {
	case ActionJoinRoom:
		action = &JoinRoom{}
	case ActionLeaveRoom:
		action = &LeaveRoom{}
	case ActionStartGame:
		action = &StartGame{}
	case ActionTakeChipPublic:
		action = &TakeChipPublic{}
	case ActionTakeChipPlayer:
		action = &TakeChipPlayer{}
	case ActionReturnChip:
		action = &ReturnChip{}
	case ActionAdvanceRound:
		action = &AdvanceRound{}
	case ActionEndGame:
		action = &EndGame{}
	case ActionRestartGame:
		action = &RestartGame{}
	case ActionDistributeChips:
		action = &DistributeChips{}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidAction, msg.Type)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           action,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(map[string]interface{}(msg.AdditionalData)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, err)
	}

	return action, nil
}
