package room

import (
	"thegang-server/pkg/playable"
	"thegang-server/pkg/playable/thegang"
)

// Snapshot is the full state of a room as seen by one player
// It is rebuilt from scratch for every update
type Snapshot struct {
	Name        string                 `json:"name"`
	Players     []string               `json:"players"`
	Connected   map[string]bool        `json:"connected"`
	PlayerCount int                    `json:"player_count"`
	State       State                  `json:"state"`
	CanStart    bool                   `json:"can_start"`
	Game        *thegang.GameState     `json:"game"`
	Log         []*playable.LogMessage `json:"log"`
}

// NOTE: must only be called from the run loop
func (r *Room) snapshot(viewer string) *Snapshot {
	s := &Snapshot{
		Name:        r.name,
		Players:     r.playerNames(),
		Connected:   make(map[string]bool, len(r.players)),
		PlayerCount: len(r.players),
		State:       r.state,
		CanStart:    r.state != StatePlaying && thegang.ValidatePlayerCount(len(r.players)) == nil,
		Log:         append([]*playable.LogMessage{}, r.logMessages...),
	}

	for _, player := range r.players {
		s.Connected[player.Name] = player.client != nil
	}

	if r.game != nil {
		s.Game = r.game.GetPlayerState(viewer)
	}

	return s
}
