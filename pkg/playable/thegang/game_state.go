package thegang

import "thegang-server/pkg/deck"

// GameState is the state of the game as seen by one player
// Pocket cards of other players are never part of it until the game is scored
type GameState struct {
	Round              Round                        `json:"round"`
	Players            []string                     `json:"players"`
	CommunityCards     deck.Hand                    `json:"community_cards"`
	PocketCards        deck.Hand                    `json:"pocket_cards"`
	CurrentChipColor   *ChipColor                   `json:"current_chip_color"`
	PlayerChips        map[string]int               `json:"player_chips"`
	AvailableChips     []int                        `json:"available_chips"`
	ChipHistory        map[string]map[ChipColor]int `json:"chip_history"`
	AllPlayersHaveChip bool                         `json:"all_players_have_chip"`
	CanAdvance         bool                         `json:"can_advance"`
	RecentlyStolen     *StolenChip                  `json:"recently_stolen"`
	Scoring            *ScoringResult               `json:"scoring,omitempty"`
}

// GetPlayerState returns the state of the game for the viewer
func (g *Game) GetPlayerState(viewer string) *GameState {
	state := &GameState{
		Round:          g.round,
		Players:        g.Players(),
		CommunityCards: g.CommunityCards(),
		PocketCards:    deck.Hand{},
		PlayerChips:    map[string]int{},
		AvailableChips: []int{},
		ChipHistory:    g.History(),
		CanAdvance:     g.CanAdvance(),
		Scoring:        g.result,
	}

	if g.HasPlayer(viewer) {
		state.PocketCards = g.PocketCards(viewer)
	}

	if g.chips != nil {
		color := g.chips.Color()
		state.CurrentChipColor = &color
		state.PlayerChips = g.chips.Holdings()
		state.AvailableChips = g.chips.Public()
		state.AllPlayersHaveChip = g.chips.AllAssigned()
		state.RecentlyStolen = g.chips.RecentlyStolen()
	}

	return state
}
