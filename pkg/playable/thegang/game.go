package thegang

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"thegang-server/internal/rng"
	"thegang-server/pkg/deck"
	"thegang-server/pkg/playable"
)

const (
	minPlayers = 3
	maxPlayers = 6
	pocketSize = 2
)

// Game is a single game of The Gang
// Players cooperate to rank their hands using numbered chips
type Game struct {
	players     []string
	round       Round
	deck        *deck.Deck
	pocketCards map[string]deck.Hand
	community   deck.Hand

	// chips is nil once the game is being scored
	chips   *ChipManager
	history map[string]map[ChipColor]int
	result  *ScoringResult

	logger logrus.FieldLogger
}

// ValidatePlayerCount checks that a game can be played with count players
func ValidatePlayerCount(count int) error {
	if count < minPlayers {
		return ErrNotEnoughPlayers
	}

	if count > maxPlayers {
		return ErrTooManyPlayers
	}

	return nil
}

// NewGame shuffles a fresh deck, deals pocket cards and starts the pre-flop round
func NewGame(logger logrus.FieldLogger, players []string, gen rng.Generator) (*Game, error) {
	if err := ValidatePlayerCount(len(players)); err != nil {
		return nil, err
	}

	g := &Game{
		players:     append([]string{}, players...),
		round:       Preflop,
		deck:        deck.NewShuffled(gen),
		pocketCards: make(map[string]deck.Hand, len(players)),
		community:   deck.Hand{},
		chips:       NewChipManager(White, len(players)),
		history:     make(map[string]map[ChipColor]int, len(players)),
		logger:      logger,
	}

	for _, player := range g.players {
		cards, err := g.deck.DrawN(pocketSize)
		if err != nil {
			return nil, playable.NewInvariantError(err)
		}

		g.pocketCards[player] = cards
		g.history[player] = make(map[ChipColor]int, len(ChipColors))
	}

	logger.WithField("players", len(players)).Info("started pre-flop round")
	return g, nil
}

// Round returns the current round
func (g *Game) Round() Round {
	return g.round
}

// Players returns the players in the game in join order
func (g *Game) Players() []string {
	return append([]string{}, g.players...)
}

// HasPlayer returns true if the player is in the game
func (g *Game) HasPlayer(player string) bool {
	for _, p := range g.players {
		if p == player {
			return true
		}
	}

	return false
}

// PocketCards returns the player's pocket cards
func (g *Game) PocketCards(player string) deck.Hand {
	return g.pocketCards[player].Clone()
}

// CommunityCards returns the community cards dealt so far
func (g *Game) CommunityCards() deck.Hand {
	return g.community.Clone()
}

// ScoringResult returns the result once the game is in scoring
func (g *Game) ScoringResult() *ScoringResult {
	return g.result
}

// Chips returns the chip manager of the current round, or nil while scoring
func (g *Game) Chips() *ChipManager {
	return g.chips
}

// History returns the chip each player held at the close of every finished round
func (g *Game) History() map[string]map[ChipColor]int {
	history := make(map[string]map[ChipColor]int, len(g.players))
	for _, player := range g.players {
		colors := make(map[ChipColor]int, len(g.history[player]))
		for color, n := range g.history[player] {
			colors[color] = n
		}

		history[player] = colors
	}

	return history
}

// CanAdvance returns true if every chip of the round is held
func (g *Game) CanAdvance() bool {
	return g.chips != nil && g.chips.AllAssigned()
}

func (g *Game) chipManager(player string) (*ChipManager, error) {
	if g.chips == nil {
		return nil, ErrInvalidRoundTransition
	}

	if !g.HasPlayer(player) {
		return nil, ErrPlayerNotFound
	}

	return g.chips, nil
}

// TakePublic gives the player chip n from the public area
func (g *Game) TakePublic(player string, n int) error {
	chips, err := g.chipManager(player)
	if err != nil {
		return err
	}

	return chips.TakePublic(player, n)
}

// TakeFromPlayer moves the target's chip to the player
func (g *Game) TakeFromPlayer(player, target string) (int, error) {
	chips, err := g.chipManager(player)
	if err != nil {
		return 0, err
	}

	if !g.HasPlayer(target) {
		return 0, ErrPlayerNotFound
	}

	return chips.TakeFromPlayer(player, target)
}

// ReturnChip moves the player's chip back to the public area
func (g *Game) ReturnChip(player string) (int, error) {
	chips, err := g.chipManager(player)
	if err != nil {
		return 0, err
	}

	return chips.Return(player)
}

// DistributeChips hands the lowest public chips to players without one, in join order
func (g *Game) DistributeChips() (map[string]int, error) {
	if g.chips == nil {
		return nil, ErrInvalidRoundTransition
	}

	given := make(map[string]int)
	for _, player := range g.players {
		if _, ok := g.chips.Holding(player); ok {
			continue
		}

		public := g.chips.Public()
		if len(public) == 0 {
			break
		}

		if err := g.chips.TakePublic(player, public[0]); err != nil {
			return nil, err
		}

		given[player] = public[0]
	}

	return given, nil
}

// Advance moves the game to the next round
// The chips of the round being left are recorded before new chips are put out
func (g *Game) Advance() error {
	next, ok := g.round.Next()
	if !ok {
		return ErrInvalidRoundTransition
	}

	if !g.CanAdvance() {
		return ErrRoundNotReady
	}

	cards, err := g.deck.DrawN(next.communityCards())
	if err != nil {
		return playable.NewInvariantError(fmt.Errorf("dealing the %s: %w", next, err))
	}

	var result *ScoringResult
	if next == Scoring {
		redChips := g.chips.Holdings()
		result, err = Score(g.players, g.pocketCards, append(g.community.Clone(), cards...), redChips)
		if err != nil {
			return playable.NewInvariantError(err)
		}
	}

	color := g.chips.Color()
	for player, n := range g.chips.Holdings() {
		g.history[player][color] = n
	}

	g.round = next
	g.community = append(g.community, cards...)
	if nextColor, ok := next.Color(); ok {
		g.chips = NewChipManager(nextColor, len(g.players))
	} else {
		g.chips = nil
		g.result = result
		g.logger.WithField("win", result.Win).Info("game scored")
	}

	g.logger.WithFields(logrus.Fields{
		"round":     next.String(),
		"community": len(g.community),
		"cardsLeft": g.deck.CardsLeft(),
	}).Info("advanced round")

	return nil
}

// RemovePlayer takes a player out of the game
// A held chip goes back to the public area and the highest chip leaves play,
// so the pool always matches the number of players. Results stay as scored.
func (g *Game) RemovePlayer(player string) error {
	idx := -1
	for i, p := range g.players {
		if p == player {
			idx = i
			break
		}
	}

	if idx < 0 {
		return ErrPlayerNotFound
	}

	g.players = append(g.players[:idx:idx], g.players[idx+1:]...)
	if g.chips != nil {
		g.chips.RemovePlayer(player)
		delete(g.pocketCards, player)
	}

	return nil
}

// PlayerCount returns the number of players still in the game
func (g *Game) PlayerCount() int {
	return len(g.players)
}
