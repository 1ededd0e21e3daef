package thegang

import (
	"fmt"
	"sort"
)

// StolenChip describes the most recent chip taken from another player
type StolenChip struct {
	ChipNumber int       `json:"chip_number"`
	ChipColor  ChipColor `json:"chip_color"`
	TakenFrom  string    `json:"taken_from"`
	TakenBy    string    `json:"taken_by"`
}

// ChipManager tracks custody of the chips of a single color
// Every chip is either in the public area or held by exactly one player
type ChipManager struct {
	color  ChipColor
	count  int
	public map[int]bool
	held   map[string]int

	recentlyStolen *StolenChip
}

// NewChipManager returns a manager with chips 1..count in the public area
func NewChipManager(color ChipColor, count int) *ChipManager {
	c := &ChipManager{
		color:  color,
		count:  count,
		public: make(map[int]bool, count),
		held:   make(map[string]int, count),
	}

	for i := 1; i <= count; i++ {
		c.public[i] = true
	}

	return c
}

// Color returns the chip color being managed
func (c *ChipManager) Color() ChipColor {
	return c.color
}

// Count returns the number of chips in play
func (c *ChipManager) Count() int {
	return c.count
}

// TakePublic moves chip n from the public area to the player
func (c *ChipManager) TakePublic(player string, n int) error {
	if _, ok := c.held[player]; ok {
		return ErrPlayerAlreadyHolding
	}

	if !c.public[n] {
		return fmt.Errorf("%w: %s chip %d", ErrChipNotAvailable, c.color, n)
	}

	delete(c.public, n)
	c.held[player] = n
	c.recentlyStolen = nil

	return nil
}

// TakeFromPlayer moves the target's chip to the taker and returns its number
func (c *ChipManager) TakeFromPlayer(taker, target string) (int, error) {
	if _, ok := c.held[taker]; ok {
		return 0, ErrPlayerAlreadyHolding
	}

	n, ok := c.held[target]
	if !ok {
		return 0, ErrTargetHasNoChip
	}

	delete(c.held, target)
	c.held[taker] = n
	c.recentlyStolen = &StolenChip{
		ChipNumber: n,
		ChipColor:  c.color,
		TakenFrom:  target,
		TakenBy:    taker,
	}

	return n, nil
}

// Return moves the player's chip back to the public area and returns its number
func (c *ChipManager) Return(player string) (int, error) {
	n, ok := c.held[player]
	if !ok {
		return 0, ErrPlayerHasNoChip
	}

	delete(c.held, player)
	c.public[n] = true
	c.recentlyStolen = nil

	return n, nil
}

// RemovePlayer returns the player's chip, if any, and takes the highest chip out of play
// Whoever holds the highest chip loses it to the public area first
func (c *ChipManager) RemovePlayer(player string) {
	if n, ok := c.held[player]; ok {
		delete(c.held, player)
		c.public[n] = true
	}

	if c.count == 0 {
		return
	}

	for holder, n := range c.held {
		if n == c.count {
			delete(c.held, holder)
		}
	}

	delete(c.public, c.count)
	c.count--
	c.recentlyStolen = nil
}

// Holding returns the chip the player holds
func (c *ChipManager) Holding(player string) (int, bool) {
	n, ok := c.held[player]
	return n, ok
}

// AllAssigned returns true when the public area is empty
func (c *ChipManager) AllAssigned() bool {
	return len(c.public) == 0
}

// Public returns the chips in the public area in ascending order
func (c *ChipManager) Public() []int {
	chips := make([]int, 0, len(c.public))
	for n := range c.public {
		chips = append(chips, n)
	}

	sort.Ints(chips)
	return chips
}

// Holdings returns a copy of who holds which chip
func (c *ChipManager) Holdings() map[string]int {
	held := make(map[string]int, len(c.held))
	for player, n := range c.held {
		held[player] = n
	}

	return held
}

// RecentlyStolen returns the last steal, if no chip action happened since
func (c *ChipManager) RecentlyStolen() *StolenChip {
	return c.recentlyStolen
}
