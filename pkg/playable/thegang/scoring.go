package thegang

import (
	"sort"

	"thegang-server/pkg/deck"
	"thegang-server/pkg/poker"
)

// BestHand is the best five-card hand a player made
type BestHand struct {
	Category poker.Hand `json:"category"`
	Name     string     `json:"name"`
	Display  string     `json:"display"`
	Strength int        `json:"strength"`
	BestFive deck.Hand  `json:"best_five"`
}

// RankedPlayer is a player's position in the final ranking
type RankedPlayer struct {
	Name        string    `json:"name"`
	PocketCards deck.Hand `json:"pocket_cards"`
	Hand        BestHand  `json:"hand"`
	// MinChip and MaxChip are the red chips the player could hold for a win
	// They only differ when the player ties with someone else
	MinChip int  `json:"min_chip"`
	MaxChip int  `json:"max_chip"`
	RedChip int  `json:"red_chip"`
	Correct bool `json:"correct"`
}

// ScoringResult is the outcome of a game
// It is computed once when the game enters scoring
type ScoringResult struct {
	Win            bool      `json:"win"`
	CommunityCards deck.Hand `json:"community_cards"`
	// RankedPlayers is ordered from the weakest to the strongest hand
	RankedPlayers      []*RankedPlayer `json:"ranked_players"`
	RedChipAssignments map[string]int  `json:"red_chip_assignments"`
}

// Score ranks the players and checks their red chips
// The team wins when every player holds the red chip matching their position,
// where tied players may hold any chip within their shared range
func Score(players []string, pocketCards map[string]deck.Hand, community deck.Hand, redChips map[string]int) (*ScoringResult, error) {
	ranked := make([]*RankedPlayer, len(players))
	strengths := make(map[string]int, len(players))
	for i, name := range players {
		cards := append(pocketCards[name].Clone(), community...)
		h, err := poker.NewHandAnalyzer(cards)
		if err != nil {
			return nil, err
		}

		strengths[name] = h.GetStrength()
		ranked[i] = &RankedPlayer{
			Name:        name,
			PocketCards: pocketCards[name].Clone(),
			Hand: BestHand{
				Category: h.GetHand(),
				Name:     h.GetHand().String(),
				Display:  h.String(),
				Strength: h.GetStrength(),
				BestFive: h.GetBestFive(),
			},
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return strengths[ranked[i].Name] < strengths[ranked[j].Name]
	})

	result := &ScoringResult{
		Win:                true,
		CommunityCards:     community.Clone(),
		RankedPlayers:      ranked,
		RedChipAssignments: make(map[string]int, len(redChips)),
	}

	for i := 0; i < len(ranked); {
		// find the range of players tied with ranked[i]
		j := i
		for j+1 < len(ranked) && ranked[j+1].Hand.Strength == ranked[i].Hand.Strength {
			j++
		}

		for k := i; k <= j; k++ {
			rp := ranked[k]
			rp.MinChip = i + 1
			rp.MaxChip = j + 1

			chip, ok := redChips[rp.Name]
			if ok {
				rp.RedChip = chip
				result.RedChipAssignments[rp.Name] = chip
			}

			rp.Correct = ok && chip >= rp.MinChip && chip <= rp.MaxChip
			if !rp.Correct {
				result.Win = false
			}
		}

		i = j + 1
	}

	return result, nil
}
