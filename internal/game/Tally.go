package game

import "strings"

const (
	majorityBonus       = 2
	sharedMajorityBonus = 1
)

// Standing is one player's final score breakdown.
type Standing struct {
	Player       *Player
	Biomes       int
	Wildlife     []int // per scorer, in scorer order
	Majority     int
	NatureTokens int
	Total        int
}

func (s Standing) WildlifeTotal() int {
	total := 0
	for _, pts := range s.Wildlife {
		total += pts
	}
	return total
}

type Result struct {
	Scorers   []string
	Standings []Standing
}

// Tally scores every player at game end and sets each Player.Score to its
// total. Running it again on unchanged boards gives the same result.
func Tally(players []*Player, scorers []WildlifeScorer) Result {
	res := Result{
		Scorers:   make([]string, len(scorers)),
		Standings: make([]Standing, len(players)),
	}
	for i, s := range scorers {
		res.Scorers[i] = s.Name()
	}

	for i, p := range players {
		ScoreBiomes(p)
		st := Standing{
			Player:       p,
			Biomes:       p.BiomeTotal(),
			Wildlife:     make([]int, len(scorers)),
			NatureTokens: p.NatureTokens,
		}
		for j, s := range scorers {
			st.Wildlife[j] = s.Score(p)
		}
		res.Standings[i] = st
	}

	bonuses := MajorityBonuses(players)
	for i := range res.Standings {
		st := &res.Standings[i]
		st.Majority = bonuses[i]
		st.Total = st.Biomes + st.WildlifeTotal() + st.Majority + st.NatureTokens
		st.Player.Score = st.Total
	}
	return res
}

// MajorityBonuses awards, per biome, +2 to the player with the uniquely
// largest region or +1 to each player tied for it. A biome nobody holds
// awards nothing. BiomePoints must already be computed.
func MajorityBonuses(players []*Player) []int {
	bonuses := make([]int, len(players))
	for _, biome := range AllBiomes {
		best := 0
		for _, p := range players {
			best = max(best, p.BiomePoints[biome])
		}
		if best == 0 {
			continue
		}

		var leaders []int
		for i, p := range players {
			if p.BiomePoints[biome] == best {
				leaders = append(leaders, i)
			}
		}
		bonus := majorityBonus
		if len(leaders) > 1 {
			bonus = sharedMajorityBonus
		}
		for _, i := range leaders {
			bonuses[i] += bonus
		}
	}
	return bonuses
}

// Winners returns every player holding the top score.
func (r Result) Winners() []*Player {
	var winners []*Player
	best := 0
	for i, st := range r.Standings {
		switch {
		case i == 0 || st.Total > best:
			best = st.Total
			winners = []*Player{st.Player}
		case st.Total == best:
			winners = append(winners, st.Player)
		}
	}
	return winners
}

func (r Result) WinnerNames() string {
	winners := r.Winners()
	names := make([]string, len(winners))
	for i, p := range winners {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
