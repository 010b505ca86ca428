package standings

import (
	"errors"
	"sort"

	"github.com/dileepraotv/tt-tournament-system/models"
)

var ErrInvalidWildcardRank = errors.New("wildcard rank must be positive")

// ApplyWildcards flags the best `count` players holding the given rank
// across all groups as advancing ("best third" rule, generalized to any
// rank). Eligible non-qualifiers are compared with the same
// wins -> game difference -> points difference -> id ordering the tables
// use. The input is returned as a new slice; nothing is mutated.
func ApplyWildcards(groups []GroupStandings, rank, count int) ([]GroupStandings, error) {
	if rank < 1 {
		return nil, ErrInvalidWildcardRank
	}

	out := make([]GroupStandings, len(groups))
	for i, gs := range groups {
		table := make([]models.PlayerStanding, len(gs.Standings))
		copy(table, gs.Standings)
		out[i] = GroupStandings{Group: gs.Group, Standings: table}
	}
	if count <= 0 {
		return out, nil
	}

	type candidate struct {
		group int
		index int
	}
	candidates := make([]candidate, 0, len(out))
	for gi, gs := range out {
		for ri, row := range gs.Standings {
			if row.Rank == rank && !row.Advances {
				candidates = append(candidates, candidate{group: gi, index: ri})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a := out[candidates[i].group].Standings[candidates[i].index]
		b := out[candidates[j].group].Standings[candidates[j].index]
		return strengthLess(a, b)
	})

	if count > len(candidates) {
		count = len(candidates)
	}
	for _, c := range candidates[:count] {
		out[c.group].Standings[c.index].Advances = true
	}
	return out, nil
}
