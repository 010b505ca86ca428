package brackets

import (
	"errors"
	"sort"

	"github.com/dileepraotv/tt-tournament-system/models"
	"github.com/dileepraotv/tt-tournament-system/standings"
)

var ErrNoQualifiers = errors.New("no players advance from the group stage")

// Qualifier is one advancing player with the knockout seed the cross-group
// ordering assigns.
type Qualifier struct {
	PlayerID    int `json:"player_id"`
	Seed        int `json:"seed"`
	GroupNumber int `json:"group_number"`
	GroupRank   int `json:"group_rank"`
}

// ExtractQualifiers orders all advancing players across groups for
// re-seeding into a knockout bracket: every rank-1 finisher first (by group
// number), then every rank-2 finisher, then wildcard ranks, and so on. Fed
// into GenerateSingleElimination, this keeps group winners on top seeds and
// separates same-group players in the first knockout round wherever the
// bracket arithmetic allows.
func ExtractQualifiers(groups []standings.GroupStandings) ([]Qualifier, error) {
	quals := make([]Qualifier, 0)
	for _, gs := range groups {
		for _, row := range gs.Standings {
			if !row.Advances {
				continue
			}
			quals = append(quals, Qualifier{
				PlayerID:    row.PlayerID,
				GroupNumber: gs.Group.Number,
				GroupRank:   row.Rank,
			})
		}
	}
	if len(quals) == 0 {
		return nil, ErrNoQualifiers
	}

	sort.Slice(quals, func(i, j int) bool {
		if quals[i].GroupRank != quals[j].GroupRank {
			return quals[i].GroupRank < quals[j].GroupRank
		}
		return quals[i].GroupNumber < quals[j].GroupNumber
	})
	for i := range quals {
		quals[i].Seed = i + 1
	}
	return quals, nil
}

// QualifierPlayers turns the qualifier list into the seeded entry list the
// bracket generator expects. Names are looked up from the roster when
// available.
func QualifierPlayers(quals []Qualifier, roster []models.Player) []models.Player {
	byID := make(map[int]models.Player, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	players := make([]models.Player, 0, len(quals))
	for _, q := range quals {
		seed := q.Seed
		p := models.Player{ID: q.PlayerID, Seed: &seed}
		if known, ok := byID[q.PlayerID]; ok {
			p.Name = known.Name
			p.Club = known.Club
		}
		players = append(players, p)
	}
	return players
}
