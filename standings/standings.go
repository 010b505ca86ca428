package standings

import (
	"errors"
	"sort"

	"github.com/dileepraotv/tt-tournament-system/models"
	"github.com/dileepraotv/tt-tournament-system/scoring"
)

var (
	ErrAdvanceCountTooLarge = errors.New("advance count must be smaller than the group size")
	ErrEmptyGroup           = errors.New("cannot compute standings for an empty group")
)

// GroupStandings pairs a group with its computed table. This is the shape
// the qualifier extractor consumes.
type GroupStandings struct {
	Group     models.Group            `json:"group"`
	Standings []models.PlayerStanding `json:"standings"`
}

// Compute builds the table for one group from a match snapshot. Only
// completed matches of this group count; byes, pending and live matches are
// excluded from the record.
//
// Ranking precedence: wins, head-to-head (only between exactly two tied
// players), game difference, points difference, then player id as the
// documented deterministic coin flip for pathological exact ties.
func Compute(group models.Group, matches []models.Match, format models.MatchFormat, advanceCount int) ([]models.PlayerStanding, error) {
	if len(group.PlayerIDs) == 0 {
		return nil, ErrEmptyGroup
	}
	if advanceCount < 0 || advanceCount >= len(group.PlayerIDs) {
		return nil, ErrAdvanceCountTooLarge
	}

	rows := make(map[int]*models.PlayerStanding, len(group.PlayerIDs))
	for _, id := range group.PlayerIDs {
		rows[id] = &models.PlayerStanding{PlayerID: id}
	}

	counted := countedMatches(group, matches)
	for _, m := range counted {
		state, err := scoring.ComputeMatchState(m.Games, format)
		if err != nil {
			return nil, err
		}

		r1 := rows[*m.Player1ID]
		r2 := rows[*m.Player2ID]
		r1.Played++
		r2.Played++

		if m.WinnerID != nil && *m.WinnerID == *m.Player1ID {
			r1.Wins++
			r2.Losses++
		} else {
			r2.Wins++
			r1.Losses++
		}

		// Game difference stops at the deciding game, mirroring the
		// outcome engine's notion of counted games.
		r1.GameDifference += state.GamesWon1 - state.GamesWon2
		r2.GameDifference += state.GamesWon2 - state.GamesWon1

		for _, g := range m.Games {
			r1.PointsDifference += g.Score1 - g.Score2
			r2.PointsDifference += g.Score2 - g.Score1
		}
	}

	table := make([]models.PlayerStanding, 0, len(rows))
	for _, id := range group.PlayerIDs {
		table = append(table, *rows[id])
	}

	orderTable(table, counted)

	for i := range table {
		table[i].Rank = i + 1
		table[i].Advances = table[i].Rank <= advanceCount
	}
	return table, nil
}

// countedMatches filters the snapshot down to the completed, fully-slotted
// fixtures of the group.
func countedMatches(group models.Group, matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.RoundRobin == nil || m.RoundRobin.GroupNumber != group.Number {
			continue
		}
		if m.Status != models.MatchStatusComplete {
			continue
		}
		if m.Player1ID == nil || m.Player2ID == nil || m.WinnerID == nil {
			continue
		}
		if !group.Contains(*m.Player1ID) || !group.Contains(*m.Player2ID) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// orderTable sorts the table in ranking order. Head-to-head is applied only
// inside a wins tier of exactly two players; a three-or-more-way tie skips
// straight to game difference since head-to-head cannot resolve a cycle.
func orderTable(table []models.PlayerStanding, counted []models.Match) {
	sort.Slice(table, func(i, j int) bool {
		return strengthLess(table[i], table[j])
	})

	// Walk the wins tiers and fix up two-way ties by direct result.
	start := 0
	for start < len(table) {
		end := start + 1
		for end < len(table) && table[end].Wins == table[start].Wins {
			end++
		}
		if end-start == 2 {
			if w := headToHeadWinner(table[start].PlayerID, table[start+1].PlayerID, counted); w != 0 {
				if w == table[start+1].PlayerID {
					table[start], table[start+1] = table[start+1], table[start]
				}
			}
		}
		start = end
	}
}

// strengthLess is the fallback comparator: wins, game difference, points
// difference, then player id.
func strengthLess(a, b models.PlayerStanding) bool {
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.GameDifference != b.GameDifference {
		return a.GameDifference > b.GameDifference
	}
	if a.PointsDifference != b.PointsDifference {
		return a.PointsDifference > b.PointsDifference
	}
	return a.PlayerID < b.PlayerID
}

// headToHeadWinner returns the winner of the direct completed match between
// the two players, or 0 when no such match exists.
func headToHeadWinner(p1, p2 int, counted []models.Match) int {
	for _, m := range counted {
		a, b := *m.Player1ID, *m.Player2ID
		if (a == p1 && b == p2) || (a == p2 && b == p1) {
			return *m.WinnerID
		}
	}
	return 0
}
