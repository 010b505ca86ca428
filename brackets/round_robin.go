package brackets

import (
	"github.com/dileepraotv/tt-tournament-system/models"
)

// AssignGroups distributes players over the configured number of groups.
//
// Placement order: players carrying a valid group preference go to their
// requested group first; seeded players are then snake-seeded across the
// groups (pass one left to right, pass two right to left, alternating) so
// the top G seeds land in G different groups; unseeded players are dealt to
// the smallest group, lowest group number first, to balance sizes. An
// out-of-range preference is ignored and the player falls through to normal
// placement.
func AssignGroups(players []models.Player, cfg models.GroupStageConfig) ([]models.Group, error) {
	groupCount := cfg.GroupCount
	if groupCount < 1 {
		return nil, ErrInvalidGroupCount
	}
	if len(players) < 2*groupCount {
		return nil, ErrNotEnoughPlayers
	}

	members := make([][]int, groupCount)

	rest := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p.GroupPreference != nil && *p.GroupPreference >= 1 && *p.GroupPreference <= groupCount {
			gi := *p.GroupPreference - 1
			members[gi] = append(members[gi], p.ID)
			continue
		}
		rest = append(rest, p)
	}

	rng := newRand(cfg.Seed)
	seeded, unseeded := splitSeeded(rest, rng)

	for i, p := range seeded {
		pass, pos := i/groupCount, i%groupCount
		gi := pos
		if pass%2 == 1 {
			gi = groupCount - 1 - pos
		}
		members[gi] = append(members[gi], p.ID)
	}

	for _, p := range unseeded {
		gi := 0
		for j := 1; j < groupCount; j++ {
			if len(members[j]) < len(members[gi]) {
				gi = j
			}
		}
		members[gi] = append(members[gi], p.ID)
	}

	groups := make([]models.Group, groupCount)
	for i := range groups {
		groups[i] = models.Group{
			Number:    i + 1,
			Name:      GroupName(i + 1),
			PlayerIDs: members[i],
		}
	}
	return groups, nil
}

// GenerateRoundRobinFixtures builds the all-play-all fixture list for every
// group using the circle method. The Round of each match is the matchday
// index shared across groups: on matchday 1 every group plays its first
// round. Match numbers continue the tournament-wide counter from
// cfg.MatchNumberOffset so knockout and round-robin matches never collide.
func GenerateRoundRobinFixtures(groups []models.Group, cfg models.GroupStageConfig) ([]models.Match, error) {
	schedules := make([][][]fixturePair, len(groups))
	matchdays := 0
	for i, g := range groups {
		if len(g.PlayerIDs) < 2 {
			return nil, ErrGroupTooSmall
		}
		schedules[i] = circleSchedule(g.PlayerIDs)
		if len(schedules[i]) > matchdays {
			matchdays = len(schedules[i])
		}
	}

	number := cfg.MatchNumberOffset
	matches := make([]models.Match, 0)
	for day := 1; day <= matchdays; day++ {
		for gi, group := range groups {
			if day > len(schedules[gi]) {
				continue
			}
			for _, pair := range schedules[gi][day-1] {
				number++
				m := models.Match{
					Round:      day,
					Number:     number,
					Status:     models.MatchStatusPending,
					RoundRobin: &models.RoundRobinLink{GroupNumber: group.Number},
				}
				switch {
				case pair.b == nil:
					// Fixture against the virtual participant: recorded
					// as an immediately resolved bye row.
					m.Player1ID = copyID(pair.a)
					m.Status = models.MatchStatusBye
					m.WinnerID = copyID(pair.a)
				case pair.a == nil:
					m.Player1ID = copyID(pair.b)
					m.Status = models.MatchStatusBye
					m.WinnerID = copyID(pair.b)
				default:
					m.Player1ID = copyID(pair.a)
					m.Player2ID = copyID(pair.b)
				}
				matches = append(matches, m)
			}
		}
	}
	return matches, nil
}

type fixturePair struct {
	a, b *int
}

// circleSchedule arranges the players in a circle, fixes the first one and
// rotates the rest each round, so everyone meets everyone exactly once and
// nobody plays twice in a round. An odd player count gets a virtual bye
// participant (nil) to make the circle even.
func circleSchedule(playerIDs []int) [][]fixturePair {
	circle := make([]*int, 0, len(playerIDs)+1)
	for _, id := range playerIDs {
		id := id
		circle = append(circle, &id)
	}
	if len(circle)%2 == 1 {
		circle = append(circle, nil)
	}

	n := len(circle)
	rounds := make([][]fixturePair, 0, n-1)
	for r := 0; r < n-1; r++ {
		pairs := make([]fixturePair, 0, n/2)
		for i := 0; i < n/2; i++ {
			pairs = append(pairs, fixturePair{a: circle[i], b: circle[n-1-i]})
		}
		rounds = append(rounds, pairs)

		rotated := make([]*int, 0, n)
		rotated = append(rotated, circle[0], circle[n-1])
		rotated = append(rotated, circle[1:n-1]...)
		circle = rotated
	}
	return rounds
}
