// Package brackets holds the generation side of the tournament format
// engine: single-elimination brackets, round-robin group assignment and
// fixtures, and qualifier extraction between the two. Everything in here is
// a pure function over snapshots; generation with the same input and PRNG
// seed is byte-identical, which lets callers regenerate fixtures safely.
package brackets

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/dileepraotv/tt-tournament-system/models"
)

var (
	ErrNotEnoughPlayers  = errors.New("not enough players for the requested stage (minimum 2 per bracket or group)")
	ErrInvalidGroupCount = errors.New("group count must be at least 1")
	ErrGroupTooSmall     = errors.New("every group needs at least two players to generate fixtures")
)

// newRand returns the PRNG for unseeded-player shuffles. A supplied seed
// makes regeneration reproducible; without one any source is fine since the
// structural invariants hold either way.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// splitSeeded partitions players into seeded (sorted ascending by seed,
// ties by id) and unseeded (shuffled with the given PRNG).
func splitSeeded(players []models.Player, rng *rand.Rand) (seeded, unseeded []models.Player) {
	for _, p := range players {
		if p.Seeded() {
			seeded = append(seeded, p)
		} else {
			unseeded = append(unseeded, p)
		}
	}
	sort.Slice(seeded, func(i, j int) bool {
		if *seeded[i].Seed != *seeded[j].Seed {
			return *seeded[i].Seed < *seeded[j].Seed
		}
		return seeded[i].ID < seeded[j].ID
	})
	rng.Shuffle(len(unseeded), func(i, j int) {
		unseeded[i], unseeded[j] = unseeded[j], unseeded[i]
	})
	return seeded, unseeded
}

// RoundName names a knockout round by its distance from the final:
// Final, Semifinal, Quarterfinal, then "Round of N" with N the number of
// players entering that round.
func RoundName(round, totalRounds int) string {
	switch totalRounds - round {
	case 0:
		return "Final"
	case 1:
		return "Semifinal"
	case 2:
		return "Quarterfinal"
	default:
		return fmt.Sprintf("Round of %d", 1<<(totalRounds-round+1))
	}
}

// GroupName is the stable display name for a 1-based group number.
func GroupName(number int) string {
	if number >= 1 && number <= 26 {
		return fmt.Sprintf("Group %c", 'A'+number-1)
	}
	return fmt.Sprintf("Group %d", number)
}
