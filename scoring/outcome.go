package scoring

import (
	"errors"
	"sort"

	"github.com/dileepraotv/tt-tournament-system/models"
)

var ErrInvalidMatchFormat = errors.New("match format must be best-of-3, best-of-5 or best-of-7")

// Outcome is the overall result of a match derived from its games.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomePlayer1    Outcome = "player1_wins"
	OutcomePlayer2    Outcome = "player2_wins"
)

// GameTally mirrors one input game with its contribution to the result.
// Counted is false for games entered after the match was already decided;
// they are kept in the output for display and cleanup but never change the
// outcome.
type GameTally struct {
	Number     int  `json:"number"`
	WinnerSlot int  `json:"winner_slot"` // 1 or 2, 0 for a tied score
	Counted    bool `json:"counted"`
}

// ComputedMatchState is the derived state of a match under a best-of-K
// format.
type ComputedMatchState struct {
	GamesWon1      int         `json:"games_won1"`
	GamesWon2      int         `json:"games_won2"`
	Outcome        Outcome     `json:"outcome"`
	DecidedInGame  *int        `json:"decided_in_game,omitempty"`
	GamesRemaining int         `json:"games_remaining"`
	Games          []GameTally `json:"games"`
}

func (s ComputedMatchState) Decided() bool {
	return s.Outcome != OutcomeInProgress
}

// WinnerSlot returns 1 or 2 for a decided match, 0 otherwise.
func (s ComputedMatchState) WinnerSlot() int {
	switch s.Outcome {
	case OutcomePlayer1:
		return 1
	case OutcomePlayer2:
		return 2
	}
	return 0
}

// ComputeMatchState derives the match state from a possibly out-of-order
// game list. Games are sorted by game number first, so insertion order never
// changes the result. Counting stops at the game where the win condition is
// first met.
func ComputeMatchState(games []models.Game, format models.MatchFormat) (ComputedMatchState, error) {
	if !format.Valid() {
		return ComputedMatchState{}, ErrInvalidMatchFormat
	}

	ordered := make([]models.Game, len(games))
	copy(ordered, games)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	need := format.GamesToWin()
	state := ComputedMatchState{
		Outcome: OutcomeInProgress,
		Games:   make([]GameTally, 0, len(ordered)),
	}

	for _, g := range ordered {
		tally := GameTally{Number: g.Number}
		switch {
		case g.Score1 > g.Score2:
			tally.WinnerSlot = 1
		case g.Score2 > g.Score1:
			tally.WinnerSlot = 2
		}

		if !state.Decided() && tally.WinnerSlot != 0 {
			tally.Counted = true
			if tally.WinnerSlot == 1 {
				state.GamesWon1++
			} else {
				state.GamesWon2++
			}
			if state.GamesWon1 == need || state.GamesWon2 == need {
				n := g.Number
				state.DecidedInGame = &n
				if state.GamesWon1 == need {
					state.Outcome = OutcomePlayer1
				} else {
					state.Outcome = OutcomePlayer2
				}
			}
		}
		state.Games = append(state.Games, tally)
	}

	if remaining := format.MaxGames() - len(ordered); remaining > 0 {
		state.GamesRemaining = remaining
	}
	return state, nil
}
