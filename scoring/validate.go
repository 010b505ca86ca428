package scoring

import (
	"fmt"

	"github.com/dileepraotv/tt-tournament-system/models"
)

// Fields a validation error can implicate.
const (
	FieldScore1 = "score1"
	FieldScore2 = "score2"
	FieldGame   = "game"
)

// Stable machine codes for game-score validation failures.
const (
	CodeScoreNegative     = "score_negative"
	CodeScorelessGame     = "scoreless_game"
	CodeWinnerBelowEleven = "winner_below_eleven"
	CodeOverrunPastEleven = "overrun_past_eleven"
	CodeDeuceMarginNotTwo = "deuce_margin_not_two"
)

// ValidationError is one rule violation in a submitted game score.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

// ValidationResult collects every violation at once so a caller can surface
// all of them to an admin in a single round trip.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

func (r *ValidationResult) add(code, field, format string, args ...interface{}) {
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	})
}

// ValidateGameScore checks a single game score against table-tennis law:
// non-negative integers, not 0-0, winner at or past 11 with a two-point
// margin; before deuce the winner holds exactly 11 (the game ends the
// instant 11 is reached), in deuce the margin is exactly two.
func ValidateGameScore(score1, score2 int) ValidationResult {
	res := ValidationResult{}

	if score1 < 0 {
		res.add(CodeScoreNegative, FieldScore1, "score must not be negative, got %d", score1)
	}
	if score2 < 0 {
		res.add(CodeScoreNegative, FieldScore2, "score must not be negative, got %d", score2)
	}
	if len(res.Errors) > 0 {
		// The law checks below are meaningless on negative input.
		return res
	}

	if score1 == 0 && score2 == 0 {
		res.add(CodeScorelessGame, FieldGame, "a game cannot end 0-0")
		return res
	}

	hi, lo := score1, score2
	hiField := FieldScore1
	if score2 > score1 {
		hi, lo = score2, score1
		hiField = FieldScore2
	}
	if score1 == score2 {
		hiField = FieldGame
	}

	switch {
	case lo >= 10:
		// Deuce: the margin must be exactly two. A tie or a 3+ point gap
		// past 10-10 cannot occur in play.
		if hi-lo != 2 {
			res.add(CodeDeuceMarginNotTwo, FieldGame,
				"after 10-10 the game is won by exactly two points, got %d-%d", score1, score2)
		}
	case hi < 11:
		res.add(CodeWinnerBelowEleven, hiField,
			"the winner must reach at least 11 points, got %d-%d", score1, score2)
	case hi > 11:
		// With the loser below 10 the game ends the instant 11 is reached.
		res.add(CodeOverrunPastEleven, hiField,
			"a game against fewer than 10 points ends at exactly 11, got %d-%d", score1, score2)
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// ValidateGame validates the score pair carried by a game row.
func ValidateGame(g models.Game) ValidationResult {
	return ValidateGameScore(g.Score1, g.Score2)
}
