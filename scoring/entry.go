package scoring

import "github.com/dileepraotv/tt-tournament-system/models"

// Reasons a game entry is refused.
const (
	EntryReasonSlotsUnfilled   = "slots_unfilled"
	EntryReasonMatchDecided    = "match_decided"
	EntryReasonFormatExhausted = "format_exhausted"
)

// GameEntryDecision gates score entry for a match. NextGameNumber is always
// the correct next number (highest existing plus one) regardless of whether
// entry is currently allowed, so a UI can pre-fill it without its own
// arithmetic.
type GameEntryDecision struct {
	Allowed        bool   `json:"allowed"`
	NextGameNumber int    `json:"next_game_number"`
	ReasonCode     string `json:"reason_code,omitempty"`
}

// CanAddAnotherGame decides whether another game may be recorded for the
// match: both player slots must be filled, the match must not already be
// decided, and the next game number must stay within the format ceiling.
func CanAddAnotherGame(match models.Match, format models.MatchFormat) (GameEntryDecision, error) {
	state, err := ComputeMatchState(match.Games, format)
	if err != nil {
		return GameEntryDecision{}, err
	}

	next := 1
	for _, g := range match.Games {
		if g.Number >= next {
			next = g.Number + 1
		}
	}

	decision := GameEntryDecision{NextGameNumber: next}
	switch {
	case match.Player1ID == nil || match.Player2ID == nil:
		decision.ReasonCode = EntryReasonSlotsUnfilled
	case state.Decided():
		// Also covers numbers past the deciding game: nothing may be
		// added once the win condition is met.
		decision.ReasonCode = EntryReasonMatchDecided
	case next > format.MaxGames():
		decision.ReasonCode = EntryReasonFormatExhausted
	default:
		decision.Allowed = true
	}
	return decision, nil
}
