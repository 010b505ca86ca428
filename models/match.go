package models

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusLive     MatchStatus = "live"
	MatchStatusComplete MatchStatus = "complete"
	MatchStatusBye      MatchStatus = "bye"
)

// Game is a single game inside a match. Number is 1-based within the match;
// the winner is derived from the scores, never stored.
type Game struct {
	Number int `json:"number"`
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

// KnockoutLink wires a bracket match to the match its winner feeds.
// NextMatchNumber refers to Match.Number and is nil on the final;
// NextMatchSlot is 1 or 2.
type KnockoutLink struct {
	NextMatchNumber *int `json:"next_match_number,omitempty"`
	NextMatchSlot   *int `json:"next_match_slot,omitempty"`
}

// RoundRobinLink ties a fixture to its group. The Round on the match itself
// is the matchday index shared across every group of the stage.
type RoundRobinLink struct {
	GroupNumber int `json:"group_number"`
}

// Match is the one match shape shared by both stage kinds. Exactly one of
// Knockout and RoundRobin is set, distinguishing a bracket match (with
// next-match wiring) from a group fixture (with a group reference).
//
// A nil player slot means unfilled/TBD. Number is unique within the
// tournament, which makes (Round, Number) unique as well.
type Match struct {
	Round      int             `json:"round"`
	Number     int             `json:"number"`
	Player1ID  *int            `json:"player1_id,omitempty"`
	Player2ID  *int            `json:"player2_id,omitempty"`
	Status     MatchStatus     `json:"status"`
	WinnerID   *int            `json:"winner_id,omitempty"`
	Games      []Game          `json:"games,omitempty"`
	Knockout   *KnockoutLink   `json:"knockout,omitempty"`
	RoundRobin *RoundRobinLink `json:"round_robin,omitempty"`
}

// Bye reports whether the match is an unopposed advancement: exactly one
// filled player slot with the winner assigned at generation time.
func (m Match) Bye() bool {
	return m.Status == MatchStatusBye
}
