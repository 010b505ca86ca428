package models

// PlayerStanding is one row of a group table. It is derived data, computed
// from the completed matches of the group, and is never a source of truth.
//
// GameDifference is games won minus games lost over counted matches;
// PointsDifference is raw points scored minus conceded across every game of
// those matches. Advances is true when the rank clears the stage's advance
// count, or when the row was picked as a cross-group wildcard.
type PlayerStanding struct {
	PlayerID         int  `json:"player_id"`
	Played           int  `json:"played"`
	Wins             int  `json:"wins"`
	Losses           int  `json:"losses"`
	GameDifference   int  `json:"game_difference"`
	PointsDifference int  `json:"points_difference"`
	Rank             int  `json:"rank"`
	Advances         bool `json:"advances"`
}
