package models

// Group is an ordered set of players in a round-robin stage. Number is
// 1-based and drives the cross-group seeding order of qualifiers.
type Group struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	PlayerIDs []int  `json:"player_ids"`
}

// Contains reports whether the player is a member of the group.
func (g Group) Contains(playerID int) bool {
	for _, id := range g.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
