package models

// GroupStageConfig configures group assignment, fixture generation and
// standings for a round-robin stage.
//
// Seed, when set, makes the unseeded-player shuffle reproducible so that
// regeneration from the same snapshot is byte-identical. MatchNumberOffset
// is the highest match number already taken in the tournament; generated
// fixtures continue the counter from there so round-robin and knockout
// matches never collide.
type GroupStageConfig struct {
	GroupCount        int         `json:"group_count"`
	AdvanceCount      int         `json:"advance_count"`
	WildcardCount     int         `json:"wildcard_count,omitempty"`
	Format            MatchFormat `json:"format"`
	Seed              *int64      `json:"seed,omitempty"`
	MatchNumberOffset int         `json:"match_number_offset,omitempty"`
}

// KnockoutStageConfig configures single-elimination bracket generation.
// Seed and MatchNumberOffset behave as in GroupStageConfig.
type KnockoutStageConfig struct {
	Format            MatchFormat `json:"format"`
	Seed              *int64      `json:"seed,omitempty"`
	MatchNumberOffset int         `json:"match_number_offset,omitempty"`
}
