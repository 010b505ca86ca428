package models

// Player is a tournament entrant as seen by the format engine. The caller
// owns identity assignment; the engine never invents player IDs.
//
// Seed is the pre-assigned strength rank (1 is strongest), nil for unseeded
// entrants. GroupPreference asks for a specific group number during group
// assignment and takes precedence over snake seeding.
type Player struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Seed            *int    `json:"seed,omitempty"`
	Club            *string `json:"club,omitempty"`
	GroupPreference *int    `json:"group_preference,omitempty"`
}

// MinSeed and MaxSeed bound the accepted explicit seed range.
const (
	MinSeed = 1
	MaxSeed = 64
)

func (p Player) Seeded() bool {
	return p.Seed != nil && *p.Seed >= MinSeed && *p.Seed <= MaxSeed
}
