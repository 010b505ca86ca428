package models

// MatchFormat is the best-of-K game count of a match. Only best-of-3,
// best-of-5 and best-of-7 are legal in this engine.
type MatchFormat int

const (
	BestOfThree MatchFormat = 3
	BestOfFive  MatchFormat = 5
	BestOfSeven MatchFormat = 7
)

func (f MatchFormat) Valid() bool {
	return f == BestOfThree || f == BestOfFive || f == BestOfSeven
}

// GamesToWin is the number of games that decides the match: first to
// ceil(K/2).
func (f MatchFormat) GamesToWin() int {
	return (int(f) + 1) / 2
}

// MaxGames is the ceiling on game numbers for the format.
func (f MatchFormat) MaxGames() int {
	return int(f)
}
