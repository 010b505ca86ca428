package brackets

import (
	"github.com/dileepraotv/tt-tournament-system/models"
)

// BracketResult is the full output of single-elimination generation: the
// sized bracket, the ordered slot assignment (nil slots are byes) and every
// match of every round, shells included, wired together by next-match
// pointers.
type BracketResult struct {
	BracketSize int            `json:"bracket_size"`
	Rounds      int            `json:"rounds"`
	Slots       []*int         `json:"slots"`
	Matches     []models.Match `json:"matches"`
}

// GenerateSingleElimination seeds the players into a knockout bracket.
//
// Bracket size is the smallest power of two holding everyone; the byes this
// opens up go to the best seeds. Slot placement follows the standard
// elimination-seeding rule (see slotSeeds), unseeded players fill the
// remaining seed positions in shuffled order. Rounds past the first are
// materialized as empty shell matches; first-round byes are resolved and
// their winners propagated during generation.
func GenerateSingleElimination(players []models.Player, cfg models.KnockoutStageConfig) (*BracketResult, error) {
	n := len(players)
	if n < 2 {
		return nil, ErrNotEnoughPlayers
	}

	rng := newRand(cfg.Seed)
	seeded, unseeded := splitSeeded(players, rng)
	order := append(seeded, unseeded...)

	rounds := 1
	for (1 << rounds) < n {
		rounds++
	}
	size := 1 << rounds

	slots := make([]*int, size)
	for i, seedNum := range slotSeeds(size) {
		if seedNum <= n {
			id := order[seedNum-1].ID
			slots[i] = &id
		}
	}

	b := newBracketBuilder(size, rounds, cfg.MatchNumberOffset)
	b.fillFirstRound(slots)

	matches := make([]models.Match, 0, size-1)
	for _, m := range b.matches {
		matches = append(matches, *m)
	}

	return &BracketResult{
		BracketSize: size,
		Rounds:      rounds,
		Slots:       slots,
		Matches:     matches,
	}, nil
}

// slotSeeds returns the seed number occupying each slot of a bracket of the
// given size (a power of two). Base case: a two-slot bracket holds seeds
// [1 2]. Each doubling pairs every seed with its complement, keeping the
// two highest remaining seeds of any sub-bracket in opposite halves — seed
// 1 and 2 can only meet in the final, 1 and 3 no earlier than the
// semifinal, and so on.
func slotSeeds(size int) []int {
	if size <= 2 {
		return []int{1, 2}
	}
	prev := slotSeeds(size / 2)
	out := make([]int, 0, size)
	for _, s := range prev {
		out = append(out, s, size+1-s)
	}
	return out
}

type bracketBuilder struct {
	rounds   [][]*models.Match
	matches  []*models.Match
	byNumber map[int]*models.Match
}

// newBracketBuilder materializes every match of every round as a pending
// shell and wires the next-match pointers from index arithmetic alone:
// match i of a round feeds slot (i mod 2)+1 of match i/2 in the next round.
func newBracketBuilder(size, totalRounds, numberOffset int) *bracketBuilder {
	b := &bracketBuilder{
		rounds:   make([][]*models.Match, totalRounds),
		byNumber: make(map[int]*models.Match, size-1),
	}

	number := numberOffset
	for r := 1; r <= totalRounds; r++ {
		count := size >> r
		b.rounds[r-1] = make([]*models.Match, count)
		for i := 0; i < count; i++ {
			number++
			m := &models.Match{
				Round:    r,
				Number:   number,
				Status:   models.MatchStatusPending,
				Knockout: &models.KnockoutLink{},
			}
			b.rounds[r-1][i] = m
			b.matches = append(b.matches, m)
			b.byNumber[m.Number] = m
		}
	}

	for r := 1; r < totalRounds; r++ {
		for i, m := range b.rounds[r-1] {
			next := b.rounds[r][i/2].Number
			slot := i%2 + 1
			m.Knockout.NextMatchNumber = &next
			m.Knockout.NextMatchSlot = &slot
		}
	}
	// The final is the one match left without a next-match pointer.
	return b
}

func (b *bracketBuilder) fillFirstRound(slots []*int) {
	for i, m := range b.rounds[0] {
		p1 := slots[2*i]
		p2 := slots[2*i+1]
		m.Player1ID = copyID(p1)
		m.Player2ID = copyID(p2)
		if (p1 == nil) != (p2 == nil) {
			b.resolveBye(m)
		}
	}
}

// resolveBye decides a one-sided match immediately and pushes the winner
// into its target slot. Propagation is re-entrant: if the receiving match
// turns out to be a bye itself, its winner advances in turn.
func (b *bracketBuilder) resolveBye(m *models.Match) {
	winner := m.Player1ID
	if winner == nil {
		winner = m.Player2ID
	}
	m.Status = models.MatchStatusBye
	m.WinnerID = copyID(winner)
	b.advanceWinner(m)
}

func (b *bracketBuilder) advanceWinner(m *models.Match) {
	link := m.Knockout
	if link == nil || link.NextMatchNumber == nil {
		return
	}
	target := b.byNumber[*link.NextMatchNumber]
	if *link.NextMatchSlot == 1 {
		target.Player1ID = copyID(m.WinnerID)
	} else {
		target.Player2ID = copyID(m.WinnerID)
	}
	if target.Status == models.MatchStatusBye && target.WinnerID == nil {
		b.resolveBye(target)
	}
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
