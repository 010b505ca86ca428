package standings

import (
	"reflect"
	"testing"

	"github.com/dileepraotv/tt-tournament-system/models"
)

func ptr(v int) *int { return &v }

func completed(number, group, p1, p2, winner int, games ...models.Game) models.Match {
	return models.Match{
		Round:      1,
		Number:     number,
		Player1ID:  ptr(p1),
		Player2ID:  ptr(p2),
		Status:     models.MatchStatusComplete,
		WinnerID:   ptr(winner),
		Games:      games,
		RoundRobin: &models.RoundRobinLink{GroupNumber: group},
	}
}

func g(n, s1, s2 int) models.Game {
	return models.Game{Number: n, Score1: s1, Score2: s2}
}

// Four players, full round robin, a win cycle among A, B and C. The
// three-way tie at two wins must skip head-to-head and fall through to game
// difference, then points difference.
func threeWayTieFixture() (models.Group, []models.Match) {
	const (
		a = 1
		b = 2
		c = 3
		d = 4
	)
	group := models.Group{Number: 1, Name: "Group A", PlayerIDs: []int{a, b, c, d}}
	matches := []models.Match{
		completed(1, 1, a, b, a, g(1, 11, 5), g(2, 11, 5)),
		completed(2, 1, c, d, c, g(1, 11, 9), g(2, 9, 11), g(3, 11, 9)),
		completed(3, 1, c, a, c, g(1, 11, 3), g(2, 11, 3)),
		completed(4, 1, b, d, b, g(1, 11, 7), g(2, 11, 7)),
		completed(5, 1, a, d, a, g(1, 11, 2), g(2, 11, 2)),
		completed(6, 1, b, c, b, g(1, 11, 9), g(2, 9, 11), g(3, 11, 9)),
	}
	return group, matches
}

func TestThreeWayTieSkipsHeadToHead(t *testing.T) {
	group, matches := threeWayTieFixture()

	table, err := Compute(group, matches, models.BestOfThree, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Wins: B=2, C=2, A=2, D=0. Game difference: C +2, A +2, B +1.
	// Points difference breaks C over A: +16 vs +14.
	wantOrder := []int{3, 1, 2, 4}
	for i, row := range table {
		if row.PlayerID != wantOrder[i] {
			t.Fatalf("rank %d is player %d, want %d (table %+v)", i+1, row.PlayerID, wantOrder[i], table)
		}
	}

	for i, row := range table {
		if row.Rank != i+1 {
			t.Errorf("rank not sequential: %+v", row)
		}
		if advances := row.Rank <= 2; row.Advances != advances {
			t.Errorf("advances flag wrong for %+v", row)
		}
	}
}

func TestWinsSumEqualsCompletedMatches(t *testing.T) {
	group, matches := threeWayTieFixture()

	table, err := Compute(group, matches, models.BestOfThree, 1)
	if err != nil {
		t.Fatal(err)
	}

	totalWins := 0
	for _, row := range table {
		totalWins += row.Wins
	}
	if totalWins != len(matches) {
		t.Errorf("wins sum = %d, want %d completed matches", totalWins, len(matches))
	}
}

func TestTwoWayTieUsesHeadToHead(t *testing.T) {
	group := models.Group{Number: 1, Name: "Group A", PlayerIDs: []int{1, 2, 3, 4}}
	matches := []models.Match{
		completed(1, 1, 1, 2, 1, g(1, 11, 5), g(2, 9, 11), g(3, 11, 8)),
		completed(2, 1, 2, 3, 2, g(1, 11, 4), g(2, 11, 6)),
		completed(3, 1, 4, 1, 4, g(1, 11, 9), g(2, 11, 9)),
		completed(4, 1, 4, 3, 4, g(1, 11, 7), g(2, 11, 7)),
	}

	table, err := Compute(group, matches, models.BestOfThree, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Players 1 and 2 are tied at one win each. Player 2 holds the better
	// game difference, but player 1 won the direct match and must rank
	// ahead.
	if table[0].PlayerID != 4 {
		t.Fatalf("expected player 4 first, got %+v", table)
	}
	if table[1].PlayerID != 1 || table[2].PlayerID != 2 {
		t.Errorf("head-to-head not applied to the two-way tie: %+v", table)
	}
}

func TestComputeIgnoresByesAndPendingMatches(t *testing.T) {
	group := models.Group{Number: 1, Name: "Group A", PlayerIDs: []int{1, 2, 3}}
	bye := models.Match{
		Round:      1,
		Number:     3,
		Player1ID:  ptr(3),
		Status:     models.MatchStatusBye,
		WinnerID:   ptr(3),
		RoundRobin: &models.RoundRobinLink{GroupNumber: 1},
	}
	pending := models.Match{
		Round:      2,
		Number:     4,
		Player1ID:  ptr(1),
		Player2ID:  ptr(3),
		Status:     models.MatchStatusPending,
		RoundRobin: &models.RoundRobinLink{GroupNumber: 1},
	}
	matches := []models.Match{
		completed(1, 1, 1, 2, 1, g(1, 11, 6), g(2, 11, 6)),
		bye,
		pending,
	}

	table, err := Compute(group, matches, models.BestOfThree, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range table {
		if row.PlayerID == 3 && row.Played != 0 {
			t.Errorf("bye counted into the record: %+v", row)
		}
	}
	if table[0].PlayerID != 1 || table[0].Played != 1 {
		t.Errorf("unexpected leader row: %+v", table[0])
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	group, matches := threeWayTieFixture()

	first, err := Compute(group, matches, models.BestOfThree, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Compute(group, matches, models.BestOfThree, 2)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("standings differ between runs: %+v vs %+v", first, again)
		}
	}
}

func TestComputeRejectsBadAdvanceCount(t *testing.T) {
	group := models.Group{Number: 1, PlayerIDs: []int{1, 2, 3}}
	if _, err := Compute(group, nil, models.BestOfThree, 3); err != ErrAdvanceCountTooLarge {
		t.Errorf("expected ErrAdvanceCountTooLarge, got %v", err)
	}
	if _, err := Compute(group, nil, models.BestOfThree, -1); err != ErrAdvanceCountTooLarge {
		t.Errorf("expected ErrAdvanceCountTooLarge for negative count, got %v", err)
	}
}

func TestApplyWildcards(t *testing.T) {
	groups := []GroupStandings{
		{
			Group: models.Group{Number: 1, Name: "Group A", PlayerIDs: []int{1, 2, 3}},
			Standings: []models.PlayerStanding{
				{PlayerID: 1, Wins: 2, Rank: 1, Advances: true},
				{PlayerID: 2, Wins: 1, Rank: 2, Advances: true},
				{PlayerID: 3, Wins: 0, GameDifference: -2, Rank: 3},
			},
		},
		{
			Group: models.Group{Number: 2, Name: "Group B", PlayerIDs: []int{4, 5, 6}},
			Standings: []models.PlayerStanding{
				{PlayerID: 4, Wins: 2, Rank: 1, Advances: true},
				{PlayerID: 5, Wins: 1, Rank: 2, Advances: true},
				{PlayerID: 6, Wins: 1, GameDifference: -1, Rank: 3},
			},
		},
	}

	out, err := ApplyWildcards(groups, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Player 6 holds the stronger third place (one win against zero).
	if !out[1].Standings[2].Advances {
		t.Errorf("best third not flagged: %+v", out[1].Standings[2])
	}
	if out[0].Standings[2].Advances {
		t.Errorf("weaker third flagged: %+v", out[0].Standings[2])
	}
	// Inputs stay untouched.
	if groups[1].Standings[2].Advances {
		t.Error("ApplyWildcards mutated its input")
	}
}
