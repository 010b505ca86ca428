package scoring

import "testing"

func TestValidateGameScore(t *testing.T) {
	tests := []struct {
		name     string
		score1   int
		score2   int
		valid    bool
		wantCode string
	}{
		{"regulation win", 11, 7, true, ""},
		{"regulation shutout", 11, 0, true, ""},
		{"regulation win reversed", 4, 11, true, ""},
		{"minimal deuce win", 12, 10, true, ""},
		{"long deuce win", 15, 13, true, ""},
		{"long deuce win reversed", 21, 23, true, ""},
		{"scoreless", 0, 0, false, CodeScorelessGame},
		{"nobody reached eleven", 10, 8, false, CodeWinnerBelowEleven},
		{"tie below eleven", 5, 5, false, CodeWinnerBelowEleven},
		{"overrun against low score", 12, 7, false, CodeOverrunPastEleven},
		{"overrun reversed", 3, 14, false, CodeOverrunPastEleven},
		{"deuce tie", 10, 10, false, CodeDeuceMarginNotTwo},
		{"eleven-ten needs two", 11, 10, false, CodeDeuceMarginNotTwo},
		{"deuce margin three", 14, 11, false, CodeDeuceMarginNotTwo},
		{"tie past deuce", 12, 12, false, CodeDeuceMarginNotTwo},
		{"negative score", -1, 11, false, CodeScoreNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateGameScore(tt.score1, tt.score2)
			if res.Valid != tt.valid {
				t.Fatalf("ValidateGameScore(%d, %d): valid = %v, want %v (errors: %+v)",
					tt.score1, tt.score2, res.Valid, tt.valid, res.Errors)
			}
			if tt.valid {
				if len(res.Errors) != 0 {
					t.Fatalf("valid score carries errors: %+v", res.Errors)
				}
				return
			}
			found := false
			for _, e := range res.Errors {
				if e.Code == tt.wantCode {
					found = true
				}
			}
			if !found {
				t.Errorf("expected code %s, got %+v", tt.wantCode, res.Errors)
			}
		})
	}
}

// Every valid game with a loser below 10 must end at exactly 11, and every
// valid game at 10-10 or beyond must end with a margin of exactly two.
func TestValidGameScoreLaw(t *testing.T) {
	for s1 := 0; s1 <= 30; s1++ {
		for s2 := 0; s2 <= 30; s2++ {
			res := ValidateGameScore(s1, s2)
			if !res.Valid {
				continue
			}
			hi, lo := s1, s2
			if s2 > s1 {
				hi, lo = s2, s1
			}
			if lo < 10 && hi != 11 {
				t.Errorf("accepted %d-%d with loser below 10 and winner != 11", s1, s2)
			}
			if lo >= 10 && hi-lo != 2 {
				t.Errorf("accepted %d-%d in deuce without exact two-point margin", s1, s2)
			}
		}
	}
}

func TestValidateGameScoreReportsAllErrors(t *testing.T) {
	res := ValidateGameScore(-3, -1)
	if len(res.Errors) != 2 {
		t.Fatalf("expected both negative scores flagged, got %+v", res.Errors)
	}
	if res.Errors[0].Field != FieldScore1 || res.Errors[1].Field != FieldScore2 {
		t.Errorf("unexpected field tags: %+v", res.Errors)
	}
}
