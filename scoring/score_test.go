package scoring

import "testing"

func TestWinnerBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		score ScorePair
		want  Side
	}{
		{"fresh game", ScorePair{0, 0}, SideNone},
		{"mid game", ScorePair{7, 3}, SideNone},
		{"below threshold with big lead", ScorePair{10, 8}, SideNone},
		{"at threshold lead two", ScorePair{11, 9}, SideTeam1},
		{"at threshold lead one", ScorePair{11, 10}, SideNone},
		{"deuce resolved", ScorePair{12, 10}, SideTeam1},
		{"deuce unresolved", ScorePair{12, 11}, SideNone},
		{"long deuce", ScorePair{19, 21}, SideTeam2},
		{"team two wins", ScorePair{3, 11}, SideTeam2},
		{"blowout", ScorePair{11, 0}, SideTeam1},
	}
	for _, tc := range cases {
		if got := Winner(tc.score); got != tc.want {
			t.Errorf("%s: Winner(%v) = %v, want %v", tc.name, tc.score, got, tc.want)
		}
	}
}

func TestWinnerMutuallyExclusive(t *testing.T) {
	// Sweep a generous grid; both sides claiming a win at once would mean
	// both lead by two, which cannot hold.
	for a := 0; a <= 30; a++ {
		for b := 0; b <= 30; b++ {
			s := ScorePair{a, b}
			team1Wins := a >= winningScore && a-b >= winningLead
			team2Wins := b >= winningScore && b-a >= winningLead
			if team1Wins && team2Wins {
				t.Fatalf("both sides win at %v", s)
			}
			want := SideNone
			if team1Wins {
				want = SideTeam1
			}
			if team2Wins {
				want = SideTeam2
			}
			if got := Winner(s); got != want {
				t.Fatalf("Winner(%v) = %v, want %v", s, got, want)
			}
		}
	}
}
