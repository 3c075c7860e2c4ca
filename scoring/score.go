package scoring

// Side identifies which opponent a score action applies to.
type Side int

const (
	SideNone Side = iota
	SideTeam1
	SideTeam2
)

func (s Side) String() string {
	switch s {
	case SideTeam1:
		return "team1"
	case SideTeam2:
		return "team2"
	default:
		return "none"
	}
}

// Standard rally scoring: first to 11, win by 2. There is no upper clamp;
// deuce games keep climbing until one side leads by two.
const (
	winningScore = 11
	winningLead  = 2
)

// ScorePair is the controller's local draft of a match's two scores. It is
// a detached copy of the fetched record and can diverge from the server
// until a save or finalize succeeds.
type ScorePair struct {
	Team1 int
	Team2 int
}

// Winner reports which side, if any, has won under the draft. At most one
// side can satisfy the rule since both branches demand a two-point lead.
func Winner(s ScorePair) Side {
	switch {
	case s.Team1 >= winningScore && s.Team1-s.Team2 >= winningLead:
		return SideTeam1
	case s.Team2 >= winningScore && s.Team2-s.Team1 >= winningLead:
		return SideTeam2
	default:
		return SideNone
	}
}
