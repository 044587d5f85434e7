package standing

// Entry is one department row of the overall table. Rank is derived on every read.
type Entry struct {
	DepartmentID int64
	Name         string
	NameEng      string
	Logo         string
	LogoRaw      string
	Score        int
	Rank         int
}

// FutsalRow is a stored group-stage row. Rank is recomputed and never read from storage.
type FutsalRow struct {
	ID           int64
	DepartmentID *int64
	Name         string
	NameEng      string
	LogoURL      string
	GroupName    string
	Matches      int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Wildcard     bool
	Rank         int
}

func (r FutsalRow) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Mode selects where department scores come from.
type Mode string

const (
	// ModeStored reads department.score as maintained by the admin flow.
	ModeStored Mode = "stored"
	// ModeAggregate sums participation scores of played matches.
	ModeAggregate Mode = "aggregate"
)

func (m Mode) Valid() bool {
	return m == ModeStored || m == ModeAggregate
}
