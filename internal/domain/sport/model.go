package sport

type Sport struct {
	ID          int64
	Name        string
	NameEng     string
	IsTeamSport bool
}
