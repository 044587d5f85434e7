package department

// Department is a competing team. Score is maintained by the scoring admin flow.
type Department struct {
	ID             int64
	Name           string
	NameEng        string
	LogoURL        string
	Score          int
	CollegeID      *int64
	CollegeName    string
	CollegeNameEng string
}

// Filter narrows department listings. Search is a case-insensitive substring
// over both names.
type Filter struct {
	CollegeID *int64
	Search    string
}
