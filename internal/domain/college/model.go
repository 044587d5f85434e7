package college

// College is reference data that owns departments.
type College struct {
	ID      int64
	Name    string
	NameEng string
}
