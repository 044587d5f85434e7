package roster

// Freshman is an incoming student identified by name and birth date.
type Freshman struct {
	Name      string
	BirthDate string
	IsForm    bool
	IsCost    bool
}

// Student is an enrolled student identified by name and student id.
type Student struct {
	Name      string
	StudentID string
	IsForm    bool
	IsCost    bool
}

// Status is the verification answer: both the form and the fee must be in.
type Status struct {
	IsForm bool
	IsCost bool
}

func (s Status) Complete() bool {
	return s.IsForm && s.IsCost
}
