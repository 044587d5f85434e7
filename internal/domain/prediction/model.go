package prediction

import "time"

// Prediction is one student's final-ranking guess. The three places are
// department ids and are pairwise distinct.
type Prediction struct {
	ID          int64
	Name        string
	StudentID   string
	Phone       string
	FirstPlace  int64
	SecondPlace int64
	ThirdPlace  int64
	CreatedAt   time.Time
}

// DistinctPlaces reports whether the three picks name three different departments.
func DistinctPlaces(first, second, third int64) bool {
	return first != second && first != third && second != third
}
