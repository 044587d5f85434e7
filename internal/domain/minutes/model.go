package minutes

import "time"

// Minutes is a published council meeting record. Date is YYYY-MM-DD.
type Minutes struct {
	ID        int64
	Title     string
	FileURL   string
	Date      string
	CreatedAt time.Time
}

// Query filters listings; Search matches the title only.
type Query struct {
	Search string
	Offset int
	Limit  int
}
