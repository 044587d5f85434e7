package announcement

import "time"

type Announcement struct {
	ID          int64
	Title       string
	Content     string
	Image       string
	PublishedAt time.Time
	CreatedAt   time.Time
}

// Query filters listings; Search matches title or content.
type Query struct {
	Search string
	Offset int
	Limit  int
}
