package announcement

import "context"

type Repository interface {
	List(ctx context.Context, q Query) ([]Announcement, int, error)
	GetByID(ctx context.Context, id int64) (Announcement, bool, error)
	Create(ctx context.Context, a Announcement) (Announcement, error)
}
