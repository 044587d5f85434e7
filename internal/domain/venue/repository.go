package venue

import "context"

type Repository interface {
	List(ctx context.Context) ([]Venue, error)
}
