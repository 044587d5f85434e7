package minutes

import "context"

type Repository interface {
	List(ctx context.Context, q Query) ([]Minutes, int, error)
	GetByID(ctx context.Context, id int64) (Minutes, bool, error)
	Create(ctx context.Context, m Minutes) (Minutes, error)
}
