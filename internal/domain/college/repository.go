package college

import "context"

type Repository interface {
	List(ctx context.Context) ([]College, error)
}
