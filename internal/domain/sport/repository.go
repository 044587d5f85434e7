package sport

import "context"

type Repository interface {
	List(ctx context.Context) ([]Sport, error)
}
