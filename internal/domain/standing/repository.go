package standing

import "context"

type FutsalRepository interface {
	ListFutsal(ctx context.Context) ([]FutsalRow, error)
}
