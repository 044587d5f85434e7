package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/kwucouncil/council-api/internal/domain/department"
)

const (
	defaultResolverCacheSize = 256
	defaultResolverCacheTTL  = 5 * time.Minute
)

// DepartmentResolver maps a user-supplied token to a department id.
// Precedence is numeric id, then exact name, then name fragment.
type DepartmentResolver struct {
	repo department.Repository
	memo *expirable.LRU[string, int64]
}

func NewDepartmentResolver(repo department.Repository, size int, ttl time.Duration) *DepartmentResolver {
	if size <= 0 {
		size = defaultResolverCacheSize
	}
	if ttl <= 0 {
		ttl = defaultResolverCacheTTL
	}
	return &DepartmentResolver{
		repo: repo,
		memo: expirable.NewLRU[string, int64](size, nil, ttl),
	}
}

// Resolve returns nil for a blank token. A numeric token is trusted as an id
// without an existence check. Unknown names fail with ErrReferenceNotFound.
func (r *DepartmentResolver) Resolve(ctx context.Context, token string) (*int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepartmentResolver.Resolve")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	if id, ok := numericID(token); ok {
		return &id, nil
	}

	key := strings.ToLower(token)
	if id, ok := r.memo.Get(key); ok {
		return &id, nil
	}

	found, ok, err := r.repo.FindByExactName(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find department by exact name: %w", err)
	}
	if !ok {
		found, ok, err = r.repo.FindByNameFragment(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("find department by name fragment: %w", err)
		}
	}
	if !ok {
		return nil, UserError(ErrReferenceNotFound, fmt.Sprintf("학과를 찾을 수 없습니다: %q", token))
	}

	r.memo.Add(key, found.ID)
	id := found.ID
	return &id, nil
}

// Forget drops memoised resolutions, e.g. after reference data changes.
func (r *DepartmentResolver) Forget() {
	r.memo.Purge()
}

func numericID(token string) (int64, bool) {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
