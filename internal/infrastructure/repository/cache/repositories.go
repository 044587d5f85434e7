package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/kwucouncil/council-api/internal/domain/college"
	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/sport"
	"github.com/kwucouncil/council-api/internal/domain/venue"
	basecache "github.com/kwucouncil/council-api/internal/platform/cache"
)

// Reference tables change only through manual admin edits, so they are
// served from the TTL store. Slices are copied on the way in and out.

type CollegeRepository struct {
	next  college.Repository
	cache *basecache.Store
}

func NewCollegeRepository(next college.Repository, cache *basecache.Store) *CollegeRepository {
	return &CollegeRepository{next: next, cache: cache}
}

func (r *CollegeRepository) List(ctx context.Context) ([]college.College, error) {
	items, err := basecache.Load(ctx, r.cache, "college:list", func(ctx context.Context) ([]college.College, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]college.College(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]college.College(nil), items...), nil
}

type SportRepository struct {
	next  sport.Repository
	cache *basecache.Store
}

func NewSportRepository(next sport.Repository, cache *basecache.Store) *SportRepository {
	return &SportRepository{next: next, cache: cache}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	items, err := basecache.Load(ctx, r.cache, "sport:list", func(ctx context.Context) ([]sport.Sport, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]sport.Sport(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]sport.Sport(nil), items...), nil
}

type VenueRepository struct {
	next  venue.Repository
	cache *basecache.Store
}

func NewVenueRepository(next venue.Repository, cache *basecache.Store) *VenueRepository {
	return &VenueRepository{next: next, cache: cache}
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	items, err := basecache.Load(ctx, r.cache, "venue:list", func(ctx context.Context) ([]venue.Venue, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]venue.Venue(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]venue.Venue(nil), items...), nil
}

// DepartmentRepository caches listings per filter. Name lookups pass through;
// the resolver keeps its own memo.
type DepartmentRepository struct {
	next  department.Repository
	cache *basecache.Store
}

func NewDepartmentRepository(next department.Repository, cache *basecache.Store) *DepartmentRepository {
	return &DepartmentRepository{next: next, cache: cache}
}

func (r *DepartmentRepository) List(ctx context.Context, filter department.Filter) ([]department.Department, error) {
	items, err := basecache.Load(ctx, r.cache, departmentListKey(filter), func(ctx context.Context) ([]department.Department, error) {
		items, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]department.Department(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]department.Department(nil), items...), nil
}

func (r *DepartmentRepository) FindByExactName(ctx context.Context, name string) (department.Department, bool, error) {
	return r.next.FindByExactName(ctx, name)
}

func (r *DepartmentRepository) FindByNameFragment(ctx context.Context, fragment string) (department.Department, bool, error) {
	return r.next.FindByNameFragment(ctx, fragment)
}

// Invalidate drops every cached department listing.
func (r *DepartmentRepository) Invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, "department:list:")
}

func departmentListKey(filter department.Filter) string {
	college := "*"
	if filter.CollegeID != nil {
		college = strconv.FormatInt(*filter.CollegeID, 10)
	}
	return "department:list:" + college + ":" + strings.ToLower(strings.TrimSpace(filter.Search))
}
