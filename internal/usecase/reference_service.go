package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kwucouncil/council-api/internal/domain/college"
	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/sport"
	"github.com/kwucouncil/council-api/internal/domain/venue"
)

// ReferenceService lists colleges, departments, sports and venues.
type ReferenceService struct {
	colleges    college.Repository
	departments department.Repository
	sports      sport.Repository
	venues      venue.Repository
}

func NewReferenceService(
	colleges college.Repository,
	departments department.Repository,
	sports sport.Repository,
	venues venue.Repository,
) *ReferenceService {
	return &ReferenceService{
		colleges:    colleges,
		departments: departments,
		sports:      sports,
		venues:      venues,
	}
}

func (s *ReferenceService) Colleges(ctx context.Context) ([]college.College, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.Colleges")
	defer span.End()

	items, err := s.colleges.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}
	return items, nil
}

func (s *ReferenceService) Departments(ctx context.Context, filter department.Filter) ([]department.Department, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.Departments")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	items, err := s.departments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return items, nil
}

func (s *ReferenceService) Sports(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.Sports")
	defer span.End()

	items, err := s.sports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return items, nil
}

func (s *ReferenceService) Venues(ctx context.Context) ([]venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.Venues")
	defer span.End()

	items, err := s.venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return items, nil
}

func (s *ReferenceService) SportVenues() []venue.SportVenue {
	return venue.SportVenues()
}
