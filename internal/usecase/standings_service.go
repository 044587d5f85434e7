package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/match"
	"github.com/kwucouncil/council-api/internal/domain/standing"
	"github.com/kwucouncil/council-api/internal/platform/timefmt"
	"github.com/sourcegraph/conc/pool"
)

// StandingsService derives tables on every read; ranks are never stored.
type StandingsService struct {
	departments department.Repository
	matches     match.Repository
	futsal      standing.FutsalRepository
	mode        standing.Mode
	loc         *time.Location
}

func NewStandingsService(
	departments department.Repository,
	matches match.Repository,
	futsal standing.FutsalRepository,
	mode standing.Mode,
	loc *time.Location,
) *StandingsService {
	if !mode.Valid() {
		mode = standing.ModeStored
	}
	if loc == nil {
		loc = timefmt.LoadLocation(timefmt.DefaultZone)
	}
	return &StandingsService{
		departments: departments,
		matches:     matches,
		futsal:      futsal,
		mode:        mode,
		loc:         loc,
	}
}

type Standings struct {
	SportID   *int64
	UpdatedAt *string
	Entries   []standing.Entry
}

type FutsalStandings struct {
	Groups     map[string][]standing.FutsalRow
	TotalTeams int
}

func (s *StandingsService) Mode() standing.Mode {
	return s.mode
}

// Overall builds the department table, optionally scoped to one sport. The
// reads are independent and run concurrently.
func (s *StandingsService) Overall(ctx context.Context, sportID *int64) (Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Overall")
	defer span.End()

	var (
		departments    []department.Department
		members        []int64
		participations []match.Participation
		latest         *time.Time
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.departments.List(ctx, department.Filter{})
		if err != nil {
			return fmt.Errorf("list departments: %w", err)
		}
		departments = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		t, err := s.matches.LatestUpdatedAt(ctx, sportID)
		if err != nil {
			return fmt.Errorf("latest match update: %w", err)
		}
		latest = t
		return nil
	})
	switch {
	case s.mode == standing.ModeAggregate:
		p.Go(func(ctx context.Context) error {
			rows, err := s.matches.ListPlayedParticipations(ctx, sportID)
			if err != nil {
				return fmt.Errorf("list played participations: %w", err)
			}
			participations = rows
			return nil
		})
	case sportID != nil:
		p.Go(func(ctx context.Context) error {
			ids, err := s.matches.DepartmentIDsBySport(ctx, *sportID)
			if err != nil {
				return fmt.Errorf("list sport departments: %w", err)
			}
			members = ids
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Standings{}, err
	}

	var entries []standing.Entry
	if s.mode == standing.ModeAggregate {
		entries = standing.Aggregate(participations, departments)
	} else {
		if sportID != nil {
			departments = onlyMembers(departments, members)
		}
		entries = standing.FromDepartments(departments)
	}

	return Standings{
		SportID:   sportID,
		UpdatedAt: timefmt.FormatAsOf(latest, s.loc),
		Entries:   standing.Rank(entries),
	}, nil
}

func (s *StandingsService) Futsal(ctx context.Context) (FutsalStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Futsal")
	defer span.End()

	rows, err := s.futsal.ListFutsal(ctx)
	if err != nil {
		return FutsalStandings{}, fmt.Errorf("list futsal standings: %w", err)
	}

	groups := standing.RankGroups(rows)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	return FutsalStandings{Groups: groups, TotalTeams: total}, nil
}

func onlyMembers(departments []department.Department, ids []int64) []department.Department {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]department.Department, 0, len(ids))
	for _, d := range departments {
		if _, ok := set[d.ID]; ok {
			out = append(out, d)
		}
	}
	return out
}
