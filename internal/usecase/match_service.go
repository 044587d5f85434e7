package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kwucouncil/council-api/internal/domain/match"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/kwucouncil/council-api/internal/platform/timefmt"
)

// MatchService serves the public schedule and results.
type MatchService struct {
	repo match.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewMatchService(repo match.Repository, loc *time.Location) *MatchService {
	if loc == nil {
		loc = timefmt.LoadLocation(timefmt.DefaultZone)
	}
	return &MatchService{repo: repo, loc: loc, now: time.Now}
}

type MatchListQuery struct {
	Date         string
	SportID      *int64
	SportName    string
	CollegeID    *int64
	DepartmentID *int64
	Played       *bool
	RainCanceled *bool
	Sort         []pagination.SortField
	Page         pagination.Page
}

type MatchPage struct {
	Page     int
	PageSize int
	Total    int
	Items    []match.View
}

type RecentResultsQuery struct {
	Limit   int
	SportID *int64
	DateTo  string
}

var defaultMatchSort = []pagination.SortField{
	{Column: "match_date", Direction: pagination.Asc},
	{Column: "period_start", Direction: pagination.Asc},
}

func (s *MatchService) List(ctx context.Context, q MatchListQuery) (MatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	if q.Date != "" && !isDate(q.Date) {
		return MatchPage{}, &ValidationError{Message: "유효성 오류", Errors: []string{"date은(는) YYYY-MM-DD 형식이어야 합니다."}}
	}

	sortFields := q.Sort
	if len(sortFields) == 0 {
		sortFields = defaultMatchSort
	}

	rows, total, err := s.repo.List(ctx, match.Filter{
		Date:         q.Date,
		SportID:      q.SportID,
		SportName:    q.SportName,
		CollegeID:    q.CollegeID,
		DepartmentID: q.DepartmentID,
		Played:       q.Played,
		RainCanceled: q.RainCanceled,
		Sort:         sortFields,
		Offset:       q.Page.Offset(),
		Limit:        q.Page.Limit(),
	})
	if err != nil {
		return MatchPage{}, fmt.Errorf("list matches: %w", err)
	}

	rows = match.Dedupe(rows)
	items := make([]match.View, 0, len(rows))
	for _, row := range rows {
		items = append(items, match.Normalize(row))
	}

	return MatchPage{Page: q.Page.Page, PageSize: q.Page.Size, Total: total, Items: items}, nil
}

func (s *MatchService) Get(ctx context.Context, rawID string) (match.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	id, ok := parseID(rawID)
	if !ok {
		return match.View{}, UserError(ErrNotFound, matchNotFoundMessage)
	}
	row, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return match.View{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.View{}, UserError(ErrNotFound, matchNotFoundMessage)
	}
	return match.Normalize(row), nil
}

// RecentResults lists played matches up to DateTo, newest first. DateTo
// defaults to today in the service zone.
func (s *MatchService) RecentResults(ctx context.Context, q RecentResultsQuery) ([]match.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecentResults")
	defer span.End()

	dateTo := q.DateTo
	if dateTo == "" {
		dateTo = timefmt.Today(s.now(), s.loc)
	}
	if !isDate(dateTo) {
		return nil, &ValidationError{Message: "유효성 오류", Errors: []string{"date_to은(는) YYYY-MM-DD 형식이어야 합니다."}}
	}

	played := true
	rows, _, err := s.repo.List(ctx, match.Filter{
		DateTo:  dateTo,
		SportID: q.SportID,
		Played:  &played,
		Sort: []pagination.SortField{
			{Column: "match_date", Direction: pagination.Desc},
			{Column: "period_start", Direction: pagination.Desc},
			{Column: "updated_at", Direction: pagination.Desc},
		},
		Limit: q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list recent results: %w", err)
	}

	rows = match.Dedupe(rows)
	items := make([]match.View, 0, len(rows))
	for _, row := range rows {
		items = append(items, match.Normalize(row))
	}
	return items, nil
}

func isDate(v string) bool {
	_, err := time.Parse(time.DateOnly, v)
	return err == nil
}
