package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kwucouncil/council-api/internal/domain/match"
	matchmock "github.com/kwucouncil/council-api/internal/mocks/domain/match"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/stretchr/testify/mock"
)

func TestMatchService_List_DefaultSortAndNormalize(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	repo.
		On("List", mock.Anything, mock.MatchedBy(func(f match.Filter) bool {
			return len(f.Sort) == 2 && f.Sort[0].Column == "match_date" && f.Sort[0].Direction == pagination.Asc &&
				f.Offset == 0 && f.Limit == 20
		})).
		Return([]match.Match{scoredMatch(3, false), scoredMatch(3, false)}, 1, nil).
		Once()

	service := NewMatchService(repo, seoul)
	got, err := service.List(context.Background(), MatchListQuery{Page: pagination.Normalize("", "", 20, pagination.MatchCap)})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("duplicate rows must collapse, got %d", len(got.Items))
	}
	if got.Items[0].Team1.Name != "전자공학과" || got.Items[0].Team2.Name != "경영학부" {
		t.Fatalf("unexpected teams: %+v", got.Items[0])
	}
}

func TestMatchService_List_UserSortReplacesDefault(t *testing.T) {
	t.Parallel()

	userSort := pagination.ParseSort("start", "desc", pagination.MatchSortAliases)
	repo := matchmock.NewRepository(t)
	repo.
		On("List", mock.Anything, mock.MatchedBy(func(f match.Filter) bool {
			return len(f.Sort) == 1 && f.Sort[0].Column == "period_start" && f.Sort[0].Direction == pagination.Desc
		})).
		Return([]match.Match{}, 0, nil).
		Once()

	service := NewMatchService(repo, seoul)
	if _, err := service.List(context.Background(), MatchListQuery{Sort: userSort, Page: pagination.Normalize("1", "10", 20, pagination.MatchCap)}); err != nil {
		t.Fatalf("list matches: %v", err)
	}
}

func TestMatchService_List_InvalidDate(t *testing.T) {
	t.Parallel()

	service := NewMatchService(matchmock.NewRepository(t), seoul)
	_, err := service.List(context.Background(), MatchListQuery{Date: "2025-13-01"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Get_NotFound(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	repo.On("GetByID", mock.Anything, int64(404)).Return(match.Match{}, false, nil).Once()

	service := NewMatchService(repo, seoul)
	for _, raw := range []string{"404", "abc", "-1"} {
		_, err := service.Get(context.Background(), raw)
		if !errors.Is(err, ErrNotFound) || UserMessage(err) != matchNotFoundMessage {
			t.Fatalf("get %q: unexpected error %v", raw, err)
		}
	}
}

func TestMatchService_RecentResults_DefaultsToToday(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	repo.
		On("List", mock.Anything, mock.MatchedBy(func(f match.Filter) bool {
			return f.DateTo == "2025-05-21" && f.Played != nil && *f.Played && f.Limit == 5 && len(f.Sort) == 3
		})).
		Return([]match.Match{scoredMatch(9, true)}, 1, nil).
		Once()

	service := NewMatchService(repo, seoul)
	service.now = func() time.Time { return time.Date(2025, 5, 20, 16, 0, 0, 0, time.UTC) }

	got, err := service.RecentResults(context.Background(), RecentResultsQuery{Limit: 5})
	if err != nil {
		t.Fatalf("recent results: %v", err)
	}
	if len(got) != 1 || !got[0].Result {
		t.Fatalf("unexpected results: %+v", got)
	}
}
