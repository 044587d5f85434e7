package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/kwucouncil/council-api/internal/domain/match"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
)

const (
	matchNotFoundMessage   = "경기를 찾을 수 없습니다."
	slotNotFoundMessage    = "해당 날짜와 시간의 경기를 찾을 수 없습니다."
	teamsNotFoundMessage   = "해당 팀들의 경기를 찾을 수 없습니다."
	scoreNotNumberMessage  = "점수는 숫자여야 합니다."
	scoreNegativeMessage   = "점수는 0 이상이어야 합니다."
	scoreNotIntegerMessage = "점수는 정수여야 합니다."
	missingSideMessage     = "홈팀 또는 어웨이팀 정보가 없습니다."
	scoresUpdatedMessage   = "점수가 성공적으로 업데이트되었습니다."
	statusUpdatedMessage   = "경기 상태가 성공적으로 업데이트되었습니다."
)

// ScoreManagementService backs the admin scoring screens.
type ScoreManagementService struct {
	repo match.Repository
}

func NewScoreManagementService(repo match.Repository) *ScoreManagementService {
	return &ScoreManagementService{repo: repo}
}

type AdminMatchQuery struct {
	Date    string
	SportID *int64
	Played  *bool
	Page    pagination.Page
}

type AdminMatchPage struct {
	Page     int
	PageSize int
	Total    int
	Matches  []match.Match
}

// ScoreInput carries raw decoded JSON scores so type errors can be reported.
type ScoreInput struct {
	HomeScore    any
	AwayScore    any
	IsPlayed     *bool
	AdminNote    *string
	AdminNoteSet bool
}

type ScoreResult struct {
	Message   string
	MatchID   int64
	HomeScore int
	AwayScore int
	IsPlayed  bool
}

type StatusInput struct {
	IsPlayed     *bool
	RainCanceled *bool
	AdminNote    *string
	AdminNoteSet bool
}

type StatusResult struct {
	Message      string
	MatchID      int64
	IsPlayed     bool
	RainCanceled bool
	AdminNote    *string
}

func (s *ScoreManagementService) List(ctx context.Context, q AdminMatchQuery) (AdminMatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreManagementService.List")
	defer span.End()

	if q.Date != "" && !isDate(q.Date) {
		return AdminMatchPage{}, &ValidationError{Message: "유효성 오류", Errors: []string{"date은(는) YYYY-MM-DD 형식이어야 합니다."}}
	}

	rows, total, err := s.repo.List(ctx, match.Filter{
		Date:    q.Date,
		SportID: q.SportID,
		Played:  q.Played,
		Sort: []pagination.SortField{
			{Column: "match_date", Direction: pagination.Desc},
			{Column: "period_start", Direction: pagination.Desc},
		},
		Offset: q.Page.Offset(),
		Limit:  q.Page.Limit(),
	})
	if err != nil {
		return AdminMatchPage{}, fmt.Errorf("list admin matches: %w", err)
	}

	return AdminMatchPage{Page: q.Page.Page, PageSize: q.Page.Size, Total: total, Matches: match.Dedupe(rows)}, nil
}

func (s *ScoreManagementService) Get(ctx context.Context, rawID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreManagementService.Get")
	defer span.End()

	id, err := s.resolveMatchID(ctx, rawID)
	if err != nil {
		return match.Match{}, err
	}
	return s.load(ctx, id)
}

// UpdateScores validates the scores before touching storage, then writes both
// sides and the match flags in one transaction.
func (s *ScoreManagementService) UpdateScores(ctx context.Context, rawID string, input ScoreInput) (ScoreResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreManagementService.UpdateScores")
	defer span.End()

	home, away, err := validateScores(input.HomeScore, input.AwayScore)
	if err != nil {
		return ScoreResult{}, err
	}

	id, err := s.resolveMatchID(ctx, rawID)
	if err != nil {
		return ScoreResult{}, err
	}
	current, err := s.load(ctx, id)
	if err != nil {
		return ScoreResult{}, err
	}

	homeSide, okHome := current.Participant(match.SideHome)
	awaySide, okAway := current.Participant(match.SideAway)
	if !okHome || !okAway {
		return ScoreResult{}, UserError(ErrInvalidInput, missingSideMessage)
	}

	if err := s.repo.UpdateScores(ctx, match.ScoreUpdate{
		MatchID:             id,
		HomeParticipationID: homeSide.ID,
		AwayParticipationID: awaySide.ID,
		HomeScore:           home,
		AwayScore:           away,
		IsPlayed:            input.IsPlayed,
		AdminNote:           input.AdminNote,
		AdminNoteSet:        input.AdminNoteSet,
	}); err != nil {
		return ScoreResult{}, fmt.Errorf("update match scores: %w", err)
	}

	played := current.IsPlayed
	if input.IsPlayed != nil {
		played = *input.IsPlayed
	}
	return ScoreResult{
		Message:   scoresUpdatedMessage,
		MatchID:   id,
		HomeScore: home,
		AwayScore: away,
		IsPlayed:  played,
	}, nil
}

func (s *ScoreManagementService) UpdateStatus(ctx context.Context, rawID string, input StatusInput) (StatusResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreManagementService.UpdateStatus")
	defer span.End()

	id, err := s.resolveMatchID(ctx, rawID)
	if err != nil {
		return StatusResult{}, err
	}

	updated, found, err := s.repo.UpdateStatus(ctx, match.StatusUpdate{
		MatchID:      id,
		IsPlayed:     input.IsPlayed,
		RainCanceled: input.RainCanceled,
		AdminNote:    input.AdminNote,
		AdminNoteSet: input.AdminNoteSet,
	})
	if err != nil {
		return StatusResult{}, fmt.Errorf("update match status: %w", err)
	}
	if !found {
		return StatusResult{}, UserError(ErrNotFound, matchNotFoundMessage)
	}

	return StatusResult{
		Message:      statusUpdatedMessage,
		MatchID:      updated.ID,
		IsPlayed:     updated.IsPlayed,
		RainCanceled: updated.RainCanceled,
		AdminNote:    updated.AdminNote,
	}, nil
}

// resolveMatchID accepts a positive numeric id or a composite
// date_period_home_away key.
func (s *ScoreManagementService) resolveMatchID(ctx context.Context, raw string) (int64, error) {
	if !match.LooksComposite(raw) {
		id, ok := parseID(raw)
		if !ok {
			return 0, UserError(ErrNotFound, matchNotFoundMessage)
		}
		return id, nil
	}

	key, ok := match.ParseCompositeKey(raw)
	if !ok {
		return 0, UserError(ErrNotFound, matchNotFoundMessage)
	}
	slot, err := s.repo.ListBySlot(ctx, key.Date, key.PeriodStart)
	if err != nil {
		return 0, fmt.Errorf("list matches for key %s: %w", key.String(), err)
	}
	if len(slot) == 0 {
		return 0, UserError(ErrNotFound, slotNotFoundMessage)
	}
	found, ok := key.Select(slot)
	if !ok {
		return 0, UserError(ErrNotFound, teamsNotFoundMessage)
	}
	return found.ID, nil
}

func (s *ScoreManagementService) load(ctx context.Context, id int64) (match.Match, error) {
	m, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, UserError(ErrNotFound, matchNotFoundMessage)
	}
	return m, nil
}

func validateScores(rawHome, rawAway any) (int, int, error) {
	home, okHome := toNumber(rawHome)
	away, okAway := toNumber(rawAway)
	if !okHome || !okAway {
		return 0, 0, UserError(ErrInvalidInput, scoreNotNumberMessage)
	}
	if home < 0 || away < 0 {
		return 0, 0, UserError(ErrInvalidInput, scoreNegativeMessage)
	}
	if home != math.Trunc(home) || away != math.Trunc(away) || home > math.MaxInt32 || away > math.MaxInt32 {
		return 0, 0, UserError(ErrInvalidInput, scoreNotIntegerMessage)
	}
	return int(home), int(away), nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
