package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kwucouncil/council-api/internal/domain/minutes"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
)

const minutesValidationMessage = "유효성 검사 실패"

var minutesMessages = map[string]string{
	"Title.required":     "title은(는) 필수입니다.",
	"FileURL.required":   "file_url은(는) 필수입니다.",
	"FileURL.url":        "file_url은(는) 유효한 URL 형식이어야 합니다.",
	"FileURL.http_url":   "file_url은(는) 유효한 HTTP/HTTPS URL이어야 합니다.",
	"Date.required":      "date은(는) 필수입니다.",
	"Date.date_format":   "date은(는) YYYY-MM-DD 형식이어야 합니다.",
	"Date.calendar_date": "date은(는) 유효한 날짜여야 합니다.",
}

type MinutesService struct {
	repo minutes.Repository
}

func NewMinutesService(repo minutes.Repository) *MinutesService {
	return &MinutesService{repo: repo}
}

type MinutesPage struct {
	Page  int
	Limit int
	Total int
	Items []minutes.Minutes
}

type CreateMinutesInput struct {
	Title   string `validate:"required"`
	FileURL string `validate:"required,url,http_url"`
	Date    string `validate:"required,date_format,calendar_date"`
}

func (s *MinutesService) List(ctx context.Context, page pagination.Page, search string) (MinutesPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MinutesService.List")
	defer span.End()

	items, total, err := s.repo.List(ctx, minutes.Query{
		Search: strings.TrimSpace(search),
		Offset: page.Offset(),
		Limit:  page.Limit(),
	})
	if err != nil {
		return MinutesPage{}, fmt.Errorf("list minutes: %w", err)
	}

	return MinutesPage{Page: page.Page, Limit: page.Size, Total: total, Items: items}, nil
}

func (s *MinutesService) Get(ctx context.Context, rawID string) (minutes.Minutes, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MinutesService.Get")
	defer span.End()

	id, ok := parseID(rawID)
	if !ok {
		return minutes.Minutes{}, UserError(ErrNotFound, "회의록을 찾을 수 없습니다.")
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return minutes.Minutes{}, fmt.Errorf("get minutes: %w", err)
	}
	if !exists {
		return minutes.Minutes{}, UserError(ErrNotFound, "회의록을 찾을 수 없습니다.")
	}
	return item, nil
}

func (s *MinutesService) Create(ctx context.Context, input CreateMinutesInput) (minutes.Minutes, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MinutesService.Create")
	defer span.End()

	input = CreateMinutesInput{
		Title:   strings.TrimSpace(input.Title),
		FileURL: strings.TrimSpace(input.FileURL),
		Date:    strings.TrimSpace(input.Date),
	}
	if errs := violations(ctx, input, minutesMessages); len(errs) > 0 {
		return minutes.Minutes{}, &ValidationError{Message: minutesValidationMessage, Errors: errs}
	}

	created, err := s.repo.Create(ctx, minutes.Minutes{
		Title:   input.Title,
		FileURL: input.FileURL,
		Date:    input.Date,
	})
	if err != nil {
		return minutes.Minutes{}, fmt.Errorf("create minutes: %w", err)
	}
	return created, nil
}
