package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kwucouncil/council-api/internal/domain/announcement"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
)

const announcementValidationMessage = "유효성 오류"

var announcementMessages = map[string]string{
	"Title.required":        "title은(는) 필수입니다.",
	"Content.required":      "content는(은) 필수입니다.",
	"Image.required":        "image는(은) 필수(URL)입니다.",
	"PublishedAt.timestamp": "published_at 형식이 올바르지 않습니다.",
}

type AnnouncementService struct {
	repo announcement.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewAnnouncementService(repo announcement.Repository, loc *time.Location) *AnnouncementService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnnouncementService{repo: repo, loc: loc, now: time.Now}
}

type AnnouncementPage struct {
	Page  int
	Limit int
	Total int
	Items []announcement.Announcement
}

type CreateAnnouncementInput struct {
	Title       string `validate:"required"`
	Content     string `validate:"required"`
	Image       string `validate:"required"`
	PublishedAt string `validate:"omitempty,timestamp"`
}

func (s *AnnouncementService) List(ctx context.Context, page pagination.Page, search string) (AnnouncementPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnnouncementService.List")
	defer span.End()

	items, total, err := s.repo.List(ctx, announcement.Query{
		Search: strings.TrimSpace(search),
		Offset: page.Offset(),
		Limit:  page.Limit(),
	})
	if err != nil {
		return AnnouncementPage{}, fmt.Errorf("list announcements: %w", err)
	}

	return AnnouncementPage{Page: page.Page, Limit: page.Size, Total: total, Items: items}, nil
}

func (s *AnnouncementService) Get(ctx context.Context, rawID string) (announcement.Announcement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnnouncementService.Get")
	defer span.End()

	id, ok := parseID(rawID)
	if !ok {
		return announcement.Announcement{}, UserError(ErrNotFound, "존재하지 않습니다.")
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("get announcement: %w", err)
	}
	if !exists {
		return announcement.Announcement{}, UserError(ErrNotFound, "존재하지 않습니다.")
	}
	return item, nil
}

func (s *AnnouncementService) Create(ctx context.Context, input CreateAnnouncementInput) (announcement.Announcement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnnouncementService.Create")
	defer span.End()

	input = CreateAnnouncementInput{
		Title:       strings.TrimSpace(input.Title),
		Content:     strings.TrimSpace(input.Content),
		Image:       strings.TrimSpace(input.Image),
		PublishedAt: strings.TrimSpace(input.PublishedAt),
	}
	if errs := violations(ctx, input, announcementMessages); len(errs) > 0 {
		return announcement.Announcement{}, &ValidationError{Message: announcementValidationMessage, Errors: errs}
	}

	publishedAt := s.now()
	if input.PublishedAt != "" {
		publishedAt, _ = parseTimestamp(input.PublishedAt, s.loc)
	}

	created, err := s.repo.Create(ctx, announcement.Announcement{
		Title:       input.Title,
		Content:     input.Content,
		Image:       input.Image,
		PublishedAt: publishedAt.UTC(),
	})
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("create announcement: %w", err)
	}
	return created, nil
}
