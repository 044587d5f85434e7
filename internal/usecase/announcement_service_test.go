package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kwucouncil/council-api/internal/domain/announcement"
	"github.com/kwucouncil/council-api/internal/domain/minutes"
	announcementmock "github.com/kwucouncil/council-api/internal/mocks/domain/announcement"
	minutesmock "github.com/kwucouncil/council-api/internal/mocks/domain/minutes"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/stretchr/testify/mock"
)

func TestAnnouncementService_List_PassesSearchAndPaging(t *testing.T) {
	t.Parallel()

	repo := announcementmock.NewRepository(t)
	repo.
		On("List", mock.Anything, announcement.Query{Search: "축제", Offset: 10, Limit: 10}).
		Return([]announcement.Announcement{{ID: 3, Title: "축제 안내"}}, 11, nil).
		Once()

	service := NewAnnouncementService(repo, seoul)
	got, err := service.List(context.Background(), pagination.Normalize("2", "10", 10, pagination.ListCap), " 축제 ")
	if err != nil {
		t.Fatalf("list announcements: %v", err)
	}
	if got.Page != 2 || got.Limit != 10 || got.Total != 11 || len(got.Items) != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestAnnouncementService_Create(t *testing.T) {
	t.Parallel()

	repo := announcementmock.NewRepository(t)
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(a announcement.Announcement) bool {
			return a.Title == "공지" && a.PublishedAt.Equal(time.Date(2025, 5, 19, 15, 0, 0, 0, time.UTC))
		})).
		Return(announcement.Announcement{ID: 1, Title: "공지"}, nil).
		Once()

	service := NewAnnouncementService(repo, seoul)
	got, err := service.Create(context.Background(), CreateAnnouncementInput{
		Title:       "공지",
		Content:     "내용",
		Image:       "https://example.com/a.png",
		PublishedAt: "2025-05-20",
	})
	if err != nil {
		t.Fatalf("create announcement: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}

func TestAnnouncementService_Create_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	service := NewAnnouncementService(announcementmock.NewRepository(t), seoul)
	_, err := service.Create(context.Background(), CreateAnnouncementInput{PublishedAt: "yesterday"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := []string{
		"title은(는) 필수입니다.",
		"content는(은) 필수입니다.",
		"image는(은) 필수(URL)입니다.",
		"published_at 형식이 올바르지 않습니다.",
	}
	if len(verr.Errors) != len(want) {
		t.Fatalf("unexpected errors: %v", verr.Errors)
	}
	for i := range want {
		if verr.Errors[i] != want[i] {
			t.Fatalf("error %d: got %q want %q", i, verr.Errors[i], want[i])
		}
	}
}

func TestMinutesService_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input CreateMinutesInput
		want  string
	}{
		{
			name:  "non http url",
			input: CreateMinutesInput{Title: "회의", FileURL: "ftp://example.com/a.pdf", Date: "2025-05-20"},
			want:  "file_url은(는) 유효한 HTTP/HTTPS URL이어야 합니다.",
		},
		{
			name:  "bad date format",
			input: CreateMinutesInput{Title: "회의", FileURL: "https://example.com/a.pdf", Date: "2025/05/20"},
			want:  "date은(는) YYYY-MM-DD 형식이어야 합니다.",
		},
		{
			name:  "impossible date",
			input: CreateMinutesInput{Title: "회의", FileURL: "https://example.com/a.pdf", Date: "2025-02-30"},
			want:  "date은(는) 유효한 날짜여야 합니다.",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewMinutesService(minutesmock.NewRepository(t))
			_, err := service.Create(context.Background(), tc.input)
			var verr *ValidationError
			if !errors.As(err, &verr) || len(verr.Errors) != 1 || verr.Errors[0] != tc.want {
				t.Fatalf("unexpected error: %v", err)
			}
			if verr.Message != "유효성 검사 실패" {
				t.Fatalf("unexpected message: %q", verr.Message)
			}
		})
	}
}

func TestMinutesService_GetAndCreate(t *testing.T) {
	t.Parallel()

	repo := minutesmock.NewRepository(t)
	repo.On("GetByID", mock.Anything, int64(2)).Return(minutes.Minutes{}, false, nil).Once()
	repo.
		On("Create", mock.Anything, minutes.Minutes{Title: "정기회의", FileURL: "https://example.com/m.pdf", Date: "2025-05-20"}).
		Return(minutes.Minutes{ID: 5, Title: "정기회의"}, nil).
		Once()

	service := NewMinutesService(repo)
	if _, err := service.Get(context.Background(), "2"); UserMessage(err) != "회의록을 찾을 수 없습니다." {
		t.Fatalf("unexpected get error: %v", err)
	}

	got, err := service.Create(context.Background(), CreateMinutesInput{Title: " 정기회의 ", FileURL: "https://example.com/m.pdf", Date: "2025-05-20"})
	if err != nil {
		t.Fatalf("create minutes: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}
