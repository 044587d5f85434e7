package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/domain/roster"
	"github.com/kwucouncil/council-api/internal/domain/storage"
	rostermock "github.com/kwucouncil/council-api/internal/mocks/domain/roster"
	storagemock "github.com/kwucouncil/council-api/internal/mocks/domain/storage"
	"github.com/kwucouncil/council-api/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

func TestUploadService_Upload(t *testing.T) {
	t.Parallel()

	uploader := storagemock.NewUploader(t)
	uploader.
		On("Upload", mock.Anything, mock.MatchedBy(func(obj storage.Object) bool {
			return obj.Key == "images/1716184800000_poster_v2.png" && obj.ContentType == "image/png"
		})).
		Return("https://cdn.example.com/announcements/images/1716184800000_poster_v2.png", nil).
		Once()

	service := NewUploadService(uploader)
	service.now = func() time.Time { return time.UnixMilli(1716184800000) }

	got, err := service.Upload(context.Background(), UploadFile{
		Name:        "../poster v2.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if got.Path != "images/1716184800000_poster_v2.png" {
		t.Fatalf("unexpected path: %s", got.Path)
	}
	if !strings.HasSuffix(got.URL, got.Path) {
		t.Fatalf("unexpected url: %s", got.URL)
	}
}

func TestUploadService_Upload_Failures(t *testing.T) {
	t.Parallel()

	service := NewUploadService(storagemock.NewUploader(t))
	_, err := service.Upload(context.Background(), UploadFile{})
	if !errors.Is(err, ErrInvalidInput) || UserMessage(err) != uploadMissingFileMessage {
		t.Fatalf("missing file: unexpected error %v", err)
	}

	uploader := storagemock.NewUploader(t)
	uploader.On("Upload", mock.Anything, mock.Anything).Return("", resilience.ErrCircuitOpen).Once()
	service = NewUploadService(uploader)
	_, err = service.Upload(context.Background(), UploadFile{Name: "a.png", Body: strings.NewReader("x")})
	if !crerr.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("open breaker must surface as dependency unavailable, got %v", err)
	}
	if UserMessage(err) != uploadFailedMessage {
		t.Fatalf("unexpected message: %q", UserMessage(err))
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "photo.JPG", want: "photo.JPG"},
		{in: `C:\tmp\a b.png`, want: "a_b.png"},
		{in: "../../etc/passwd", want: "passwd"},
		{in: "", want: "file"},
		{in: "공지.png", want: "__.png"},
	}
	for _, tc := range tests {
		if got := sanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("sanitize %q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestRosterService_Verify(t *testing.T) {
	t.Parallel()

	repo := rostermock.NewRepository(t)
	repo.On("FindFreshman", mock.Anything, "홍길동", "2006-03-01").Return(roster.Freshman{IsForm: true, IsCost: true}, true, nil).Once()
	repo.On("FindStudent", mock.Anything, "홍길동", "2021123456").Return(roster.Student{IsForm: true}, true, nil).Once()
	repo.On("FindStudent", mock.Anything, "임꺽정", "2020000000").Return(roster.Student{}, false, nil).Once()
	repo.On("FindFreshman", mock.Anything, "임꺽정", "2006-01-01").Return(roster.Freshman{}, false, errors.New("read roster")).Once()

	service := NewRosterService(repo)
	ctx := context.Background()

	got, err := service.Verify(ctx, VerifyInput{Name: "홍길동", BirthDate: "2006-03-01", StudentID: "2021123456"})
	if err != nil || !got.Complete() {
		t.Fatalf("freshman lookup: got %+v err %v", got, err)
	}

	got, err = service.Verify(ctx, VerifyInput{Name: " 홍길동 ", StudentID: "2021123456"})
	if err != nil || !got.IsForm || got.Complete() {
		t.Fatalf("student lookup: got %+v err %v", got, err)
	}

	_, err = service.Verify(ctx, VerifyInput{Name: "임꺽정", StudentID: "2020000000"})
	if !errors.Is(err, ErrNotFound) || UserMessage(err) != studentNotFoundMessage {
		t.Fatalf("student miss: %v", err)
	}

	_, err = service.Verify(ctx, VerifyInput{Name: "홍길동"})
	if !errors.Is(err, ErrInvalidInput) || UserMessage(err) != rosterMissingFieldsMessage {
		t.Fatalf("missing fields: %v", err)
	}

	_, err = service.Verify(ctx, VerifyInput{Name: "임꺽정", BirthDate: "2006-01-01"})
	if UserMessage(err) != rosterLoadFailedMessage {
		t.Fatalf("load failure: %v", err)
	}
}
