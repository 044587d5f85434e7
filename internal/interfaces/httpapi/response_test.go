package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/usecase"
)

func TestWriteError_StatusAndBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantReason  string
		wantMessage string
	}{
		{
			name:        "user not found",
			err:         usecase.UserError(usecase.ErrNotFound, "경기를 찾을 수 없습니다."),
			wantStatus:  http.StatusNotFound,
			wantReason:  "notFound",
			wantMessage: "경기를 찾을 수 없습니다.",
		},
		{
			name:        "wrapped user error keeps hint",
			err:         fmt.Errorf("get match: %w", usecase.UserError(usecase.ErrConflict, "이미 제출된 학번입니다.")),
			wantStatus:  http.StatusConflict,
			wantReason:  "conflict",
			wantMessage: "이미 제출된 학번입니다.",
		},
		{
			name:        "storage mark without hint",
			err:         crerr.Wrap(crerr.Mark(errors.New("pq: duplicate key"), usecase.ErrConflict), "insert"),
			wantStatus:  http.StatusConflict,
			wantReason:  "conflict",
			wantMessage: "이미 존재하는 데이터입니다.",
		},
		{
			name:        "reference miss",
			err:         usecase.UserError(usecase.ErrReferenceNotFound, `학과를 찾을 수 없습니다: "없는과"`),
			wantStatus:  http.StatusBadRequest,
			wantReason:  "referenceNotFound",
			wantMessage: `학과를 찾을 수 없습니다: "없는과"`,
		},
		{
			name:        "dependency unavailable",
			err:         crerr.Mark(errors.New("circuit open"), usecase.ErrDependencyUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantReason:  "dependencyUnavailable",
			wantMessage: "일시적으로 서비스를 사용할 수 없습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["reason"] != tt.wantReason || body["message"] != tt.wantMessage {
				t.Fatalf("unexpected body: %v", body)
			}
			if _, ok := body["error"]; ok {
				t.Fatalf("non-500 responses must not expose upstream errors: %v", body)
			}
		})
	}
}

func TestWriteError_ValidationListsErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, &usecase.ValidationError{
		Message: "유효성 오류",
		Errors:  []string{"name은(는) 필수입니다.", "phone 형식이 올바르지 않습니다."},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "유효성 오류" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 2 {
		t.Fatalf("unexpected errors: %v", body["errors"])
	}
}

func TestWriteError_InternalExposesUpstreamMessage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("list matches: %w", errors.New("connection refused")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "서버 오류" || body["error"] != "connection refused" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestWriteError_InternalWithHint(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, crerr.WithHint(errors.New("s3: 500"), "Storage 업로드 실패"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Storage 업로드 실패" {
		t.Fatalf("unexpected message: %v", got)
	}
}
