package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kwucouncil/council-api/internal/domain/department"
	departmentmock "github.com/kwucouncil/council-api/internal/mocks/domain/department"
	"github.com/stretchr/testify/mock"
)

func TestDepartmentResolver_ExactNameWinsOverFragment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := departmentmock.NewRepository(t)
	repo.
		On("FindByExactName", mock.Anything, "공과대학").
		Return(department.Department{ID: 1, Name: "공과대학"}, true, nil).
		Once()

	resolver := NewDepartmentResolver(repo, 8, time.Minute)
	id, err := resolver.Resolve(ctx, "  공과대학 ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id == nil || *id != 1 {
		t.Fatalf("unexpected id: %v", id)
	}
	repo.AssertNotCalled(t, "FindByNameFragment", mock.Anything, mock.Anything)
}

func TestDepartmentResolver_FallsBackToFragmentAndMemoises(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := departmentmock.NewRepository(t)
	repo.
		On("FindByExactName", mock.Anything, "Software").
		Return(department.Department{}, false, nil).
		Once()
	repo.
		On("FindByNameFragment", mock.Anything, "Software").
		Return(department.Department{ID: 12, NameEng: "Department of Software"}, true, nil).
		Once()

	resolver := NewDepartmentResolver(repo, 8, time.Minute)
	for _, token := range []string{"Software", "software"} {
		id, err := resolver.Resolve(ctx, token)
		if err != nil {
			t.Fatalf("resolve %q: %v", token, err)
		}
		if id == nil || *id != 12 {
			t.Fatalf("resolve %q: unexpected id %v", token, id)
		}
	}
}

func TestDepartmentResolver_NumericAndBlankTokens(t *testing.T) {
	t.Parallel()

	repo := departmentmock.NewRepository(t)
	resolver := NewDepartmentResolver(repo, 0, 0)

	tests := []struct {
		token string
		want  *int64
	}{
		{token: "", want: nil},
		{token: "   ", want: nil},
		{token: "42", want: int64Ptr(42)},
		{token: "7.0", want: int64Ptr(7)},
		{token: "999999", want: int64Ptr(999999)},
	}
	for _, tc := range tests {
		got, err := resolver.Resolve(context.Background(), tc.token)
		if err != nil {
			t.Fatalf("resolve %q: %v", tc.token, err)
		}
		if (got == nil) != (tc.want == nil) || (got != nil && *got != *tc.want) {
			t.Fatalf("resolve %q: got %v want %v", tc.token, got, tc.want)
		}
	}
}

func TestDepartmentResolver_UnknownNameIsNotCached(t *testing.T) {
	t.Parallel()

	repo := departmentmock.NewRepository(t)
	repo.On("FindByExactName", mock.Anything, "없는학과").Return(department.Department{}, false, nil).Twice()
	repo.On("FindByNameFragment", mock.Anything, "없는학과").Return(department.Department{}, false, nil).Twice()

	resolver := NewDepartmentResolver(repo, 8, time.Minute)
	for i := 0; i < 2; i++ {
		_, err := resolver.Resolve(context.Background(), "없는학과")
		if !errors.Is(err, ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
		if got := UserMessage(err); got != `학과를 찾을 수 없습니다: "없는학과"` {
			t.Fatalf("unexpected message: %q", got)
		}
	}
}

func int64Ptr(v int64) *int64 { return &v }
