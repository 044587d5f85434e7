package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/prediction"
	departmentmock "github.com/kwucouncil/council-api/internal/mocks/domain/department"
	predictionmock "github.com/kwucouncil/council-api/internal/mocks/domain/prediction"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/mock"
)

func validPredictionInput() SubmitPredictionInput {
	return SubmitPredictionInput{
		Name:        "김광운",
		StudentID:   "2021123456",
		Phone:       "010-1234-5678",
		FirstPlace:  "1",
		SecondPlace: "소프트웨어학부",
		ThirdPlace:  "3",
	}
}

func TestPredictionService_Submit_ResolvesPicksAndCreates(t *testing.T) {
	t.Parallel()

	pool, err := ants.NewPool(2)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	t.Cleanup(pool.Release)

	ctx := context.Background()
	repo := predictionmock.NewRepository(t)
	deptRepo := departmentmock.NewRepository(t)

	deptRepo.
		On("FindByExactName", mock.Anything, "소프트웨어학부").
		Return(department.Department{ID: 2, Name: "소프트웨어학부"}, true, nil).
		Once()
	repo.
		On("ExistsByStudentID", mock.Anything, "2021123456").
		Return(false, nil).
		Once()
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(p prediction.Prediction) bool {
			return p.FirstPlace == 1 && p.SecondPlace == 2 && p.ThirdPlace == 3 && p.Phone == "010-1234-5678"
		})).
		Return(prediction.Prediction{ID: 10, Name: "김광운", StudentID: "2021123456", FirstPlace: 1, SecondPlace: 2, ThirdPlace: 3}, nil).
		Once()

	service := NewPredictionService(repo, NewDepartmentResolver(deptRepo, 8, time.Minute), pool)
	got, err := service.Submit(ctx, validPredictionInput())
	if err != nil {
		t.Fatalf("submit prediction: %v", err)
	}
	if got.ID != 10 {
		t.Fatalf("unexpected prediction id: %d", got.ID)
	}
}

func TestPredictionService_Submit_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*SubmitPredictionInput)
		want   string
	}{
		{
			name:   "short student id",
			mutate: func(in *SubmitPredictionInput) { in.StudentID = "20211234" },
			want:   "student_id는 10자리 숫자여야 합니다.",
		},
		{
			name:   "bad phone",
			mutate: func(in *SubmitPredictionInput) { in.Phone = "01012345678" },
			want:   "phone 형식이 올바르지 않습니다. (예: 010-1234-5678)",
		},
		{
			name:   "blank name",
			mutate: func(in *SubmitPredictionInput) { in.Name = "   " },
			want:   "name은(는) 필수입니다.",
		},
		{
			name:   "same picks",
			mutate: func(in *SubmitPredictionInput) { in.ThirdPlace = "1" },
			want:   distinctPlacesMessage,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service := NewPredictionService(predictionmock.NewRepository(t), NewDepartmentResolver(departmentmock.NewRepository(t), 8, time.Minute), nil)
			input := validPredictionInput()
			tc.mutate(&input)

			_, err := service.Submit(context.Background(), input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("validation error must be ErrInvalidInput")
			}
			if len(verr.Errors) != 1 || verr.Errors[0] != tc.want {
				t.Fatalf("unexpected errors: %v", verr.Errors)
			}
		})
	}
}

func TestPredictionService_Submit_DuplicateStudent(t *testing.T) {
	t.Parallel()

	repo := predictionmock.NewRepository(t)
	repo.On("ExistsByStudentID", mock.Anything, "2021123456").Return(true, nil).Once()

	service := NewPredictionService(repo, NewDepartmentResolver(departmentmock.NewRepository(t), 8, time.Minute), nil)
	_, err := service.Submit(context.Background(), validPredictionInput())
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if got := UserMessage(err); got != duplicateStudentMessage {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestPredictionService_Submit_PicksResolvingToSameDepartment(t *testing.T) {
	t.Parallel()

	repo := predictionmock.NewRepository(t)
	deptRepo := departmentmock.NewRepository(t)
	repo.On("ExistsByStudentID", mock.Anything, "2021123456").Return(false, nil).Once()
	deptRepo.
		On("FindByExactName", mock.Anything, "소프트웨어학부").
		Return(department.Department{ID: 3}, true, nil).
		Once()

	service := NewPredictionService(repo, NewDepartmentResolver(deptRepo, 8, time.Minute), nil)
	_, err := service.Submit(context.Background(), validPredictionInput())

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Errors[0] != distinctPlacesMessage {
		t.Fatalf("expected distinct places violation, got %v", err)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClassifyPredictionInsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind error
		want string
	}{
		{kind: ErrConflict, want: "이미 제출된 학번입니다."},
		{kind: ErrReferenceNotFound, want: "존재하지 않는 학과 ID입니다."},
		{kind: ErrInvalidInput, want: "잘못된 데이터 형식입니다."},
		{kind: ErrForbidden, want: "권한이 없습니다. (RLS/권한 설정)"},
	}
	for _, tc := range tests {
		storageErr := crerr.Mark(fmt.Errorf("insert prediction: pq failure"), tc.kind)
		got := classifyPredictionInsert(storageErr)
		if !crerr.Is(got, tc.kind) {
			t.Fatalf("kind %v lost in %v", tc.kind, got)
		}
		if msg := UserMessage(got); msg != tc.want {
			t.Fatalf("kind %v: unexpected message %q", tc.kind, msg)
		}
	}

	if msg := UserMessage(classifyPredictionInsert(errors.New("connection reset"))); msg != "" {
		t.Fatalf("unclassified errors carry no hint, got %q", msg)
	}
}
