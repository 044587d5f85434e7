package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/domain/prediction"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/panjf2000/ants/v2"
)

const (
	predictionValidationMessage = "유효성 오류"
	distinctPlacesMessage       = "1등, 2등, 3등 학과는 모두 달라야 합니다."
	duplicateStudentMessage     = "이미 제출된 학번입니다. 한 번만 제출 가능합니다."
)

var predictionMessages = map[string]string{
	"Name.required":        "name은(는) 필수입니다.",
	"StudentID.required":   "student_id는(은) 필수입니다.",
	"StudentID.student_id": "student_id는 10자리 숫자여야 합니다.",
	"Phone.required":       "phone은(는) 필수입니다.",
	"Phone.kr_mobile":      "phone 형식이 올바르지 않습니다. (예: 010-1234-5678)",
	"FirstPlace.required":  "first_place는(은) 필수입니다.",
	"SecondPlace.required": "second_place는(은) 필수입니다.",
	"ThirdPlace.required":  "third_place는(은) 필수입니다.",
}

// PredictionService accepts one ranking guess per student.
type PredictionService struct {
	repo     prediction.Repository
	resolver *DepartmentResolver
	pool     *ants.Pool
	now      func() time.Time
}

// NewPredictionService resolves picks on pool when given, else on plain goroutines.
func NewPredictionService(repo prediction.Repository, resolver *DepartmentResolver, pool *ants.Pool) *PredictionService {
	return &PredictionService{
		repo:     repo,
		resolver: resolver,
		pool:     pool,
		now:      time.Now,
	}
}

type SubmitPredictionInput struct {
	Name        string `validate:"required"`
	StudentID   string `validate:"required,student_id"`
	Phone       string `validate:"required,kr_mobile"`
	FirstPlace  string `validate:"required"`
	SecondPlace string `validate:"required"`
	ThirdPlace  string `validate:"required"`
}

type PredictionPage struct {
	Page  int
	Limit int
	Total int
	Items []prediction.Prediction
}

func (s *PredictionService) Submit(ctx context.Context, input SubmitPredictionInput) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Submit")
	defer span.End()

	input = SubmitPredictionInput{
		Name:        strings.TrimSpace(input.Name),
		StudentID:   strings.TrimSpace(input.StudentID),
		Phone:       strings.TrimSpace(input.Phone),
		FirstPlace:  strings.TrimSpace(input.FirstPlace),
		SecondPlace: strings.TrimSpace(input.SecondPlace),
		ThirdPlace:  strings.TrimSpace(input.ThirdPlace),
	}

	errs := violations(ctx, input, predictionMessages)
	if input.FirstPlace != "" && input.SecondPlace != "" && input.ThirdPlace != "" &&
		(input.FirstPlace == input.SecondPlace || input.FirstPlace == input.ThirdPlace || input.SecondPlace == input.ThirdPlace) {
		errs = append(errs, distinctPlacesMessage)
	}
	if len(errs) > 0 {
		return prediction.Prediction{}, &ValidationError{Message: predictionValidationMessage, Errors: errs}
	}

	exists, err := s.repo.ExistsByStudentID(ctx, input.StudentID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("check existing prediction: %w", err)
	}
	if exists {
		return prediction.Prediction{}, UserError(ErrConflict, duplicateStudentMessage)
	}

	places, err := s.resolvePlaces(ctx, input.FirstPlace, input.SecondPlace, input.ThirdPlace)
	if err != nil {
		return prediction.Prediction{}, err
	}
	if !prediction.DistinctPlaces(places[0], places[1], places[2]) {
		return prediction.Prediction{}, &ValidationError{Message: predictionValidationMessage, Errors: []string{distinctPlacesMessage}}
	}

	created, err := s.repo.Create(ctx, prediction.Prediction{
		Name:        input.Name,
		StudentID:   input.StudentID,
		Phone:       input.Phone,
		FirstPlace:  places[0],
		SecondPlace: places[1],
		ThirdPlace:  places[2],
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return prediction.Prediction{}, classifyPredictionInsert(err)
	}
	return created, nil
}

func (s *PredictionService) List(ctx context.Context, page pagination.Page) (PredictionPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.List")
	defer span.End()

	items, total, err := s.repo.List(ctx, page.Offset(), page.Limit())
	if err != nil {
		return PredictionPage{}, fmt.Errorf("list predictions: %w", err)
	}
	return PredictionPage{Page: page.Page, Limit: page.Size, Total: total, Items: items}, nil
}

func (s *PredictionService) Get(ctx context.Context, rawID string) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Get")
	defer span.End()

	id, ok := parseID(rawID)
	if !ok {
		return prediction.Prediction{}, UserError(ErrNotFound, "존재하지 않습니다.")
	}
	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get prediction: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, UserError(ErrNotFound, "존재하지 않습니다.")
	}
	return item, nil
}

// resolvePlaces resolves the three tokens concurrently and reports the first
// failure in pick order.
func (s *PredictionService) resolvePlaces(ctx context.Context, tokens ...string) ([]int64, error) {
	ids := make([]int64, len(tokens))
	errs := make([]error, len(tokens))

	var wg sync.WaitGroup
	for i, token := range tokens {
		i, token := i, token
		task := func() {
			defer wg.Done()
			id, err := s.resolver.Resolve(ctx, token)
			if err != nil {
				errs[i] = err
				return
			}
			if id == nil {
				errs[i] = UserError(ErrInvalidInput, "학과 값이 비어 있습니다.")
				return
			}
			ids[i] = *id
		}

		wg.Add(1)
		if s.pool == nil {
			go task()
			continue
		}
		if err := s.pool.Submit(task); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit resolve task to worker pool: %w", err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// classifyPredictionInsert gives storage-classified insert failures their user message.
func classifyPredictionInsert(err error) error {
	wrapped := crerr.Wrap(err, "create prediction")
	switch {
	case crerr.Is(err, ErrConflict):
		return crerr.WithHint(wrapped, "이미 제출된 학번입니다.")
	case crerr.Is(err, ErrReferenceNotFound):
		return crerr.WithHint(wrapped, "존재하지 않는 학과 ID입니다.")
	case crerr.Is(err, ErrInvalidInput):
		return crerr.WithHint(wrapped, "잘못된 데이터 형식입니다.")
	case crerr.Is(err, ErrForbidden):
		return crerr.WithHint(wrapped, "권한이 없습니다. (RLS/권한 설정)")
	default:
		return wrapped
	}
}
