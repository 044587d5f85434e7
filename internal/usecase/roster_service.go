package usecase

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/domain/roster"
)

const (
	rosterMissingFieldsMessage = "이름과 필요한 정보를 입력해 주세요."
	freshmanNotFoundMessage    = "신입생 정보를 찾을 수 없습니다."
	studentNotFoundMessage     = "재학생 정보를 찾을 수 없습니다."
	rosterLoadFailedMessage    = "데이터 처리 중 오류가 발생했습니다."
)

// RosterService answers whether a member has submitted the form and paid the fee.
type RosterService struct {
	repo roster.Repository
}

func NewRosterService(repo roster.Repository) *RosterService {
	return &RosterService{repo: repo}
}

type VerifyInput struct {
	Name      string
	BirthDate string
	StudentID string
}

// Verify looks up freshmen when a birth date is given, else enrolled students.
func (s *RosterService) Verify(ctx context.Context, input VerifyInput) (roster.Status, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Verify")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	birth := strings.TrimSpace(input.BirthDate)
	studentID := strings.TrimSpace(input.StudentID)
	if name == "" || (birth == "" && studentID == "") {
		return roster.Status{}, UserError(ErrInvalidInput, rosterMissingFieldsMessage)
	}

	if birth != "" {
		found, ok, err := s.repo.FindFreshman(ctx, name, birth)
		if err != nil {
			return roster.Status{}, crerr.WithHint(crerr.Wrap(err, "find freshman"), rosterLoadFailedMessage)
		}
		if !ok {
			return roster.Status{}, UserError(ErrNotFound, freshmanNotFoundMessage)
		}
		return roster.Status{IsForm: found.IsForm, IsCost: found.IsCost}, nil
	}

	found, ok, err := s.repo.FindStudent(ctx, name, studentID)
	if err != nil {
		return roster.Status{}, crerr.WithHint(crerr.Wrap(err, "find student"), rosterLoadFailedMessage)
	}
	if !ok {
		return roster.Status{}, UserError(ErrNotFound, studentNotFoundMessage)
	}
	return roster.Status{IsForm: found.IsForm, IsCost: found.IsCost}, nil
}
