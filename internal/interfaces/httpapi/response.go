package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/usecase"
)

// errorBody is the single error shape. Errors lists validation failures and
// Error carries the upstream message of unexpected failures.
type errorBody struct {
	Message string   `json:"message"`
	Reason  string   `json:"reason"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Message    string
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	body := errorBody{Message: mapped.Message, Reason: mapped.Reason}

	var verr *usecase.ValidationError
	if crerr.As(err, &verr) {
		body.Message = verr.Message
		body.Errors = verr.Errors
	} else if msg := usecase.UserMessage(err); msg != "" {
		body.Message = msg
	}
	if mapped.HTTPStatus == http.StatusInternalServerError {
		body.Error = crerr.UnwrapAll(err).Error()
	}

	writeJSON(ctx, w, mapped.HTTPStatus, body)
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Message: "서버 오류", Reason: "internalError"})
}

// mapError picks the status from the error kind. Kinds travel as marks from
// the storage layer, so crerr.Is is required here.
func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case crerr.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Message: "잘못된 요청입니다."}
	case crerr.Is(err, usecase.ErrReferenceNotFound):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "referenceNotFound", Message: "참조하는 데이터를 찾을 수 없습니다."}
	case crerr.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Message: "존재하지 않습니다."}
	case crerr.Is(err, usecase.ErrConflict):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "conflict", Message: "이미 존재하는 데이터입니다."}
	case crerr.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Message: adminAuthMessage}
	case crerr.Is(err, usecase.ErrForbidden):
		return mappedError{HTTPStatus: http.StatusForbidden, Reason: "forbidden", Message: "권한이 없습니다."}
	case crerr.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Message: "일시적으로 서비스를 사용할 수 없습니다."}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Message: "서버 오류"}
	}
}
