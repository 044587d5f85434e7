package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kwucouncil/council-api/internal/observability"
	"github.com/kwucouncil/council-api/internal/usecase"
)

const (
	uploadField       = "image"
	uploadTooLargeMsg = "파일이 너무 큽니다."
)

func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadImage")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes+(1<<20))
	file := usecase.UploadFile{}

	if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			observability.RecordUpload(observability.OutcomeRejected)
			writeError(ctx, w, usecase.UserError(usecase.ErrInvalidInput, uploadTooLargeMsg))
			return
		}
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	if f, header, err := r.FormFile(uploadField); err == nil {
		defer f.Close()
		if header.Size > h.uploadMaxBytes {
			observability.RecordUpload(observability.OutcomeRejected)
			writeError(ctx, w, usecase.UserError(usecase.ErrInvalidInput, uploadTooLargeMsg))
			return
		}
		file = usecase.UploadFile{
			Name:        header.Filename,
			ContentType: strings.TrimSpace(header.Header.Get("Content-Type")),
			Size:        header.Size,
			Body:        f,
		}
	}

	result, err := h.uploadService.Upload(ctx, file)
	if err != nil {
		observability.RecordUpload(observability.OutcomeForStatus(mapError(ctx, err).HTTPStatus))
		h.logFailure(ctx, "upload image failed", err, "file_name", file.Name, "size", file.Size)
		writeError(ctx, w, err)
		return
	}

	observability.RecordUpload(observability.OutcomeSuccess)
	writeJSON(ctx, w, http.StatusOK, uploadResultDTO{Message: "업로드 성공", URL: result.URL, Path: result.Path})
}
