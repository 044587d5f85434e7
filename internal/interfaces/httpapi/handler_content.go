package httpapi

import (
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/kwucouncil/council-api/internal/observability"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/kwucouncil/council-api/internal/usecase"
)

const (
	defaultListSize = 10
	maxJSONBody     = 1 << 20
)

type createAnnouncementRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	PublishedAt string `json:"published_at"`
}

type createMinutesRequest struct {
	Title   string `json:"title"`
	FileURL string `json:"file_url"`
	Date    string `json:"date"`
}

func decodeJSON(r *http.Request, out any) error {
	if err := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxJSONBody)).Decode(out); err != nil {
		return usecase.UserError(usecase.ErrInvalidInput, "요청 본문이 올바른 JSON이 아닙니다.")
	}
	return nil
}

func listPage(r *http.Request) pagination.Page {
	q := r.URL.Query()
	return pagination.Normalize(q.Get("page"), q.Get("limit"), defaultListSize, pagination.ListCap)
}

func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnnouncements")
	defer span.End()

	page, err := h.announcementService.List(ctx, listPage(r), queryString(r, "q"))
	if err != nil {
		h.logFailure(ctx, "list announcements failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, pageDTO[announcementDTO]{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Items: mapSlice(page.Items, announcementToDTO),
	})
}

func (h *Handler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAnnouncement")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.announcementService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get announcement failed", err, "announcement_id", id)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataDTO[announcementDTO]{Data: announcementToDTO(item)})
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAnnouncement")
	defer span.End()

	var req createAnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.announcementService.Create(ctx, usecase.CreateAnnouncementInput(req))
	if err != nil {
		h.logFailure(ctx, "create announcement failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, struct {
		Message string          `json:"message"`
		Data    announcementDTO `json:"data"`
	}{Message: "게시 완료", Data: announcementToDTO(item)})
}

func (h *Handler) ListMinutes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMinutes")
	defer span.End()

	page, err := h.minutesService.List(ctx, listPage(r), queryString(r, "q"))
	if err != nil {
		h.logFailure(ctx, "list minutes failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, pageDTO[minutesDTO]{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Items: mapSlice(page.Items, minutesToDTO),
	})
}

func (h *Handler) GetMinutes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMinutes")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.minutesService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get minutes failed", err, "minutes_id", id)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, minutesToDTO(item))
}

func (h *Handler) CreateMinutes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMinutes")
	defer span.End()

	var req createMinutesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.minutesService.Create(ctx, usecase.CreateMinutesInput(req))
	if err != nil {
		h.logFailure(ctx, "create minutes failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, minutesToDTO(item))
}

func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPredictions")
	defer span.End()

	page, err := h.predictionService.List(ctx, listPage(r))
	if err != nil {
		h.logFailure(ctx, "list predictions failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, pageDTO[predictionDTO]{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Items: mapSlice(page.Items, predictionToDTO),
	})
}

func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPrediction")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.predictionService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get prediction failed", err, "prediction_id", id)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataDTO[predictionDTO]{Data: predictionToDTO(item)})
}

func (h *Handler) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPrediction")
	defer span.End()

	var req submitPredictionRequest
	if err := decodeJSON(r, &req); err != nil {
		observability.RecordPredictionSubmission(observability.OutcomeRejected)
		writeError(ctx, w, err)
		return
	}

	item, err := h.predictionService.Submit(ctx, req.toInput())
	if err != nil {
		observability.RecordPredictionSubmission(observability.OutcomeForStatus(mapError(ctx, err).HTTPStatus))
		h.logFailure(ctx, "submit prediction failed", err, "student_id", req.StudentID.String())
		writeError(ctx, w, err)
		return
	}

	observability.RecordPredictionSubmission(observability.OutcomeSuccess)
	writeJSON(ctx, w, http.StatusCreated, struct {
		Message string        `json:"message"`
		Data    predictionDTO `json:"data"`
	}{Message: "승부예측 제출 완료", Data: predictionToDTO(item)})
}
