package httpapi

import (
	"io"
	"net/http"

	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/kwucouncil/council-api/internal/usecase"
)

func (h *Handler) ListAdminMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAdminMatches")
	defer span.End()

	sportID, err := queryInt64(r, "sport_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	page, err := h.scoreManagementService.List(ctx, usecase.AdminMatchQuery{
		Date:    queryString(r, "date"),
		SportID: sportID,
		Played:  queryBool(r, "is_played"),
		Page:    pagination.Normalize(query.Get("page"), pagination.FirstNonEmpty(query.Get("page_size"), query.Get("limit")), defaultMatchPageSize, pagination.MatchCap),
	})
	if err != nil {
		h.logFailure(ctx, "list admin matches failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, adminMatchPageDTO{
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		Matches:  mapSlice(page.Matches, adminMatchToDTO),
	})
}

func (h *Handler) GetAdminMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdminMatch")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.scoreManagementService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get admin match failed", err, "match_ref", id)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]adminMatchDTO{"match": adminMatchToDTO(item)})
}

func (h *Handler) UpdateMatchScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchScores")
	defer span.End()

	fields, err := readFields(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	isPlayed, err := boolField(fields, "is_played")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	note, noteSet, err := noteField(fields)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := r.PathValue("id")
	result, err := h.scoreManagementService.UpdateScores(ctx, id, usecase.ScoreInput{
		HomeScore:    fields["home_score"],
		AwayScore:    fields["away_score"],
		IsPlayed:     isPlayed,
		AdminNote:    note,
		AdminNoteSet: noteSet,
	})
	if err != nil {
		h.logFailure(ctx, "update match scores failed", err, "match_ref", id)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "match scores updated", "match_id", result.MatchID, "home_score", result.HomeScore, "away_score", result.AwayScore)
	writeJSON(ctx, w, http.StatusOK, scoreResultDTO(result))
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	fields, err := readFields(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	isPlayed, err := boolField(fields, "is_played")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	rain, err := boolField(fields, "rain_canceled")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	note, noteSet, err := noteField(fields)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id := r.PathValue("id")
	result, err := h.scoreManagementService.UpdateStatus(ctx, id, usecase.StatusInput{
		IsPlayed:     isPlayed,
		RainCanceled: rain,
		AdminNote:    note,
		AdminNoteSet: noteSet,
	})
	if err != nil {
		h.logFailure(ctx, "update match status failed", err, "match_ref", id)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, statusResultDTO(result))
}

func (h *Handler) ListAdminSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAdminSports")
	defer span.End()

	items, err := h.referenceService.Sports(ctx)
	if err != nil {
		h.logFailure(ctx, "list admin sports failed", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string][]sportDTO{"sports": mapSlice(items, sportToDTO)})
}

func (h *Handler) ListAdminDepartments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAdminDepartments")
	defer span.End()

	collegeID, err := queryInt64(r, "college_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.referenceService.Departments(ctx, department.Filter{CollegeID: collegeID, Search: queryString(r, "search")})
	if err != nil {
		h.logFailure(ctx, "list admin departments failed", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string][]adminDepartmentDTO{"departments": mapSlice(items, adminDepartmentToDTO)})
}

func readFields(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxJSONBody))
	if err != nil {
		return nil, usecase.UserError(usecase.ErrInvalidInput, "요청 본문을 읽을 수 없습니다.")
	}
	return decodeFields(raw)
}
