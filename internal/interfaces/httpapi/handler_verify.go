package httpapi

import (
	"net/http"

	"github.com/kwucouncil/council-api/internal/usecase"
)

type verifyRequest struct {
	Name      flexString `json:"name"`
	BirthDate flexString `json:"birth_date"`
	StudentID flexString `json:"student_id"`
}

// VerifyMembership accepts the lookup in a JSON body (POST) or query string (GET).
func (h *Handler) VerifyMembership(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.VerifyMembership")
	defer span.End()

	input := usecase.VerifyInput{
		Name:      queryString(r, "name"),
		BirthDate: queryString(r, "birth_date"),
		StudentID: queryString(r, "student_id"),
	}
	if r.Method == http.MethodPost {
		var req verifyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
		input = usecase.VerifyInput{
			Name:      req.Name.String(),
			BirthDate: req.BirthDate.String(),
			StudentID: req.StudentID.String(),
		}
	}

	status, err := h.rosterService.Verify(ctx, input)
	if err != nil {
		h.logFailure(ctx, "verify membership failed", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, verifyResultDTO{IsForm: status.IsForm, IsCost: status.IsCost, Result: status.Complete()})
}
