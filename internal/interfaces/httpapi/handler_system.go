package httpapi

import (
	"context"
	"net/http"
	"time"
)

// Root answers the plain-text liveness probe the hosting platform polls.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	body := map[string]string{"status": "ok", "database": "skipped"}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.WarnContext(ctx, "database ping failed", "error", err)
			body["status"] = "degraded"
			body["database"] = "unreachable"
			writeJSON(ctx, w, http.StatusServiceUnavailable, body)
			return
		}
		body["database"] = "ok"
	}
	writeJSON(ctx, w, http.StatusOK, body)
}
