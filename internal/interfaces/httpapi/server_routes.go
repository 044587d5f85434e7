package httpapi

import (
	"net/http"

	"github.com/kwucouncil/council-api/internal/observability"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/healthz", handler.Healthz)
	if opts.MetricsEnabled {
		mux.Handle("GET /metrics", observability.MetricsHandler())
	}
	if !opts.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerContentRoutes(mux *http.ServeMux, prefix string, handler *Handler, adminKey string) {
	admin := func(fn http.HandlerFunc) http.Handler { return RequireAdminKey(adminKey, fn) }

	mux.HandleFunc("GET "+prefix+"/announcements", handler.ListAnnouncements)
	mux.HandleFunc("GET "+prefix+"/announcements/{id}", handler.GetAnnouncement)
	mux.Handle("POST "+prefix+"/announcements", admin(handler.CreateAnnouncement))

	mux.HandleFunc("GET "+prefix+"/minutes", handler.ListMinutes)
	mux.HandleFunc("GET "+prefix+"/minutes/{id}", handler.GetMinutes)
	mux.Handle("POST "+prefix+"/minutes", admin(handler.CreateMinutes))

	mux.Handle("GET "+prefix+"/predictions", admin(handler.ListPredictions))
	mux.Handle("GET "+prefix+"/predictions/{id}", admin(handler.GetPrediction))
	mux.HandleFunc("POST "+prefix+"/predictions", handler.SubmitPrediction)

	mux.Handle("POST "+prefix+"/upload", admin(handler.UploadImage))

	mux.HandleFunc("GET "+prefix+"/verify", handler.VerifyMembership)
	mux.HandleFunc("POST "+prefix+"/verify", handler.VerifyMembership)
}

func registerSportsRoutes(mux *http.ServeMux, prefix string, handler *Handler) {
	base := prefix + "/sports2025"
	mux.HandleFunc("GET "+base+"/matches", handler.ListMatches)
	mux.HandleFunc("GET "+base+"/matches/{id}", handler.GetMatch)
	mux.HandleFunc("GET "+base+"/standings", handler.GetStandings)
	mux.HandleFunc("GET "+base+"/futsal-standings", handler.GetFutsalStandings)
	mux.HandleFunc("GET "+base+"/recent-results", handler.ListRecentResults)
	mux.HandleFunc("GET "+base+"/departments", handler.ListDepartments)
	mux.HandleFunc("GET "+base+"/colleges", handler.ListColleges)
	mux.HandleFunc("GET "+base+"/sports", handler.ListSports)
	mux.HandleFunc("GET "+base+"/venues", handler.ListVenues)
	mux.HandleFunc("GET "+base+"/sport-venues", handler.ListSportVenues)
}

func registerScoreManagementRoutes(mux *http.ServeMux, prefix string, handler *Handler, adminKey string) {
	base := prefix + "/scoreManagement"
	mux.HandleFunc("GET "+base+"/matches", handler.ListAdminMatches)
	mux.HandleFunc("GET "+base+"/matches/{id}", handler.GetAdminMatch)
	mux.Handle("PUT "+base+"/matches/{id}/scores", RequireAdminKey(adminKey, http.HandlerFunc(handler.UpdateMatchScores)))
	mux.Handle("PUT "+base+"/matches/{id}/status", RequireAdminKey(adminKey, http.HandlerFunc(handler.UpdateMatchStatus)))
	mux.HandleFunc("GET "+base+"/sports", handler.ListAdminSports)
	mux.HandleFunc("GET "+base+"/departments", handler.ListAdminDepartments)
}
