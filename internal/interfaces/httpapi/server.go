package httpapi

import (
	"net/http"
	"time"

	"github.com/kwucouncil/council-api/internal/platform/logging"
)

type RouterOptions struct {
	ServiceName        string
	SwaggerEnabled     bool
	MetricsEnabled     bool
	CORSAllowedOrigins []string
	AdminAPIKey        string
	RequestTimeout     time.Duration
}

// NewRouter wires every route once at the root and once under /api.
func NewRouter(handler *Handler, opts RouterOptions, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "council-api"
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts)
	for _, prefix := range []string{"", "/api"} {
		registerContentRoutes(mux, prefix, handler, opts.AdminAPIKey)
		registerSportsRoutes(mux, prefix, handler)
		registerScoreManagementRoutes(mux, prefix, handler, opts.AdminAPIKey)
	}

	var h http.Handler = RequestMetrics(mux)
	h = recoverPanic(logger, h)
	h = RequestTimeout(opts.RequestTimeout, h)
	h = CORS(opts.CORSAllowedOrigins, h)
	h = RequestLogging(logger, h)
	h = RequestID(h)
	return RequestTracing(opts.ServiceName, h)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
