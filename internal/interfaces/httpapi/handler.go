package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/kwucouncil/council-api/internal/platform/logging"
	"github.com/kwucouncil/council-api/internal/usecase"
)

// Pinger reports database reachability for /healthz.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Services groups the usecases served over HTTP.
type Services struct {
	Announcements   *usecase.AnnouncementService
	Minutes         *usecase.MinutesService
	Predictions     *usecase.PredictionService
	Matches         *usecase.MatchService
	Standings       *usecase.StandingsService
	Reference       *usecase.ReferenceService
	ScoreManagement *usecase.ScoreManagementService
	Upload          *usecase.UploadService
	Roster          *usecase.RosterService
}

type Handler struct {
	announcementService    *usecase.AnnouncementService
	minutesService         *usecase.MinutesService
	predictionService      *usecase.PredictionService
	matchService           *usecase.MatchService
	standingsService       *usecase.StandingsService
	referenceService       *usecase.ReferenceService
	scoreManagementService *usecase.ScoreManagementService
	uploadService          *usecase.UploadService
	rosterService          *usecase.RosterService
	db                     Pinger
	uploadMaxBytes         int64
	logger                 *logging.Logger
}

func NewHandler(services Services, db Pinger, uploadMaxBytes int64, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = 10 << 20
	}

	return &Handler{
		announcementService:    services.Announcements,
		minutesService:         services.Minutes,
		predictionService:      services.Predictions,
		matchService:           services.Matches,
		standingsService:       services.Standings,
		referenceService:       services.Reference,
		scoreManagementService: services.ScoreManagement,
		uploadService:          services.Upload,
		rosterService:          services.Roster,
		db:                     db,
		uploadMaxBytes:         uploadMaxBytes,
		logger:                 logger,
	}
}

// logFailure logs unexpected failures at error level and client mistakes at warn.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

// queryInt64 parses an optional numeric filter. A malformed value is a client error.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, usecase.UserError(usecase.ErrInvalidInput, name+" 값이 올바르지 않습니다.")
	}
	return &v, nil
}

// queryBool treats a present flag as true only for "true" or "1".
func queryBool(r *http.Request, name string) *bool {
	if !r.URL.Query().Has(name) {
		return nil
	}
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name)))
	if raw == "" {
		return nil
	}
	v := raw == "true" || raw == "1"
	return &v
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
