package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kwucouncil/council-api/internal/config"
	"github.com/kwucouncil/council-api/internal/domain/college"
	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/sport"
	"github.com/kwucouncil/council-api/internal/domain/standing"
	"github.com/kwucouncil/council-api/internal/domain/storage"
	"github.com/kwucouncil/council-api/internal/domain/venue"
	"github.com/kwucouncil/council-api/internal/infrastructure/objectstore"
	cacherepo "github.com/kwucouncil/council-api/internal/infrastructure/repository/cache"
	"github.com/kwucouncil/council-api/internal/infrastructure/repository/postgres"
	"github.com/kwucouncil/council-api/internal/infrastructure/rosterfile"
	"github.com/kwucouncil/council-api/internal/interfaces/httpapi"
	"github.com/kwucouncil/council-api/internal/platform/cache"
	"github.com/kwucouncil/council-api/internal/platform/logging"
	"github.com/kwucouncil/council-api/internal/platform/resilience"
	"github.com/kwucouncil/council-api/internal/platform/timefmt"
	"github.com/kwucouncil/council-api/internal/usecase"
	"github.com/panjf2000/ants/v2"
)

// App owns the HTTP server and everything it needs to shut down cleanly.
type App struct {
	Server *http.Server

	db       *sqlx.DB
	pool     *ants.Pool
	store    *cache.Store
	roster   *rosterfile.Repository
	resolver *usecase.DepartmentResolver
	logger   *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.WorkerPoolSize, ants.WithPreAlloc(false))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	uploader, err := newUploader(ctx, cfg, logger)
	if err != nil {
		pool.Release()
		_ = db.Close()
		return nil, err
	}

	store := cache.NewStore(cfg.CacheTTL)
	var (
		colleges    college.Repository    = postgres.NewCollegeRepository(db)
		departments department.Repository = postgres.NewDepartmentRepository(db)
		sports      sport.Repository      = postgres.NewSportRepository(db)
		venues      venue.Repository      = postgres.NewVenueRepository(db)
	)
	if cfg.CacheEnabled {
		colleges = cacherepo.NewCollegeRepository(colleges, store)
		departments = cacherepo.NewDepartmentRepository(departments, store)
		sports = cacherepo.NewSportRepository(sports, store)
		venues = cacherepo.NewVenueRepository(venues, store)
	}

	matches := postgres.NewMatchRepository(db)
	roster := rosterfile.NewRepository(cfg.RosterFreshmenPath, cfg.RosterStudentsPath, cache.NewStore(0))
	resolver := usecase.NewDepartmentResolver(departments, cfg.ResolverCacheSize, cfg.CacheTTL)
	loc := timefmt.LoadLocation(cfg.Timezone)

	handler := httpapi.NewHandler(httpapi.Services{
		Announcements:   usecase.NewAnnouncementService(postgres.NewAnnouncementRepository(db), loc),
		Minutes:         usecase.NewMinutesService(postgres.NewMinutesRepository(db)),
		Predictions:     usecase.NewPredictionService(postgres.NewPredictionRepository(db), resolver, pool),
		Matches:         usecase.NewMatchService(matches, loc),
		Standings:       usecase.NewStandingsService(departments, matches, postgres.NewFutsalStandingRepository(db), standing.Mode(cfg.StandingsMode), loc),
		Reference:       usecase.NewReferenceService(colleges, departments, sports, venues),
		ScoreManagement: usecase.NewScoreManagementService(matches),
		Upload:          usecase.NewUploadService(uploader),
		Roster:          usecase.NewRosterService(roster),
	}, db, cfg.UploadMaxBytes, logger)

	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		MetricsEnabled:     cfg.MetricsEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminAPIKey:        cfg.AdminAPIKey,
		RequestTimeout:     cfg.RequestTimeout,
	}, logger)

	if cfg.AdminAPIKey == "" {
		logger.Warn("admin api key not configured; admin routes answer 503")
	}

	return &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		db:       db,
		pool:     pool,
		store:    store,
		roster:   roster,
		resolver: resolver,
		logger:   logger,
	}, nil
}

func newUploader(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage.Uploader, error) {
	if !cfg.StorageConfigured() {
		logger.Warn("object storage not configured; uploads answer 503", "bucket", cfg.StorageBucket)
		return objectstore.Unavailable{}, nil
	}

	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.StorageCircuitEnabled,
		FailureThreshold: cfg.StorageCircuitFailureCount,
		OpenTimeout:      cfg.StorageCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.StorageCircuitHalfOpenMaxReq,
	}.NewBreaker()

	uploader, err := objectstore.NewS3Uploader(ctx, objectstore.Config{
		Endpoint:        cfg.StorageEndpoint,
		Region:          cfg.StorageRegion,
		Bucket:          cfg.StorageBucket,
		AccessKeyID:     cfg.StorageAccessKeyID,
		SecretAccessKey: cfg.StorageSecretAccessKey,
		PublicBaseURL:   cfg.StoragePublicBaseURL,
		UsePathStyle:    cfg.StorageUsePathStyle,
		MaxBytes:        cfg.UploadMaxBytes,
	}, breaker)
	if err != nil {
		return nil, fmt.Errorf("create object storage uploader: %w", err)
	}

	logger.Info("object storage configured", "bucket", cfg.StorageBucket, "endpoint", cfg.StorageEndpoint)
	return uploader, nil
}

// Reload drops every cached read so edited reference data and roster files
// are picked up without a restart.
func (a *App) Reload(ctx context.Context) {
	a.store.DeletePrefix(ctx, "")
	a.roster.Invalidate(ctx)
	a.resolver.Forget()
	a.logger.InfoContext(ctx, "caches reloaded")
}

// Shutdown stops accepting requests, waits for in-flight ones, then releases
// the worker pool and the database.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := a.pool.ReleaseTimeout(5 * time.Second); err != nil {
		errs = append(errs, fmt.Errorf("release worker pool: %w", err))
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
