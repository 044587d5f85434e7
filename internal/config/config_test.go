package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "council-api" || cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected service defaults: %q %q", cfg.ServiceName, cfg.HTTPAddr)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("unexpected RequestTimeout: %s", cfg.RequestTimeout)
	}
	if cfg.StandingsMode != StandingsModeStored {
		t.Fatalf("unexpected StandingsMode: %q", cfg.StandingsMode)
	}
	if cfg.UploadMaxBytes != 10<<20 {
		t.Fatalf("unexpected UploadMaxBytes: %d", cfg.UploadMaxBytes)
	}
	if cfg.StorageBucket != "announcements" || cfg.StorageConfigured() {
		t.Fatalf("expected default bucket without credentials, got %q configured=%v", cfg.StorageBucket, cfg.StorageConfigured())
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, defaultCORSOrigins) {
		t.Fatalf("unexpected default CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.SwaggerEnabled || !cfg.MetricsEnabled {
		t.Fatalf("expected swagger and metrics enabled outside prod")
	}
	if cfg.AdminAPIKey != "" {
		t.Fatalf("expected no admin key by default")
	}
}

func TestLoad_ProdDisablesSwaggerByDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("SWAGGER_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected SwaggerEnabled=false in prod by default")
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com/ , ,http://localhost:5500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := []string{"https://a.example.com", "http://localhost:5500"}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, want) {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "standings mode", key: "STANDINGS_MODE", value: "live"},
		{name: "request timeout", key: "APP_REQUEST_TIMEOUT", value: "0s"},
		{name: "cache ttl", key: "CACHE_TTL", value: "soon"},
		{name: "upload max bytes", key: "UPLOAD_MAX_BYTES", value: "0"},
		{name: "worker pool", key: "WORKER_POOL_SIZE", value: "x"},
		{name: "metrics flag", key: "METRICS_ENABLED", value: "maybe"},
		{name: "circuit failure count", key: "STORAGE_CIRCUIT_FAILURE_COUNT", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvStage)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_CompanionRequirements(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "uptrace without dsn", env: map[string]string{"UPTRACE_ENABLED": "true", "UPTRACE_DSN": ""}},
		{name: "betterstack without endpoint", env: map[string]string{"BETTERSTACK_ENABLED": "true"}},
		{name: "pyroscope without server", env: map[string]string{"PYROSCOPE_ENABLED": "true"}},
		{name: "storage key without secret", env: map[string]string{"STORAGE_ACCESS_KEY_ID": "AKIA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvStage)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_StorageAndObservabilityParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("STORAGE_ENDPOINT", "https://acc.r2.cloudflarestorage.com")
	t.Setenv("STORAGE_BUCKET", "council-images")
	t.Setenv("STORAGE_ACCESS_KEY_ID", "key")
	t.Setenv("STORAGE_SECRET_ACCESS_KEY", "secret")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://cdn.example.com/")
	t.Setenv("STORAGE_CIRCUIT_OPEN_TIMEOUT", "45s")
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "s1.eu-fsn-3.betterstackdata.com")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "https://profiles.example.com")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_MAX_IDLE_CONNS", "9")
	t.Setenv("STANDINGS_MODE", "Aggregate")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.StorageConfigured() || cfg.StoragePublicBaseURL != "https://cdn.example.com" {
		t.Fatalf("unexpected storage config: %+v", cfg)
	}
	if cfg.StorageCircuitOpenTimeout != 45*time.Second {
		t.Fatalf("unexpected StorageCircuitOpenTimeout: %s", cfg.StorageCircuitOpenTimeout)
	}
	if cfg.BetterStackMinLevel.String() != "warn" {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel)
	}
	if cfg.PyroscopeAppName != "council-api" {
		t.Fatalf("expected PyroscopeAppName to default to service name, got %q", cfg.PyroscopeAppName)
	}
	if cfg.DBMaxIdleConns != 4 {
		t.Fatalf("expected idle conns capped at open conns, got %d", cfg.DBMaxIdleConns)
	}
	if cfg.StandingsMode != StandingsModeAggregate {
		t.Fatalf("unexpected StandingsMode: %q", cfg.StandingsMode)
	}
}

func TestLoad_DotEnvInDev(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("ADMIN_API_KEY=from-file\nAPP_SERVICE_NAME=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("APP_SERVICE_NAME", "from-env")
	t.Setenv("ADMIN_API_KEY", "")
	if err := os.Unsetenv("ADMIN_API_KEY"); err != nil {
		t.Fatalf("unset ADMIN_API_KEY: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdminAPIKey != "from-file" {
		t.Fatalf("expected key from env file, got %q", cfg.AdminAPIKey)
	}
	if cfg.ServiceName != "from-env" {
		t.Fatalf("real environment must win over env file, got %q", cfg.ServiceName)
	}
}
