package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/openrefs/refsched/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	InternalJobToken           string
	AutoAssignMaxWorkers       int
	ConflictBufferMinutes      int
	OfficialsPerGame           int
	DefaultGameDurationMinutes int
	RecentWindowDays           int
	LogLevel                   logging.Level
}

// UseMemoryStore reports whether the service should run on the seeded
// in-memory store instead of postgres.
func (c Config) UseMemoryStore() bool {
	return strings.TrimSpace(c.DBURL) == ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	autoAssignMaxWorkers, err := getEnvAsInt("AUTO_ASSIGN_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTO_ASSIGN_MAX_WORKERS: %w", err)
	}
	if autoAssignMaxWorkers < 1 {
		return Config{}, fmt.Errorf("AUTO_ASSIGN_MAX_WORKERS must be >= 1")
	}

	conflictBufferMinutes, err := getEnvAsInt("CONFLICT_BUFFER_MINUTES", 120)
	if err != nil {
		return Config{}, fmt.Errorf("parse CONFLICT_BUFFER_MINUTES: %w", err)
	}
	if conflictBufferMinutes < 0 {
		return Config{}, fmt.Errorf("CONFLICT_BUFFER_MINUTES must be >= 0")
	}

	officialsPerGame, err := getEnvAsInt("OFFICIALS_PER_GAME", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse OFFICIALS_PER_GAME: %w", err)
	}
	if officialsPerGame < 1 {
		return Config{}, fmt.Errorf("OFFICIALS_PER_GAME must be >= 1")
	}

	defaultGameDurationMinutes, err := getEnvAsInt("DEFAULT_GAME_DURATION_MINUTES", 120)
	if err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_GAME_DURATION_MINUTES: %w", err)
	}
	if defaultGameDurationMinutes < 1 {
		return Config{}, fmt.Errorf("DEFAULT_GAME_DURATION_MINUTES must be >= 1")
	}

	recentWindowDays, err := getEnvAsInt("RECENT_WINDOW_DAYS", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse RECENT_WINDOW_DAYS: %w", err)
	}
	if recentWindowDays < 1 {
		return Config{}, fmt.Errorf("RECENT_WINDOW_DAYS must be >= 1")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "refsched-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		InternalJobToken:           strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		AutoAssignMaxWorkers:       autoAssignMaxWorkers,
		ConflictBufferMinutes:      conflictBufferMinutes,
		OfficialsPerGame:           officialsPerGame,
		DefaultGameDurationMinutes: defaultGameDurationMinutes,
		RecentWindowDays:           recentWindowDays,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
