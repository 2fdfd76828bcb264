package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	DatabaseURL      string
	CORSAllowOrigin  []string
	ObjectStoreType  string
	LocalStoreDir    string
	AWSRegion        string
	S3Bucket         string
	S3Prefix         string
	SSEKMSKeyID      string
	JWTSecret        string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	LoginMaxAttempts int
	LoginWindow      time.Duration
	MaxUploadBytes   int64
	RateLimitRPS     float64
	RateLimitBurst   int
	LogJSON          bool
	LogDebug         bool
	CatalogFile      string
}

var defaults = map[string]any{
	"PORT":               "8080",
	"ENV":                "dev",
	"CORS_ALLOW_ORIGINS": "http://localhost:5173",
	"OBJECT_STORE":       "local",
	"LOCAL_STORE_DIR":    "./data",
	"ACCESS_TOKEN_TTL":   "60m",
	"REFRESH_TOKEN_TTL":  "168h",
	"LOGIN_MAX_ATTEMPTS": 5,
	"LOGIN_WINDOW":       "5m",
	"MAX_UPLOAD_BYTES":   10 << 20,
	"RATE_LIMIT_RPS":     5.0,
	"RATE_LIMIT_BURST":   20,
	"LOG_JSON":           true,
	"LOG_DEBUG":          false,
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return FromViper(newViper())
}

// FromViper maps an already populated viper instance onto Config.
func FromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))

	return Config{
		Port:             v.GetString("PORT"),
		Env:              env,
		DatabaseURL:      dbURL,
		CORSAllowOrigin:  splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		ObjectStoreType:  normalizeStoreType(v.GetString("OBJECT_STORE")),
		LocalStoreDir:    v.GetString("LOCAL_STORE_DIR"),
		AWSRegion:        v.GetString("AWS_REGION"),
		S3Bucket:         v.GetString("S3_BUCKET"),
		S3Prefix:         v.GetString("S3_PREFIX"),
		SSEKMSKeyID:      v.GetString("SSE_KMS_KEY_ID"),
		JWTSecret:        strings.TrimSpace(v.GetString("JWT_SECRET")),
		AccessTokenTTL:   positiveDuration(v.GetDuration("ACCESS_TOKEN_TTL"), time.Hour),
		RefreshTokenTTL:  positiveDuration(v.GetDuration("REFRESH_TOKEN_TTL"), 7*24*time.Hour),
		LoginMaxAttempts: v.GetInt("LOGIN_MAX_ATTEMPTS"),
		LoginWindow:      positiveDuration(v.GetDuration("LOGIN_WINDOW"), 5*time.Minute),
		MaxUploadBytes:   v.GetInt64("MAX_UPLOAD_BYTES"),
		RateLimitRPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:   v.GetInt("RATE_LIMIT_BURST"),
		LogJSON:          v.GetBool("LOG_JSON"),
		LogDebug:         v.GetBool("LOG_DEBUG"),
		CatalogFile:      strings.TrimSpace(v.GetString("CATALOG_FILE")),
	}
}

// Validate reports settings that are unsafe outside development.
func (c Config) Validate() []string {
	var problems []string
	if c.Env == "production" {
		if c.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required in production")
		}
		if c.JWTSecret == "" {
			problems = append(problems, "JWT_SECRET is required in production")
		}
	}
	if c.ObjectStoreType == "s3" && c.S3Bucket == "" {
		problems = append(problems, "OBJECT_STORE=s3 requires S3_BUCKET")
	}
	return problems
}

// IsDevLike reports whether the environment tolerates in-memory fallbacks.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()
	return v
}

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Variables already set in the environment win.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}

func positiveDuration(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "test":
		return "test"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
