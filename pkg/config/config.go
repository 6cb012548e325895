package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Backend       BackendConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	CORS          CORSConfig
	Log           LogConfig
	Session       SessionConfig
	Reference     ReferenceConfig
	Upload        UploadConfig
	Roster        RosterScheduleConfig
	Notifications NotificationConfig
	Exports       ExportsConfig
	Audit         AuditConfig
}

// BackendConfig locates the scholarship backend.
type BackendConfig struct {
	InternalURL   string
	PublicURL     string
	UseNginxProxy bool
	Timeout       time.Duration
}

// PublicBaseURL returns the base URL browsers should use. Production behind
// nginx uses the relative API prefix instead of the direct backend host.
func (b BackendConfig) PublicBaseURL(env, apiPrefix string) string {
	if env == EnvProduction && b.UseNginxProxy {
		return apiPrefix
	}
	if b.PublicURL != "" {
		return strings.TrimRight(b.PublicURL, "/") + apiPrefix
	}
	return strings.TrimRight(b.InternalURL, "/") + apiPrefix
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig holds the optional secret used to verify backend issued tokens.
// When empty, claims are decoded without verification and only used as hints.
type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SessionConfig controls the server side session store.
type SessionConfig struct {
	TTL            time.Duration
	CookieName     string
	KeyPrefix      string
	LocalLoginPath string
	SSOLoginURL    string
}

// ReferenceConfig tunes caching of quasi static reference data.
type ReferenceConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// UploadConfig bounds proxied uploads.
type UploadConfig struct {
	MaxFileSizeBytes int64
}

// RosterScheduleConfig drives the periodic roster generation trigger.
type RosterScheduleConfig struct {
	Enabled         bool
	Cron            string
	ServiceToken    string
	ScholarshipCode string
}

// NotificationConfig configures outgoing mail.
type NotificationConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	Sender     string
	Recipients []string
	Workers    int
	MaxRetries int
}

// ExportsConfig controls generated export artifacts.
type ExportsConfig struct {
	StorageDir      string
	SignedURLSecret string
	SignedURLTTL    time.Duration
}

// AuditConfig toggles persistence of gateway mutations.
type AuditConfig struct {
	Enabled   bool
	Retention time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = resolveEnv(v.GetString("ENV"), v.GetString("NODE_ENV"))
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Backend = BackendConfig{
		InternalURL:   strings.TrimRight(v.GetString("INTERNAL_API_URL"), "/"),
		PublicURL:     strings.TrimRight(v.GetString("NEXT_PUBLIC_API_URL"), "/"),
		UseNginxProxy: v.GetBool("USE_NGINX_PROXY"),
		Timeout:       parseDuration(v.GetString("BACKEND_TIMEOUT"), 0),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{Secret: v.GetString("JWT_SECRET")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Session = SessionConfig{
		TTL:            parseDuration(v.GetString("SESSION_TTL"), 7*24*time.Hour),
		CookieName:     v.GetString("SESSION_COOKIE"),
		KeyPrefix:      v.GetString("SESSION_KEY_PREFIX"),
		LocalLoginPath: v.GetString("LOCAL_LOGIN_PATH"),
		SSOLoginURL:    v.GetString("SSO_LOGIN_URL"),
	}

	cfg.Reference = ReferenceConfig{
		CacheEnabled: v.GetBool("ENABLE_REFERENCE_CACHE"),
		CacheTTL:     parseDuration(v.GetString("REFERENCE_CACHE_TTL"), 24*time.Hour),
	}

	maxUpload := v.GetInt64("UPLOAD_MAX_FILE_SIZE")
	if maxUpload <= 0 {
		maxUpload = 10 * 1024 * 1024
	}
	cfg.Upload = UploadConfig{MaxFileSizeBytes: maxUpload}

	cfg.Roster = RosterScheduleConfig{
		Enabled:         v.GetBool("ENABLE_ROSTER_SCHEDULE"),
		Cron:            v.GetString("ROSTER_SCHEDULE_CRON"),
		ServiceToken:    v.GetString("ROSTER_SCHEDULE_TOKEN"),
		ScholarshipCode: v.GetString("ROSTER_SCHEDULE_SCHOLARSHIP"),
	}

	cfg.Notifications = NotificationConfig{
		Enabled:    v.GetBool("ENABLE_NOTIFICATIONS"),
		SMTPHost:   v.GetString("SMTP_HOST"),
		SMTPPort:   v.GetInt("SMTP_PORT"),
		Username:   v.GetString("SMTP_USERNAME"),
		Password:   v.GetString("SMTP_PASSWORD"),
		Sender:     v.GetString("NOTIFY_SENDER"),
		Recipients: splitAndTrim(v.GetString("NOTIFY_RECIPIENTS")),
		Workers:    v.GetInt("NOTIFY_WORKERS"),
		MaxRetries: v.GetInt("NOTIFY_MAX_RETRIES"),
	}

	cfg.Exports = ExportsConfig{
		StorageDir:      v.GetString("EXPORTS_STORAGE_DIR"),
		SignedURLSecret: v.GetString("EXPORTS_SIGNED_URL_SECRET"),
		SignedURLTTL:    parseDuration(v.GetString("EXPORTS_SIGNED_URL_TTL"), time.Hour),
	}

	cfg.Audit = AuditConfig{
		Enabled:   v.GetBool("ENABLE_AUDIT_LOG"),
		Retention: v.GetDuration("AUDIT_LOG_RETENTION"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "")
	v.SetDefault("NODE_ENV", "")
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("INTERNAL_API_URL", "http://localhost:8000")
	v.SetDefault("NEXT_PUBLIC_API_URL", "")
	v.SetDefault("USE_NGINX_PROXY", true)
	v.SetDefault("BACKEND_TIMEOUT", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "scholarship_gateway")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("SESSION_COOKIE", "portal_session")
	v.SetDefault("SESSION_KEY_PREFIX", "session")
	v.SetDefault("LOCAL_LOGIN_PATH", "/dev-login")
	v.SetDefault("SSO_LOGIN_URL", "/auth/sso-login")

	v.SetDefault("ENABLE_REFERENCE_CACHE", true)
	v.SetDefault("REFERENCE_CACHE_TTL", "24h")

	v.SetDefault("UPLOAD_MAX_FILE_SIZE", 10*1024*1024)

	v.SetDefault("ENABLE_ROSTER_SCHEDULE", false)
	v.SetDefault("ROSTER_SCHEDULE_CRON", "0 2 1 * *")
	v.SetDefault("ROSTER_SCHEDULE_TOKEN", "")
	v.SetDefault("ROSTER_SCHEDULE_SCHOLARSHIP", "")

	v.SetDefault("ENABLE_NOTIFICATIONS", false)
	v.SetDefault("SMTP_HOST", "localhost")
	v.SetDefault("SMTP_PORT", 25)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("NOTIFY_SENDER", "scholarship-portal@localhost")
	v.SetDefault("NOTIFY_RECIPIENTS", "")
	v.SetDefault("NOTIFY_WORKERS", 1)
	v.SetDefault("NOTIFY_MAX_RETRIES", 3)

	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORTS_SIGNED_URL_SECRET", "dev_exports_secret")
	v.SetDefault("EXPORTS_SIGNED_URL_TTL", "1h")

	v.SetDefault("ENABLE_AUDIT_LOG", false)
	v.SetDefault("AUDIT_LOG_RETENTION", "2160h")
}

// resolveEnv prefers ENV and falls back to NODE_ENV, which the portal
// frontend used to select between the nginx proxy path and the direct backend.
func resolveEnv(env, nodeEnv string) string {
	for _, candidate := range []string{env, nodeEnv} {
		switch strings.ToLower(strings.TrimSpace(candidate)) {
		case EnvProduction:
			return EnvProduction
		case EnvDevelopment, "local", "test":
			return EnvDevelopment
		}
	}
	return EnvDevelopment
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
