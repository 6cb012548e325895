package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newTestViper(values map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg := fromViper(newTestViper(nil))

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 24*time.Hour, cfg.Reference.CacheTTL)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileSizeBytes)
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout)
	assert.Equal(t, "/dev-login", cfg.Session.LocalLoginPath)
}

func TestResolveEnvPrefersEnvOverNodeEnv(t *testing.T) {
	assert.Equal(t, EnvProduction, resolveEnv("production", "development"))
	assert.Equal(t, EnvProduction, resolveEnv("", "production"))
	assert.Equal(t, EnvDevelopment, resolveEnv("", ""))
	assert.Equal(t, EnvDevelopment, resolveEnv("local", "production"))
}

func TestFromViperParsesBackendAndLists(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{
		"NODE_ENV":            "production",
		"INTERNAL_API_URL":    "http://backend:8000/",
		"NEXT_PUBLIC_API_URL": "https://portal.example.edu",
		"BACKEND_TIMEOUT":     "15s",
		"NOTIFY_RECIPIENTS":   "a@example.edu, b@example.edu,",
	}))

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "http://backend:8000", cfg.Backend.InternalURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, []string{"a@example.edu", "b@example.edu"}, cfg.Notifications.Recipients)
}

func TestPublicBaseURL(t *testing.T) {
	backend := BackendConfig{InternalURL: "http://backend:8000", PublicURL: "https://api.example.edu", UseNginxProxy: true}

	assert.Equal(t, "/api/v1", backend.PublicBaseURL(EnvProduction, "/api/v1"))
	assert.Equal(t, "https://api.example.edu/api/v1", backend.PublicBaseURL(EnvDevelopment, "/api/v1"))

	backend.PublicURL = ""
	assert.Equal(t, "http://backend:8000/api/v1", backend.PublicBaseURL(EnvDevelopment, "/api/v1"))
}
