package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EMPLOYEE_SCOPE_POLICY", "")
	t.Setenv("JWT_EXPIRE", "")

	cfg := Load()

	assert.Equal(t, access.ScopeByManager, cfg.ScopePolicy)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpire)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.AuditLogins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EMPLOYEE_SCOPE_POLICY", "FLAT")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("API_BASE_PATH", "/api/")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOGIN_RATE_WINDOW", "30s")

	cfg := Load()

	assert.Equal(t, access.ScopeFlat, cfg.ScopePolicy)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "/api", cfg.APIBasePath)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.LoginRateWindow)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			StoreDriver:     "postgres",
			JWTSecret:       "s3cret",
			JWTExpire:       time.Hour,
			ScopePolicy:     access.ScopeFlat,
			LoginRateLimit:  5,
			LoginRateWindow: time.Minute,
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("unknown scope policy", func(t *testing.T) {
		cfg := base()
		cfg.ScopePolicy = "team"
		assert.Error(t, cfg.Validate())
	})

	t.Run("placeholder secret in production", func(t *testing.T) {
		cfg := base()
		cfg.Env = "production"
		cfg.JWTSecret = placeholderSecret
		assert.Error(t, cfg.Validate())
	})

	t.Run("open CORS in production", func(t *testing.T) {
		cfg := base()
		cfg.Env = "production"
		assert.ErrorContains(t, cfg.Validate(), "CORS_ALLOWED_ORIGINS")

		cfg.CORSOrigins = []string{"https://portal.corp.com"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown store driver", func(t *testing.T) {
		cfg := base()
		cfg.StoreDriver = "mongo"
		assert.Error(t, cfg.Validate())
	})
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://portal.corp.com,")

	cfg := Load()

	assert.Equal(t, []string{"http://localhost:5173", "https://portal.corp.com"}, cfg.CORSOrigins)
}
