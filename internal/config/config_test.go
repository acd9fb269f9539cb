package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "PORT", "JWT_ACCESS_EXPIRY", "RATE_LIMIT_MAX", "STRICT_SHARED_STATUS_OWNERSHIP"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 120, cfg.RateLimitMax)
	assert.False(t, cfg.StrictSharedStatusOwnership)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "2h")
	t.Setenv("RATE_LIMIT_MAX", "abc")
	t.Setenv("STRICT_SHARED_STATUS_OWNERSHIP", "true")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 2*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 120, cfg.RateLimitMax, "invalid numbers fall back to the default")
	assert.True(t, cfg.StrictSharedStatusOwnership)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "h", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "1", DBSSLMode: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=1 sslmode=disable TimeZone=UTC", cfg.DSN())
}
