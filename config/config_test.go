package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REPORT_RATE_LIMIT", "")
	t.Setenv("ANALYTICS_CACHE_TTL_SECONDS", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("ANALYTICS_SNAPSHOT_SCHEDULE", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.ReportRateLimit)
	assert.Equal(t, 5*time.Minute, cfg.AnalyticsTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Origins)
	assert.Empty(t, cfg.SnapshotSchedule)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GO_ENV", "production")
	t.Setenv("REPORT_RATE_LIMIT", "3")
	t.Setenv("EXTERNAL_HTTP_TIMEOUT_SECONDS", "4")
	t.Setenv("CORS_ORIGINS", "https://a.lk, https://b.lk,")
	t.Setenv("ANALYTICS_SNAPSHOT_SCHEDULE", "*/5 * * * *")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3, cfg.ReportRateLimit)
	assert.Equal(t, 4*time.Second, cfg.ExternalTimeout)
	assert.Equal(t, []string{"https://a.lk", "https://b.lk"}, cfg.Origins)
	assert.Equal(t, "*/5 * * * *", cfg.SnapshotSchedule)
}

func TestSnapshotScheduleDefault(t *testing.T) {
	t.Setenv("ANALYTICS_SNAPSHOT_SCHEDULE", "")
	os.Unsetenv("ANALYTICS_SNAPSHOT_SCHEDULE")

	assert.Equal(t, "*/15 * * * *", Load().SnapshotSchedule)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("NEARBY_CANDIDATE_LIMIT", "lots")
	t.Setenv("ANALYTICS_CACHE_TTL_SECONDS", "-1")

	cfg := Load()
	assert.Equal(t, 1000, cfg.NearbyLimit)
	assert.Equal(t, 5*time.Minute, cfg.AnalyticsTTL)
}
