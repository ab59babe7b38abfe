package config_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/tracts/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("TRACTS_ENV", "local")
	t.Setenv("TRACTS_CENSUS_KEY", "testAPIKey")
	t.Setenv("TRACTS_DATASET", "acs5")
	t.Setenv("TRACTS_YEAR", "2019")
	t.Setenv("TRACTS_OUTPUT", "out.csv")
	t.Setenv("TRACTS_COORDS_FILES", "a.txt, b.txt,,")
	t.Setenv("TRACTS_MAX_ATTEMPTS", "5")
	t.Setenv("TRACTS_BACKOFF", "250ms")
	t.Setenv("TRACTS_RATE_LIMIT", "2")
	t.Setenv("TRACTS_TIMEOUT", "5s")
	t.Setenv("TRACTS_METRICS_FILE", "tracts.prom")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, "acs5", cfg.Dataset)
	assert.Equal(t, 2019, cfg.Year)
	assert.Equal(t, "out.csv", cfg.OutputPath)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.CoordsFiles)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Backoff)
	assert.Equal(t, 2, cfg.RateLimit)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "tracts.prom", cfg.MetricsFile)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.True(t, cfg.Database.Enabled())
}

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "acs5", cfg.Dataset)
	assert.Equal(t, 2010, cfg.Year)
	assert.Equal(t, "SF_2010_ACS.csv", cfg.OutputPath)
	assert.Equal(t, []string{"tract_coords_2010.txt"}, cfg.CoordsFiles)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Backoff)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.False(t, cfg.Database.Enabled())
}

func TestMustLoad_YearError(t *testing.T) {
	t.Setenv("TRACTS_YEAR", "error_value")

	assert.PanicsWithValue(t, "failed to parse year from configuration, must be an integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_AttemptsError(t *testing.T) {
	t.Setenv("TRACTS_MAX_ATTEMPTS", "0")

	assert.PanicsWithValue(t, "failed to parse max attempts from configuration, must be a positive integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_BackoffError(t *testing.T) {
	t.Setenv("TRACTS_BACKOFF", "error_value")

	assert.PanicsWithValue(t, "failed to parse backoff from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RateLimitError(t *testing.T) {
	t.Setenv("TRACTS_RATE_LIMIT", "error_value")

	assert.PanicsWithValue(t, "failed to parse rate limit from configuration, must be an integer", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TimeoutError(t *testing.T) {
	t.Setenv("TRACTS_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse timeout from configuration", func() {
		config.MustLoad()
	})
}
