package census_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/tracts/internal/census"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	logger := slog.Default()

	t.Run("create ACS5 provider successfully", func(t *testing.T) {
		config := census.ProviderConfig{
			Type:      census.ProviderTypeACS5,
			APIKey:    "test-api-key",
			RateLimit: 10,
			Logger:    logger,
		}

		provider, err := census.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
		// Verify it's an ACSProvider by type assertion
		_, ok := provider.(*census.ACSProvider)
		assert.True(t, ok, "expected provider to be *ACSProvider")
	})

	t.Run("create provider without rate limit", func(t *testing.T) {
		config := census.ProviderConfig{
			Type:   census.ProviderTypeACS5,
			APIKey: "test-api-key",
			Logger: logger,
		}

		provider, err := census.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
	})

	t.Run("create provider without API key fails", func(t *testing.T) {
		config := census.ProviderConfig{
			Type:   census.ProviderTypeACS5,
			APIKey: "", // Empty API key
			Logger: logger,
		}

		provider, err := census.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "API key is required for census provider")
	})

	t.Run("unsupported provider type", func(t *testing.T) {
		config := census.ProviderConfig{
			Type:   census.ProviderType("sf1"),
			APIKey: "test-api-key",
			Logger: logger,
		}

		provider, err := census.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type: sf1")
	})

	t.Run("1-year estimates are not available for tracts", func(t *testing.T) {
		config := census.ProviderConfig{
			Type:   census.ProviderType("acs1"),
			APIKey: "test-api-key",
			Logger: logger,
		}

		provider, err := census.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type: acs1")
	})

	t.Run("empty provider type", func(t *testing.T) {
		config := census.ProviderConfig{
			Type:   census.ProviderType(""),
			Logger: logger,
		}

		provider, err := census.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type")
	})
}

func TestProviderType_Constants(t *testing.T) {
	assert.Equal(t, "acs5", string(census.ProviderTypeACS5))
}
