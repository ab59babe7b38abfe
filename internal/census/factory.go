package census

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ProviderType represents the ACS dataset served by a provider.
type ProviderType string

// ProviderTypeACS5 represents the American Community Survey 5-year estimates, the only
// ACS product published at tract level.
const ProviderTypeACS5 ProviderType = "acs5"

const defaultRateLimit = 5

// ProviderConfig holds configuration for creating a census provider.
type ProviderConfig struct {
	Type      ProviderType  // Type of dataset to query
	APIKey    string        // API key for the census data API
	RateLimit int           // Rate limit for requests per second
	Timeout   time.Duration // HTTP client timeout
	BaseURL   string        // Optional override of DefaultBaseURL
	Logger    *slog.Logger  // Logger for the provider
}

// NewProvider creates a census provider based on the provided configuration.
//
// Supported provider types:
// - "acs5": ACS 5-year estimates
//
// The 1-year estimates ("acs1") have no tract geography and are rejected.
//
// Returns an error if the provider type is unsupported or the API key is missing.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeACS5:
		return newACSProvider(config)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

func newACSProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for census provider")
	}

	if config.RateLimit <= 0 {
		config.RateLimit = defaultRateLimit
		config.Logger.Warn("Rate limit for census API not set, set a default value", "value", config.RateLimit)
	}

	provider := NewACSProvider(string(config.Type), config.APIKey, config.RateLimit, config.Timeout, config.Logger)
	if config.BaseURL != "" {
		provider.baseURL = config.BaseURL
	}

	return provider, nil
}
