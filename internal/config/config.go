package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the tract extractor.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - APIKey: The census data API key.
// - Dataset: The ACS dataset to query (acs5).
// - Year: The estimate year.
// - OutputPath: The CSV file rows are appended to.
// - CoordsFiles: Tab-separated centroid reference files.
// - MaxAttempts: The number of fetch attempts before giving up on a variable.
// - Backoff: The fixed wait between attempts.
// - RateLimit: Maximum census API requests per second.
// - Timeout: HTTP timeout for a single census API request.
// - MetricsFile: Optional path for a Prometheus textfile written after the run.
// - Database: Optional PostgreSQL centroid source.
type Config struct {
	Env         string         // Env is the current environment: local, development, production.
	APIKey      string         // APIKey is the census data API key.
	Dataset     string         // Dataset is the ACS dataset name.
	Year        int            // Year is the estimate year.
	OutputPath  string         // OutputPath is the CSV file rows are appended to.
	CoordsFiles []string       // CoordsFiles are the centroid reference files.
	MaxAttempts int            // MaxAttempts bounds the fetch attempts per variable.
	Backoff     time.Duration  // Backoff is the wait between attempts.
	RateLimit   int            // RateLimit is the request rate per second.
	Timeout     time.Duration  // Timeout bounds a single HTTP request.
	MetricsFile string         // MetricsFile is the optional Prometheus textfile path.
	Database    PostgresConfig // Database holds the optional centroid database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// Enabled reports whether a centroid database is configured.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

// MustLoad reads the configuration from the environment, after loading an optional .env
// file. It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("TRACTS")
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("dataset", "acs5")
	v.SetDefault("year", "2010")
	v.SetDefault("output", "SF_2010_ACS.csv")
	v.SetDefault("coords_files", "tract_coords_2010.txt")
	v.SetDefault("max_attempts", "3")
	v.SetDefault("backoff", "1s")
	v.SetDefault("rate_limit", "5")
	v.SetDefault("timeout", "30s")

	year, err := strconv.Atoi(v.GetString("year"))
	if err != nil {
		panic("failed to parse year from configuration, must be an integer")
	}

	attempts, err := strconv.Atoi(v.GetString("max_attempts"))
	if err != nil || attempts < 1 {
		panic("failed to parse max attempts from configuration, must be a positive integer")
	}

	backoff, err := time.ParseDuration(v.GetString("backoff"))
	if err != nil {
		panic("failed to parse backoff from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("rate_limit"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer")
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		panic("failed to parse timeout from configuration")
	}

	db := viper.New()
	db.SetEnvPrefix("DB")
	db.AutomaticEnv()
	db.SetDefault("port", "5432")

	return &Config{
		Env:         v.GetString("env"),
		APIKey:      v.GetString("census_key"),
		Dataset:     v.GetString("dataset"),
		Year:        year,
		OutputPath:  v.GetString("output"),
		CoordsFiles: splitList(v.GetString("coords_files")),
		MaxAttempts: attempts,
		Backoff:     backoff,
		RateLimit:   rateLimit,
		Timeout:     timeout,
		MetricsFile: v.GetString("metrics_file"),
		Database: PostgresConfig{
			Host:     db.GetString("host"),
			Port:     db.GetString("port"),
			User:     db.GetString("username"),
			Password: db.GetString("password"),
			Name:     db.GetString("name"),
		},
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
