package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the cache options.
const (
	DefaultAPIURL         = "https://api.track.toggl.com/api/v9"
	DefaultCacheTTLMillis = 3600000
	DefaultCacheMaxSize   = 1000
	DefaultCacheBatchSize = 100
)

// Config is the effective process configuration.
type Config struct {
	APIToken           string
	APIURL             string
	CacheTTL           time.Duration
	CacheMaxSize       int
	CacheBatchSize     int
	DefaultWorkspaceID int64
	LogLevel           string
}

// Load reads configuration from TOGGL_-prefixed environment variables,
// applying defaults. A missing API token or a malformed numeric option is an
// error; the caller is expected to treat it as fatal.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TOGGL")
	v.AutomaticEnv()
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("cache_ttl_ms", strconv.Itoa(DefaultCacheTTLMillis))
	v.SetDefault("cache_max_size", strconv.Itoa(DefaultCacheMaxSize))
	v.SetDefault("cache_batch_size", strconv.Itoa(DefaultCacheBatchSize))
	v.SetDefault("log_level", "info")

	cfg := Config{
		APIToken: v.GetString("api_token"),
		APIURL:   v.GetString("api_url"),
		LogLevel: v.GetString("log_level"),
	}
	if cfg.APIToken == "" {
		return Config{}, errors.New("TOGGL_API_TOKEN is not set")
	}

	ttlMillis, err := parsePositive(v.GetString("cache_ttl_ms"), "TOGGL_CACHE_TTL_MS")
	if err != nil {
		return Config{}, err
	}
	cfg.CacheTTL = time.Duration(ttlMillis) * time.Millisecond

	maxSize, err := parsePositive(v.GetString("cache_max_size"), "TOGGL_CACHE_MAX_SIZE")
	if err != nil {
		return Config{}, err
	}
	cfg.CacheMaxSize = int(maxSize)

	batchSize, err := parsePositive(v.GetString("cache_batch_size"), "TOGGL_CACHE_BATCH_SIZE")
	if err != nil {
		return Config{}, err
	}
	cfg.CacheBatchSize = int(batchSize)

	if raw := v.GetString("default_workspace_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TOGGL_DEFAULT_WORKSPACE_ID must be an integer: %w", err)
		}
		cfg.DefaultWorkspaceID = id
	}

	return cfg, nil
}

func parsePositive(raw, name string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}
