package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
// PAGEBLADE_URL and PAGEBLADE_API_KEY are also read by the client itself.
const EnvPrefix = "PAGEBLADE"

// Load loads the configuration. A missing config file is not an error unless
// configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("pageblade")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pageblade"))
		}

		// Check /etc
		v.AddConfigPath("/etc/pageblade/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults; an empty URL defers to the client's own resolution
	v.SetDefault("api.url", "")
	v.SetDefault("api.api_key", "")
	v.SetDefault("api.default_tenant", "")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.insecure_skip_verify", false)
	v.SetDefault("api.tracing", false)

	// Retry defaults
	v.SetDefault("retry.max_retries", 2)
	v.SetDefault("retry.initial_backoff", "1s")
	v.SetDefault("retry.max_backoff", "30s")

	// Output defaults
	v.SetDefault("output.format", "json")
	v.SetDefault("output.batch_concurrency", 5)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps PAGEBLADE_* variables onto config keys
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names shared with the client library
	_ = v.BindEnv("api.url", EnvPrefix+"_URL")
	_ = v.BindEnv("api.api_key", EnvPrefix+"_API_KEY")
	_ = v.BindEnv("api.default_tenant", EnvPrefix+"_TENANT_ID")
	_ = v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL")
}

// validate checks if the configuration is valid and reports every problem
func validate(cfg *Config) error {
	var result *multierror.Error

	if cfg.API.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("api.timeout must not be negative"))
	}

	if cfg.Retry.MaxRetries < 0 {
		result = multierror.Append(result, fmt.Errorf("retry.max_retries must not be negative"))
	}
	if cfg.Retry.MaxRetries > 0 && cfg.Retry.InitialBackoff <= 0 {
		result = multierror.Append(result, fmt.Errorf("retry.initial_backoff must be positive when retries are enabled"))
	}
	if cfg.Retry.MaxBackoff > 0 && cfg.Retry.MaxBackoff < cfg.Retry.InitialBackoff {
		result = multierror.Append(result, fmt.Errorf("retry.max_backoff must not be less than retry.initial_backoff"))
	}

	validOutputs := map[string]bool{
		"json": true,
		"yaml": true,
	}
	if !validOutputs[cfg.Output.Format] {
		result = multierror.Append(result, fmt.Errorf("invalid output format: %s", cfg.Output.Format))
	}
	if cfg.Output.BatchConcurrency < 1 {
		result = multierror.Append(result, fmt.Errorf("output.batch_concurrency must be at least 1"))
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		result = multierror.Append(result, fmt.Errorf("invalid logging level: %s", cfg.Logging.Level))
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		result = multierror.Append(result, fmt.Errorf("invalid logging format: %s", cfg.Logging.Format))
	}

	return result.ErrorOrNil()
}
