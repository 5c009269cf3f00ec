package restdb

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Config struct {
	BaseURL    string
	Collection string
	APIKey     string
}

type ConfigErrorCode string

const (
	ConfigErrorMissingBaseURL    ConfigErrorCode = "missing_base_url"
	ConfigErrorInvalidBaseURL    ConfigErrorCode = "invalid_base_url"
	ConfigErrorMissingCollection ConfigErrorCode = "missing_collection"
	ConfigErrorMissingAPIKey     ConfigErrorCode = "missing_api_key"
)

type ConfigError struct {
	Code  ConfigErrorCode
	Value string
	Cause error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "invalid restdb config"
	}
	switch e.Code {
	case ConfigErrorMissingBaseURL:
		return "RESTDB_BASE_URL is required"
	case ConfigErrorInvalidBaseURL:
		return fmt.Sprintf(
			"invalid RESTDB_BASE_URL=%q; expected absolute URL like https://matrix-abc1.restdb.io",
			e.Value,
		)
	case ConfigErrorMissingCollection:
		return "RESTDB_COLLECTION is required"
	case ConfigErrorMissingAPIKey:
		return "RESTDB_API_KEY is required"
	default:
		return "invalid restdb config"
	}
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func ResolveConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:    strings.TrimSpace(os.Getenv("RESTDB_BASE_URL")),
		Collection: strings.TrimSpace(os.Getenv("RESTDB_COLLECTION")),
		APIKey:     strings.TrimSpace(os.Getenv("RESTDB_API_KEY")),
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if cfg.BaseURL == "" {
		return &ConfigError{Code: ConfigErrorMissingBaseURL}
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || strings.TrimSpace(parsed.Scheme) == "" || strings.TrimSpace(parsed.Host) == "" {
		return &ConfigError{
			Code:  ConfigErrorInvalidBaseURL,
			Value: cfg.BaseURL,
			Cause: err,
		}
	}
	if strings.TrimSpace(cfg.Collection) == "" {
		return &ConfigError{Code: ConfigErrorMissingCollection}
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return &ConfigError{Code: ConfigErrorMissingAPIKey}
	}
	return nil
}
