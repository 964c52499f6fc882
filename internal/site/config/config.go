package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Port is the TCP port the local API binds to.
	Port int `koanf:"port" validate:"required,gte=1,lt=65535"`

	// HistoryDB is the path of the bbolt browsing-history database.
	HistoryDB string `koanf:"history_db" validate:"required"`

	// HistoryRetentionDays is how long visits are kept. It must cover the
	// 90-day lookback of the visited-before check.
	HistoryRetentionDays int `koanf:"history_retention_days" validate:"gte=90"`

	// TopSitesFile optionally replaces the bundled top-site list
	// (.json, .yaml, .toml or .txt).
	TopSitesFile string `koanf:"top_sites_file" validate:"omitempty,file"`

	// ReportURL is the base URL reports are posted to. Empty disables reporting.
	ReportURL string `koanf:"report_url" validate:"omitempty,https_url"`

	ReportTimeoutSeconds int `koanf:"report_timeout_seconds" validate:"gte=1,lte=300"`

	// SuffixCacheSize bounds the suffix lookup cache; 0 disables it.
	SuffixCacheSize int `koanf:"suffix_cache_size" validate:"gte=0"`

	// TabCapacity bounds how many tabs keep a referrer chain.
	TabCapacity int `koanf:"tab_capacity" validate:"gte=1"`

	// BloomFPRate is the false-positive rate of the top-site pre-filter.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"gt=0,lt=1"`
}

// DEFAULT_APP_CONFIG defines the default application configuration settings for the daemon.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:                  "prod",
	LogLevel:             "info",
	Port:                 8787,
	HistoryDB:            "/var/lib/sitewatch/history.db",
	HistoryRetentionDays: 120,
	TopSitesFile:         "",
	ReportURL:            "",
	ReportTimeoutSeconds: 10,
	SuffixCacheSize:      4096,
	TabCapacity:          512,
	BloomFPRate:          0.01,
}

// validHTTPSURL accepts absolute https URLs. Plain http is only accepted when
// the enclosing AppConfig runs with Env "dev".
func validHTTPSURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil || u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "https":
		return true
	case "http":
		cfg, ok := fl.Top().Interface().(*AppConfig)
		if !ok {
			if v, isValue := fl.Top().Interface().(AppConfig); isValue {
				cfg, ok = &v, true
			}
		}
		return ok && cfg.Env == "dev"
	}
	return false
}

// envLoader loads environment variables with the prefix "SITEWATCH_".
// It transforms the keys to lowercase and removes the prefix,
// and can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "SITEWATCH_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "SITEWATCH_"))
			value = strings.TrimSpace(value)

			if value == "" {
				return key, value
			}

			if strings.Contains(value, " ") || strings.Contains(value, ",") {
				parts := strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
				return key, parts
			}

			return key, value
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG through the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "https_url" rule.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("https_url", validHTTPSURL)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	err = registerValidation(validate)
	if err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}

	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
