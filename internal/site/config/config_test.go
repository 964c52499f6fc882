package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.Port != 8787 {
		t.Errorf("expected Port=8787, got %d", cfg.Port)
	}
	if cfg.HistoryDB != "/var/lib/sitewatch/history.db" {
		t.Errorf("unexpected HistoryDB %q", cfg.HistoryDB)
	}
	if cfg.HistoryRetentionDays != 120 {
		t.Errorf("expected HistoryRetentionDays=120, got %d", cfg.HistoryRetentionDays)
	}
	if cfg.ReportURL != "" || cfg.TopSitesFile != "" {
		t.Errorf("expected empty ReportURL and TopSitesFile, got %q %q", cfg.ReportURL, cfg.TopSitesFile)
	}
	if cfg.SuffixCacheSize != 4096 || cfg.TabCapacity != 512 {
		t.Errorf("unexpected sizes: cache=%d tabs=%d", cfg.SuffixCacheSize, cfg.TabCapacity)
	}
	if cfg.BloomFPRate != 0.01 {
		t.Errorf("expected BloomFPRate=0.01, got %v", cfg.BloomFPRate)
	}
}

func TestLoad_ValidOverrides(t *testing.T) {
	topSites := filepath.Join(t.TempDir(), "top.txt")
	if err := os.WriteFile(topSites, []byte("example.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SITEWATCH_ENV", "dev")
	t.Setenv("SITEWATCH_LOG_LEVEL", "debug")
	t.Setenv("SITEWATCH_PORT", "9000")
	t.Setenv("SITEWATCH_HISTORY_DB", "/tmp/history.db")
	t.Setenv("SITEWATCH_HISTORY_RETENTION_DAYS", "365")
	t.Setenv("SITEWATCH_TOP_SITES_FILE", topSites)
	t.Setenv("SITEWATCH_REPORT_URL", "http://localhost:8080")
	t.Setenv("SITEWATCH_REPORT_TIMEOUT_SECONDS", "30")
	t.Setenv("SITEWATCH_SUFFIX_CACHE_SIZE", "0")
	t.Setenv("SITEWATCH_TAB_CAPACITY", "64")
	t.Setenv("SITEWATCH_BLOOM_FP_RATE", "0.001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "dev" || cfg.LogLevel != "debug" || cfg.Port != 9000 {
		t.Errorf("unexpected base overrides: %+v", cfg)
	}
	if cfg.HistoryDB != "/tmp/history.db" || cfg.HistoryRetentionDays != 365 {
		t.Errorf("unexpected history overrides: %+v", cfg)
	}
	if cfg.TopSitesFile != topSites {
		t.Errorf("expected TopSitesFile=%q, got %q", topSites, cfg.TopSitesFile)
	}
	if cfg.ReportURL != "http://localhost:8080" || cfg.ReportTimeoutSeconds != 30 {
		t.Errorf("unexpected report overrides: %+v", cfg)
	}
	if cfg.SuffixCacheSize != 0 || cfg.TabCapacity != 64 || cfg.BloomFPRate != 0.001 {
		t.Errorf("unexpected size overrides: %+v", cfg)
	}
}

func TestLoad_WhenKoanfDefaultLoadFails(t *testing.T) {
	orig := defaultLoader
	defaultLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { defaultLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading defaults, got nil")
	}
}

func TestLoad_WhenKoanfEnvLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { envLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading env, got nil")
	}
}

func TestLoad_RegisterValidationFails(t *testing.T) {
	orig := registerValidation
	registerValidation = func(v *validator.Validate) error { return errors.New("mocked validation error") }
	defer func() { registerValidation = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked validation error") {
		t.Fatal("expected error when registering validation, got nil")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"env", map[string]string{"SITEWATCH_ENV": "staging"}},
		{"log level", map[string]string{"SITEWATCH_LOG_LEVEL": "trace"}},
		{"port range", map[string]string{"SITEWATCH_PORT": "99999"}},
		{"port nan", map[string]string{"SITEWATCH_PORT": "not_a_number"}},
		{"retention", map[string]string{"SITEWATCH_HISTORY_RETENTION_DAYS": "30"}},
		{"top sites missing", map[string]string{"SITEWATCH_TOP_SITES_FILE": "/nonexistent/top.json"}},
		{"report http in prod", map[string]string{"SITEWATCH_REPORT_URL": "http://reports.example"}},
		{"report scheme", map[string]string{"SITEWATCH_REPORT_URL": "ftp://reports.example"}},
		{"report timeout", map[string]string{"SITEWATCH_REPORT_TIMEOUT_SECONDS": "0"}},
		{"tab capacity", map[string]string{"SITEWATCH_TAB_CAPACITY": "0"}},
		{"bloom rate", map[string]string{"SITEWATCH_BLOOM_FP_RATE": "1.5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %v, got nil", tc.env)
			}
		})
	}
}

func TestValidHTTPSURL(t *testing.T) {
	cases := []struct {
		env      string
		input    string
		expected bool
	}{
		{"prod", "https://reports.example", true},
		{"prod", "https://reports.example:8443/base", true},
		{"prod", "http://reports.example", false},
		{"prod", "https://", false},
		{"prod", "reports.example", false},
		{"prod", "", true}, // reporting disabled
		{"dev", "http://localhost:8080", true},
		{"dev", "ftp://localhost", false},
	}

	validate := validator.New()
	_ = validate.RegisterValidation("https_url", validHTTPSURL)

	for _, tc := range cases {
		cfg := &AppConfig{Env: tc.env, ReportURL: tc.input}
		err := validate.StructPartial(cfg, "ReportURL")
		if tc.expected && err != nil {
			t.Errorf("validHTTPSURL(%q, env=%s) = false, want true", tc.input, tc.env)
		}
		if !tc.expected && err == nil {
			t.Errorf("validHTTPSURL(%q, env=%s) = true, want false", tc.input, tc.env)
		}
	}
}

func TestDefaultLoader_LoadsDefaults(t *testing.T) {
	k := koanf.New(".")
	if err := defaultLoader(k); err != nil {
		t.Fatalf("defaultLoader returned error: %v", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if cfg != DEFAULT_APP_CONFIG {
		t.Errorf("expected defaults %+v, got %+v", DEFAULT_APP_CONFIG, cfg)
	}
}
