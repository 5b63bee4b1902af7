package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load("")

	if cfg.Crawler.DirectoryURL == "" {
		t.Fatal("default directory url must be set")
	}
	if cfg.Crawler.DelayMinSeconds != 2 || cfg.Crawler.DelayMaxSeconds != 5 {
		t.Fatalf("unexpected default delay bounds: %d-%d", cfg.Crawler.DelayMinSeconds, cfg.Crawler.DelayMaxSeconds)
	}
	if cfg.Classifier.Endpoint == "" {
		t.Fatal("default classifier endpoint must be set")
	}
	if len(cfg.Labels) != 0 {
		t.Fatal("defaults carry no label overrides")
	}
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: debug
crawler:
  userAgent: custom-agent
  delayMinSeconds: 1
  delayMaxSeconds: 3
classifier:
  endpoint: https://inference.example.org/classify
labels:
  - label: POSITIVE
    meaning: joy
    category: positive
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Load(path)

	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Logging.Level)
	}
	if cfg.Crawler.UserAgent != "custom-agent" {
		t.Fatalf("unexpected user agent: %s", cfg.Crawler.UserAgent)
	}
	if cfg.Crawler.DirectoryURL == "" {
		t.Fatal("unset file fields keep their defaults")
	}
	if cfg.Classifier.Endpoint != "https://inference.example.org/classify" {
		t.Fatalf("unexpected endpoint: %s", cfg.Classifier.Endpoint)
	}
	if len(cfg.Labels) != 1 || cfg.Labels[0].Label != "POSITIVE" {
		t.Fatalf("unexpected labels: %+v", cfg.Labels)
	}

	min, max := cfg.Crawler.DelayBounds()
	if min != time.Second || max != 3*time.Second {
		t.Fatalf("unexpected delay bounds: %v-%v", min, max)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HF_ACCESS_TOKEN", "env-token")
	t.Setenv("BLOGMOOD_DB_PATH", "/tmp/runs.db")

	cfg := Load("")

	if cfg.Classifier.APIKey != "env-token" {
		t.Fatalf("unexpected api key: %s", cfg.Classifier.APIKey)
	}
	if cfg.Output.DatabasePath != "/tmp/runs.db" {
		t.Fatalf("unexpected db path: %s", cfg.Output.DatabasePath)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if cfg.Crawler.DirectoryURL == "" {
		t.Fatal("missing config file must fall back to defaults")
	}
}

func TestCrawlerTimeoutDefault(t *testing.T) {
	var c CrawlerConfig
	if c.Timeout() != 10*time.Second {
		t.Fatalf("unexpected fallback timeout: %v", c.Timeout())
	}
}
