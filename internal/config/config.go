package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "BLOGMOOD_CONFIG"
	accessTokenEnv = "HF_ACCESS_TOKEN"
	databaseEnv    = "BLOGMOOD_DB_PATH"
)

// Config holds every setting the application needs for one run.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Crawler    CrawlerConfig    `yaml:"crawler"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Output     OutputConfig     `yaml:"output"`
	Labels     []LabelConfig    `yaml:"labels"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CrawlerConfig describes how the blog platform is reached and how
// aggressively it is crawled.
type CrawlerConfig struct {
	DirectoryURL    string `yaml:"directoryUrl"`
	UserAgent       string `yaml:"userAgent"`
	TimeoutSeconds  int    `yaml:"timeoutSeconds"`
	DelayMinSeconds int    `yaml:"delayMinSeconds"`
	DelayMaxSeconds int    `yaml:"delayMaxSeconds"`
}

// Timeout returns the per-request timeout.
func (c CrawlerConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DelayBounds returns the randomized inter-request pause bounds.
func (c CrawlerConfig) DelayBounds() (min, max time.Duration) {
	return time.Duration(c.DelayMinSeconds) * time.Second,
		time.Duration(c.DelayMaxSeconds) * time.Second
}

// ClassifierConfig describes the external text-classification endpoint.
type ClassifierConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
}

// OutputConfig describes where run artifacts land. DatabasePath is
// optional; an empty value disables the run-history store.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	DatabasePath string `yaml:"databasePath"`
}

// LabelConfig binds one raw classifier label to a meaning and a category.
// The table mirrors one specific model's vocabulary and must be replaced
// together with the classifier backend.
type LabelConfig struct {
	Label    string `yaml:"label"`
	Meaning  string `yaml:"meaning"`
	Category string `yaml:"category"`
}

// Load reads YAML configuration from path (falling back to the
// BLOGMOOD_CONFIG env var, then to defaults) and applies env overrides.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(accessTokenEnv); v != "" {
		c.Classifier.APIKey = v
	}
	if v := os.Getenv(databaseEnv); v != "" {
		c.Output.DatabasePath = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Crawler.DirectoryURL != "" {
		base.Crawler.DirectoryURL = override.Crawler.DirectoryURL
	}
	if override.Crawler.UserAgent != "" {
		base.Crawler.UserAgent = override.Crawler.UserAgent
	}
	if override.Crawler.TimeoutSeconds > 0 {
		base.Crawler.TimeoutSeconds = override.Crawler.TimeoutSeconds
	}
	if override.Crawler.DelayMinSeconds > 0 || override.Crawler.DelayMaxSeconds > 0 {
		base.Crawler.DelayMinSeconds = override.Crawler.DelayMinSeconds
		base.Crawler.DelayMaxSeconds = override.Crawler.DelayMaxSeconds
	}

	if override.Classifier.Endpoint != "" {
		base.Classifier.Endpoint = override.Classifier.Endpoint
	}
	if override.Classifier.APIKey != "" {
		base.Classifier.APIKey = override.Classifier.APIKey
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.DatabasePath != "" {
		base.Output.DatabasePath = override.Output.DatabasePath
	}

	if len(override.Labels) > 0 {
		base.Labels = override.Labels
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Crawler: CrawlerConfig{
			DirectoryURL:    "https://sakurazaka46.com/s/s46/diary/blog/list?ima=0000",
			UserAgent:       "Mozilla/5.0",
			TimeoutSeconds:  10,
			DelayMinSeconds: 2,
			DelayMaxSeconds: 5,
		},
		Classifier: ClassifierConfig{
			Endpoint: "https://api-inference.huggingface.co/models/koshin2001/Japanese-to-emotions",
		},
		Output: OutputConfig{Dir: "."},
	}
}
