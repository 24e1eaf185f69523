package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for generated links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:nebulink.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Upstream UpstreamConfig `yaml:"upstream" json:"upstream" jsonschema:"description=Upstream social network API configuration"`

	AI AIConfig `yaml:"ai" json:"ai" jsonschema:"description=AI inference configuration"`

	Feed FeedConfig `yaml:"feed" json:"feed" jsonschema:"description=Feed pipeline configuration"`
}

// UpstreamConfig holds settings for the upstream social network API
type UpstreamConfig struct {
	Instance  string        `yaml:"instance" json:"instance" jsonschema:"default=https://mastodon.social,description=Default instance used without an active account"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout for upstream calls"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Nebulink/1.0,description=User agent for upstream requests"`
}

// CapabilityConfig declares the device/environment inference capabilities
type CapabilityConfig struct {
	Detector   bool `yaml:"detector" json:"detector" jsonschema:"default=true,description=Dedicated language detector available"`
	Summarizer bool `yaml:"summarizer" json:"summarizer" jsonschema:"default=false,description=Dedicated summarizer model configured"`
	JSONMode   bool `yaml:"json_mode" json:"json_mode" jsonschema:"default=false,description=Provider supports schema-constrained JSON output"`
}

// SecondaryAIConfig holds the optional secondary small model
type SecondaryAIConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible endpoint of the secondary model"`
	APIKey   string `yaml:"api_key" json:"api_key" jsonschema:"description=API key for the secondary model"`
	Model    string `yaml:"model" json:"model" jsonschema:"description=Secondary model name"`
}

// AIConfig holds AI inference configuration
type AIConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable AI features"`
	Provider     string            `yaml:"provider" json:"provider" jsonschema:"default=auto,enum=auto,enum=native,enum=embedded,description=Inference provider selection"`
	Endpoint     string            `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string            `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string            `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gemma-3-1b-it or gpt-4o-mini)"`
	Temperature  float64           `yaml:"temperature" json:"temperature" jsonschema:"default=0.1,description=Temperature for response generation"`
	MaxTokens    int               `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1024,description=Maximum tokens in response"`
	Timeout      time.Duration     `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Inference request timeout"`
	Locale       string            `yaml:"locale" json:"locale" jsonschema:"default=en-US,description=Locale driving the language pre-filter"`
	Capabilities CapabilityConfig  `yaml:"capabilities" json:"capabilities" jsonschema:"description=Declared inference capabilities"`
	Secondary    SecondaryAIConfig `yaml:"secondary" json:"secondary" jsonschema:"description=Secondary small model configuration"`
}

// FeedConfig holds feed pipeline configuration
type FeedConfig struct {
	SafetyFilter bool          `yaml:"safety_filter" json:"safety_filter" jsonschema:"default=true,description=Drop items matching the content-safety denylist"`
	SafetyWords  []string      `yaml:"safety_words" json:"safety_words" jsonschema:"description=Content-safety denylist (whole-word, case-insensitive)"`
	QueueDelay   time.Duration `yaml:"queue_delay" json:"queue_delay" jsonschema:"default=100ms,description=Delay between sequential enrichment jobs"`
}

// defaultSafetyWords is the fixed denylist applied unless the user opts out
var defaultSafetyWords = []string{
	"nsfw", "18+", "explicit", "lewd", "adult", "topless", "nude", "naked",
	"tits", "tiddies", "boobs", "sex", "booty", "ass", "porn",
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:nebulink.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Upstream.Instance == "" {
		c.Upstream.Instance = "https://mastodon.social"
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 30 * time.Second
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "Nebulink/1.0"
	}

	if c.AI.Provider == "" {
		c.AI.Provider = "auto"
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.1
	}
	if c.AI.MaxTokens == 0 {
		c.AI.MaxTokens = 1024
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 60 * time.Second
	}
	if c.AI.Locale == "" {
		c.AI.Locale = "en-US"
	}

	if len(c.Feed.SafetyWords) == 0 {
		c.Feed.SafetyWords = defaultSafetyWords
	}
	if c.Feed.QueueDelay == 0 {
		c.Feed.QueueDelay = 100 * time.Millisecond
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.AI.Enabled {
		if cfg.AI.Endpoint == "" {
			return fmt.Errorf("ai.endpoint is required when ai is enabled")
		}
		if cfg.AI.Model == "" {
			return fmt.Errorf("ai.model is required when ai is enabled")
		}
		if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
			return fmt.Errorf("ai.temperature must be between 0 and 2")
		}
		switch cfg.AI.Provider {
		case "auto", "native", "embedded":
		default:
			return fmt.Errorf("ai.provider must be auto, native or embedded")
		}
	}

	if cfg.Upstream.Timeout < time.Second {
		return fmt.Errorf("upstream timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAIConfig returns AI configuration
func (c *Config) GetAIConfig() AIConfig {
	return c.AI
}

// GetFeedConfig returns feed pipeline configuration
func (c *Config) GetFeedConfig() FeedConfig {
	return c.Feed
}

// GetUpstreamConfig returns upstream API configuration
func (c *Config) GetUpstreamConfig() UpstreamConfig {
	return c.Upstream
}
