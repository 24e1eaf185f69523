package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  listen: \":9090\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "https://mastodon.social", cfg.Upstream.Instance)
	assert.Equal(t, "auto", cfg.AI.Provider)
	assert.Equal(t, "en-US", cfg.AI.Locale)
	assert.Equal(t, 100*time.Millisecond, cfg.Feed.QueueDelay)
	assert.NotEmpty(t, cfg.Feed.SafetyWords, "denylist defaults applied")
	assert.False(t, cfg.AI.Enabled)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":8181"
  timeout: 45s
upstream:
  instance: https://fosstodon.org
  timeout: 10s
ai:
  enabled: true
  provider: embedded
  endpoint: http://localhost:8080/v1
  model: gemma-3-1b-it
  locale: de-DE
  capabilities:
    detector: true
    json_mode: false
feed:
  safety_filter: false
  queue_delay: 50ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8181", cfg.Server.Listen)
	assert.Equal(t, "https://fosstodon.org", cfg.Upstream.Instance)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "embedded", cfg.AI.Provider)
	assert.Equal(t, "de-DE", cfg.AI.Locale)
	assert.True(t, cfg.AI.Capabilities.Detector)
	assert.False(t, cfg.Feed.SafetyFilter)
	assert.Equal(t, 50*time.Millisecond, cfg.Feed.QueueDelay)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_AI_KEY", "sk-secret")
	path := writeConfig(t, `
ai:
  enabled: true
  endpoint: http://localhost:8080/v1
  model: test
  api_key: ${TEST_AI_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-secret", cfg.AI.APIKey)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "ai enabled without endpoint",
			content: "ai:\n  enabled: true\n  model: test\n",
			errMsg:  "ai.endpoint is required",
		},
		{
			name:    "ai enabled without model",
			content: "ai:\n  enabled: true\n  endpoint: http://localhost/v1\n",
			errMsg:  "ai.model is required",
		},
		{
			name:    "bad provider",
			content: "ai:\n  enabled: true\n  endpoint: http://localhost/v1\n  model: m\n  provider: wasm\n",
			errMsg:  "ai.provider",
		},
		{
			name:    "tiny server timeout",
			content: "server:\n  timeout: 100ms\n",
			errMsg:  "server timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestConfig_Getters(t *testing.T) {
	path := writeConfig(t, "server:\n  listen: \":7070\"\n  timeout: 20s\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen)
	assert.Equal(t, 20*time.Second, timeout)

	assert.Equal(t, cfg.AI, cfg.GetAIConfig())
	assert.Equal(t, cfg.Feed, cfg.GetFeedConfig())
	assert.Equal(t, cfg.Upstream, cfg.GetUpstreamConfig())
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "upstream")
	assert.Contains(t, string(data), "capabilities")
}
