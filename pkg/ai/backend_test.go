package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulink/nebulink/pkg/config"
	"github.com/nebulink/nebulink/pkg/domain"
)

// chatServer returns an OpenAI-compatible endpoint replying with the given
// message content
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testConfig(endpoint, provider string) config.AIConfig {
	return config.AIConfig{
		Enabled:  true,
		Provider: provider,
		Endpoint: endpoint,
		Model:    "test-model",
	}
}

func TestNewBackend_ProviderResolution(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		caps     Capabilities
		expected Provider
	}{
		{name: "auto with json mode", provider: "auto", caps: Capabilities{JSONMode: true}, expected: ProviderNative},
		{name: "auto without json mode", provider: "auto", caps: Capabilities{}, expected: ProviderEmbedded},
		{name: "explicit native", provider: "native", caps: Capabilities{}, expected: ProviderNative},
		{name: "explicit embedded", provider: "embedded", caps: Capabilities{JSONMode: true}, expected: ProviderEmbedded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBackend(testConfig("http://localhost:9999/v1", tt.provider), tt.caps)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.Provider())
		})
	}
}

func TestNewBackend_Errors(t *testing.T) {
	_, err := NewBackend(testConfig("", "embedded"), Capabilities{})
	assert.Error(t, err, "empty endpoint rejected")

	_, err = NewBackend(testConfig("http://localhost:9999/v1", "bogus"), Capabilities{})
	assert.Error(t, err, "unknown provider rejected")
}

func TestBackend_AnalyzeSentiment(t *testing.T) {
	srv := chatServer(t, `{"sentiment":"positive","confidence":0.9,"explanation":"upbeat tone"`)
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	res := b.AnalyzeSentiment(context.Background(), "this is great", "testing")
	assert.Equal(t, domain.SentimentPositive, res.Sentiment)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)
	assert.Equal(t, "upbeat tone", res.Explanation)
}

func TestBackend_AnalyzeSentimentInvalidLabel(t *testing.T) {
	srv := chatServer(t, `{"sentiment":"ecstatic","confidence":0.9,"explanation":"made up label"`)
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	res := b.AnalyzeSentiment(context.Background(), "whatever", "testing")
	assert.Equal(t, domain.SentimentUnknown, res.Sentiment)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, "Could not analyze sentiment.", res.Explanation)
}

func TestBackend_AnalyzeSentimentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	res := b.AnalyzeSentiment(context.Background(), "whatever", "testing")
	assert.Equal(t, domain.SentimentUnknown, res.Sentiment, "failure degrades to sentinel")
}

func TestBackend_ClassifyTopicsSubjectsField(t *testing.T) {
	srv := chatServer(t, `{"subjects":["climate change","politics"]`)
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	res := b.ClassifyTopics(context.Background(), "long discussion about climate")
	assert.Equal(t, []string{"climate change", "politics"}, res.Topics)
}

func TestBackend_ClassifyTopicsUnparseable(t *testing.T) {
	srv := chatServer(t, "I cannot classify this")
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	res := b.ClassifyTopics(context.Background(), "text")
	assert.Empty(t, res.Topics)
	assert.NotNil(t, res.Topics, "empty list, not nil")
}

func TestBackend_IsRelevantToTopic(t *testing.T) {
	srv := chatServer(t, `{"subjects":["Climate Change","energy policy"]`)
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	assert.True(t, b.IsRelevantToTopic(context.Background(), "comment", "climate").IsRelevant)
	assert.True(t, b.IsRelevantToTopic(context.Background(), "comment", "Energy Policy").IsRelevant)
	assert.False(t, b.IsRelevantToTopic(context.Background(), "comment", "sports").IsRelevant)
}

func TestBackend_Summarize(t *testing.T) {
	srv := chatServer(t, "A short summary of the discussion.")
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	got := b.Summarize(context.Background(), "a very long text")
	assert.Equal(t, "A short summary of the discussion.", got)
}

func TestBackend_SummarizeFailureSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "embedded"), Capabilities{})
	require.NoError(t, err)

	got := b.Summarize(context.Background(), "text")
	assert.Equal(t, NoSummaryAvailable, got)
}

func TestBackend_SummarizePrefersSecondary(t *testing.T) {
	var primaryHits, secondaryHits int

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		primaryHits++
		http.Error(w, "should not be called", http.StatusInternalServerError)
	}))
	defer primary.Close()

	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		secondaryHits++
		resp := map[string]any{"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": "tiny summary"}},
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer secondary.Close()

	cfg := testConfig(primary.URL, "embedded")
	cfg.Secondary = config.SecondaryAIConfig{Endpoint: secondary.URL, Model: "small-model"}

	b, err := NewBackend(cfg, Capabilities{Summarizer: true})
	require.NoError(t, err)

	got := b.Summarize(context.Background(), "text")
	assert.Equal(t, "tiny summary", got)
	assert.Equal(t, 0, primaryHits)
	assert.Equal(t, 1, secondaryHits)
}

func TestBackend_DetectLanguage(t *testing.T) {
	b, err := NewBackend(testConfig("http://localhost:9999/v1", "embedded"), Capabilities{Detector: true})
	require.NoError(t, err)

	lang := b.DetectLanguage("The quick brown fox jumps over the lazy dog and keeps running through the field")
	assert.Equal(t, "eng", lang.Code)
	assert.Greater(t, lang.Confidence, 0.0)
}

func TestBackend_DetectLanguageNoCapability(t *testing.T) {
	b, err := NewBackend(testConfig("http://localhost:9999/v1", "embedded"), Capabilities{Detector: false})
	require.NoError(t, err)

	lang := b.DetectLanguage("Bonjour tout le monde")
	assert.Equal(t, "und", lang.Code)
	assert.Equal(t, 1.0, lang.Confidence)
}

func TestBackend_NativeJSONMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ResponseFormat *struct {
				Type string `json:"type"`
			} `json:"response_format"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		resp := map[string]any{"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": `{"sentiment":"neutral","confidence":0.5,"explanation":"mixed"}`}},
		}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	b, err := NewBackend(testConfig(srv.URL, "native"), Capabilities{JSONMode: true})
	require.NoError(t, err)

	res := b.AnalyzeSentiment(context.Background(), "meh", "testing")
	assert.Equal(t, domain.SentimentNeutral, res.Sentiment)
}

func TestLanguageMatches(t *testing.T) {
	tests := []struct {
		locale   string
		code     string
		expected bool
	}{
		{"en-US", "eng", true},
		{"en-US", "en", true},
		{"en", "eng", true},
		{"fr-FR", "fra", true},
		{"en-US", "deu", false},
		{"en-US", "und", false},
		{"", "eng", false},
		{"en-US", "", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.locale, tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, LanguageMatches(tt.locale, tt.code))
		})
	}
}

func TestBackend_TimeoutApplied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "too late"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL, "embedded")
	cfg.Timeout = 50 * time.Millisecond
	b, err := NewBackend(cfg, Capabilities{})
	require.NoError(t, err)

	summary := b.Summarize(context.Background(), "some long text")
	assert.Equal(t, NoSummaryAvailable, summary, "slow endpoint hits the request timeout and degrades")
}
