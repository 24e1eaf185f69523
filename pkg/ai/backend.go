// Package ai provides a uniform inference backend over the available
// providers: a native schema-capable endpoint, an embedded local model served
// through an OpenAI-compatible API, and an optional secondary small model for
// summarization. The provider is chosen once at initialization from the
// declared capability set and never re-selected mid-session.
//
// Operations degrade to sentinel values instead of failing the caller: a
// missing capability or malformed model output yields a well-defined
// placeholder, never an error. Only one request may execute at a time per
// session; callers serialize access, typically through a sequential queue.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RadhiFadlillah/whatlanggo"
	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/nebulink/nebulink/pkg/config"
	"github.com/nebulink/nebulink/pkg/domain"
)

// Provider identifies the active inference provider
type Provider string

// supported providers
const (
	ProviderNative   Provider = "native"   // remote schema-capable endpoint
	ProviderEmbedded Provider = "embedded" // local model, free-text output
)

// Capabilities declares which inference features the environment offers.
// Supplied by the caller at construction, it gates which code paths execute.
type Capabilities struct {
	Detector   bool // dedicated language detector available
	Summarizer bool // dedicated summarizer model configured
	JSONMode   bool // provider supports schema-constrained JSON output
}

// NoSummaryAvailable is returned when no summarization path is usable
const NoSummaryAvailable = "No summary available"

// Language is a detected language with detector confidence
type Language struct {
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
}

// TopicsResult holds up to 5 extracted subject phrases, most prominent first
type TopicsResult struct {
	Topics []string `json:"topics"`
}

// RelevanceResult reports whether a comment discusses a topic
type RelevanceResult struct {
	IsRelevant bool `json:"isRelevant"`
}

// SentimentResult is a single sentiment classification
type SentimentResult struct {
	Sentiment   domain.Sentiment `json:"sentiment"`
	Confidence  float64          `json:"confidence"`
	Explanation string           `json:"explanation"`
}

// sentimentUnknown is the sentinel returned for any failed or malformed
// sentiment classification
var sentimentUnknown = SentimentResult{
	Sentiment:   domain.SentimentUnknown,
	Confidence:  0.0,
	Explanation: "Could not analyze sentiment.",
}

// session wraps one model endpoint. Requests against a session must not
// overlap; the backend does not serialize them internally.
type session struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	dec         decoder
	jsonMode    bool // request JSON response format
	chatFormat  bool // prompts carry the embedded chat template, stop at brace
}

// Backend is the inference entry point. It holds one primary session and may
// lazily hold a secondary session for a distinct small model.
type Backend struct {
	provider  Provider
	caps      Capabilities
	cfg       config.AIConfig
	primary   *session
	secondary *session
}

// NewBackend resolves the provider from the capability set and builds the
// primary session. An empty endpoint is an initialization error, surfaced
// once to the caller so the feature can be disabled.
func NewBackend(cfg config.AIConfig, caps Capabilities) (*Backend, error) {
	provider := Provider(cfg.Provider)
	if cfg.Provider == "" || cfg.Provider == "auto" {
		if caps.JSONMode {
			provider = ProviderNative
		} else {
			provider = ProviderEmbedded
		}
	}
	if provider != ProviderNative && provider != ProviderEmbedded {
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("ai endpoint is required")
	}

	b := &Backend{provider: provider, caps: caps, cfg: cfg}
	b.primary = newSession(cfg.Endpoint, cfg.APIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens,
		cfg.Timeout, provider == ProviderNative && caps.JSONMode)

	lgr.Printf("[INFO] ai backend initialized, provider %s, model %s", provider, cfg.Model)
	return b, nil
}

// newSession builds a session; jsonMode selects the strict decoder and JSON
// response format, otherwise the tolerant extracting decoder is used
func newSession(endpoint, apiKey, model string, temperature float64, maxTokens int,
	timeout time.Duration, jsonMode bool) *session {
	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = endpoint
	if timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	s := &session{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: float32(temperature),
		maxTokens:   maxTokens,
		jsonMode:    jsonMode,
		chatFormat:  !jsonMode,
	}
	if jsonMode {
		s.dec = strictDecoder{}
	} else {
		s.dec = extractingDecoder{}
	}
	return s
}

// Provider returns the active provider, fixed at construction
func (b *Backend) Provider() Provider { return b.provider }

// DetectLanguage identifies the language of the text. Detection is
// best-effort: without the detector capability it returns the default
// {und, 1.0} sentinel instead of blocking or failing.
func (b *Backend) DetectLanguage(text string) Language {
	if !b.caps.Detector || strings.TrimSpace(text) == "" {
		return Language{Code: "und", Confidence: 1.0}
	}
	info := whatlanggo.Detect(text)
	return Language{Code: whatlanggo.LangToString(info.Lang), Confidence: info.Confidence}
}

// Summarize produces a short summary of the text. It prefers the dedicated
// summarizer model, falls back to a prompt-driven completion on the primary
// session, and returns the fixed sentinel when neither path is usable.
func (b *Backend) Summarize(ctx context.Context, text string) string {
	if b.caps.Summarizer {
		s, err := b.summarizerSession()
		if err != nil {
			lgr.Printf("[WARN] summarizer session unavailable: %v", err)
		} else {
			out, err := b.complete(ctx, s, b.summaryPrompt(s, text), nil)
			if err == nil {
				return strings.TrimSpace(out)
			}
			lgr.Printf("[WARN] summarizer request failed: %v", err)
		}
	}
	if b.primary != nil {
		out, err := b.complete(ctx, b.primary, b.summaryPrompt(b.primary, text), nil)
		if err == nil {
			return strings.TrimSpace(out)
		}
		lgr.Printf("[WARN] summarize fallback failed: %v", err)
	}
	return NoSummaryAvailable
}

// ClassifyTopics asks the model to enumerate up to 5 short subject phrases
// discussed in the comment, order of prominence preserved. Unparseable output
// yields an empty topic list.
func (b *Backend) ClassifyTopics(ctx context.Context, comment string) TopicsResult {
	if b.primary == nil {
		return TopicsResult{Topics: []string{}}
	}

	var prompt string
	if b.primary.chatFormat {
		prompt = embeddedTopicsPrompt(comment)
	} else {
		prompt = nativeTopicsPrompt(comment)
	}

	raw, err := b.complete(ctx, b.primary, prompt, stopTokens(b.primary))
	if err != nil {
		lgr.Printf("[WARN] topic classification failed: %v", err)
		return TopicsResult{Topics: []string{}}
	}

	// the embedded model replies with a "subjects" array, the native one with
	// "topics"; accept either field
	var parsed struct {
		Topics   []string `json:"topics"`
		Subjects []string `json:"subjects"`
	}
	if err := b.primary.dec.Decode(raw, &parsed); err != nil {
		lgr.Printf("[DEBUG] topic response unparseable: %v", err)
		return TopicsResult{Topics: []string{}}
	}
	topics := parsed.Topics
	if len(topics) == 0 {
		topics = parsed.Subjects
	}
	if topics == nil {
		topics = []string{}
	}
	return TopicsResult{Topics: topics}
}

// IsRelevantToTopic reports whether the comment discusses the topic. The
// judgment is inferred from the topic-extraction result with a
// case-insensitive substring match, not asked of the model directly, to keep
// the prompt count low.
func (b *Backend) IsRelevantToTopic(ctx context.Context, comment, topic string) RelevanceResult {
	res := b.ClassifyTopics(ctx, comment)
	needle := strings.ToLower(strings.TrimSpace(topic))
	for _, subject := range res.Topics {
		if strings.Contains(strings.ToLower(subject), needle) {
			return RelevanceResult{IsRelevant: true}
		}
	}
	return RelevanceResult{IsRelevant: false}
}

// AnalyzeSentiment classifies the comment's sentiment toward the topic. A
// missing or malformed result is normalized to the unknown sentinel.
func (b *Backend) AnalyzeSentiment(ctx context.Context, comment, topic string) SentimentResult {
	if b.primary == nil {
		return sentimentUnknown
	}

	var prompt string
	if b.primary.chatFormat {
		prompt = embeddedSentimentPrompt(comment, topic)
	} else {
		prompt = nativeSentimentPrompt(comment, topic)
	}

	raw, err := b.complete(ctx, b.primary, prompt, stopTokens(b.primary))
	if err != nil {
		lgr.Printf("[WARN] sentiment analysis failed: %v", err)
		return sentimentUnknown
	}

	var result SentimentResult
	if err := b.primary.dec.Decode(raw, &result); err != nil {
		lgr.Printf("[DEBUG] sentiment response unparseable: %v", err)
		return sentimentUnknown
	}

	switch result.Sentiment {
	case domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral, domain.SentimentUnknown:
		return result
	default:
		return sentimentUnknown
	}
}

// summarizerSession lazily builds the secondary session for the small
// summarizer model. Falls back to the secondary config only; a missing
// endpoint is an error handled by the caller.
func (b *Backend) summarizerSession() (*session, error) {
	if b.secondary != nil {
		return b.secondary, nil
	}
	sec := b.cfg.Secondary
	if sec.Endpoint == "" || sec.Model == "" {
		return nil, fmt.Errorf("secondary model not configured")
	}
	b.secondary = newSession(sec.Endpoint, sec.APIKey, sec.Model, b.cfg.Temperature, b.cfg.MaxTokens,
		b.cfg.Timeout, false)
	lgr.Printf("[INFO] secondary ai session initialized, model %s", sec.Model)
	return b.secondary, nil
}

// summaryPrompt picks the prompt flavor matching the session's format
func (b *Backend) summaryPrompt(s *session, text string) string {
	if s.chatFormat {
		return embeddedSummaryPrompt(text)
	}
	return nativeSummaryPrompt(text)
}

// stopTokens returns the stop condition for free-text sessions: generation
// halts at the closing brace, re-appended before decoding
func stopTokens(s *session) []string {
	if s.chatFormat {
		return []string{"}"}
	}
	return nil
}

// complete issues a single chat completion against the session. For
// brace-stopped sessions the trimmed output gets its closing brace back so
// the extracting decoder sees a complete object.
func (b *Backend) complete(ctx context.Context, s *session, prompt string, stop []string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
		Stop:        stop,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if s.jsonMode {
		req.Messages = []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: nativeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	content := resp.Choices[0].Message.Content
	if len(stop) > 0 {
		content = strings.TrimSpace(content) + "}"
	}
	return content, nil
}

// LanguageMatches reports whether a detected language code belongs to the
// given BCP-47 locale, comparing primary subtags so that "en-US" matches both
// "en" and ISO 639-3 "eng"
func LanguageMatches(locale, code string) bool {
	locale = strings.ToLower(locale)
	code = strings.ToLower(code)
	if locale == "" || code == "" || code == "und" {
		return false
	}
	base := locale
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		base = locale[:i]
	}
	return strings.HasPrefix(code, base)
}
