// Package consensus computes an aggregate sentiment verdict for a topic
// across a batch of comments: a relevance filter discards off-topic comments,
// the survivors are classified one by one, and the majority class wins with a
// confidence ratio and a summarized explanation.
package consensus

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/nebulink/nebulink/pkg/ai"
	"github.com/nebulink/nebulink/pkg/domain"
	"github.com/nebulink/nebulink/pkg/progress"
)

//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer

// Analyzer is the inference surface the engine needs
type Analyzer interface {
	IsRelevantToTopic(ctx context.Context, comment, topic string) ai.RelevanceResult
	AnalyzeSentiment(ctx context.Context, comment, topic string) ai.SentimentResult
	Summarize(ctx context.Context, text string) string
	DetectLanguage(text string) ai.Language
}

// Engine drives the two-stage filter-then-classify pipeline. Inference calls
// run strictly sequentially; the tracker reports one unit per relevance check
// and, once the relevant subset is known, one more unit per sentiment call.
type Engine struct {
	analyzer Analyzer
	tracker  *progress.Tracker
	locale   string // locale for the optional language pre-filter
}

// NewEngine creates a consensus engine
func NewEngine(analyzer Analyzer, tracker *progress.Tracker, locale string) *Engine {
	return &Engine{analyzer: analyzer, tracker: tracker, locale: locale}
}

// tie-break priority for equal sentiment counts, fixed and deterministic
var tieBreakOrder = []domain.Sentiment{
	domain.SentimentPositive,
	domain.SentimentNeutral,
	domain.SentimentNegative,
	domain.SentimentUnknown,
}

// matches a trailing run of hashtag tokens
var trailingHashtagsRe = regexp.MustCompile(`(\s*#\w+)+\s*$`)

// StripHashtags removes a trailing run of hashtag tokens from a comment
func StripHashtags(comment string) string {
	return strings.TrimSpace(trailingHashtagsRe.ReplaceAllString(comment, ""))
}

// AnalyzeFeed runs the full analysis flow over raw feed text: an optional
// language pre-filter keeps only comments matching the configured locale,
// then the consensus pipeline produces the verdict
func (e *Engine) AnalyzeFeed(ctx context.Context, comments []string, topic string) *domain.ConsensusResult {
	e.tracker.Start(len(comments), fmt.Sprintf("Analyzing topic: %s", topic))
	defer e.tracker.Finish()

	if e.locale != "" {
		filtered := make([]string, 0, len(comments))
		for _, c := range comments {
			lang := e.analyzer.DetectLanguage(StripHashtags(c))
			if lang.Code == "und" || ai.LanguageMatches(e.locale, lang.Code) {
				filtered = append(filtered, c)
			}
		}
		comments = filtered
	}

	return e.Run(ctx, comments, topic)
}

// Summarize delegates to the underlying analyzer, giving callers one entry
// point for all AI operations
func (e *Engine) Summarize(ctx context.Context, text string) string {
	return e.analyzer.Summarize(ctx, text)
}

// Run computes the sentiment consensus for the topic over the comments.
// Returns the terminal no-relevant-discussions result when the relevance
// stage discards everything; that outcome is not an error.
func (e *Engine) Run(ctx context.Context, comments []string, topic string) *domain.ConsensusResult {
	relevant := e.filterRelevant(ctx, comments, topic)
	if len(relevant) == 0 {
		return &domain.ConsensusResult{
			Topic:         topic,
			Consensus:     domain.NoRelevantDiscussions,
			Relevant:      0,
			OriginalTotal: len(comments),
		}
	}

	// the denominator grows entering the classification stage: one more unit
	// per relevant comment
	e.tracker.AddTotal(len(relevant))

	sentiments := make([]ai.SentimentResult, 0, len(relevant))
	for _, comment := range relevant {
		res := e.analyzer.AnalyzeSentiment(ctx, comment, topic)
		e.tracker.Tick(1)
		if res.Sentiment == "" {
			continue // malformed result, dropped silently
		}
		sentiments = append(sentiments, res)
	}

	counts := make(map[domain.Sentiment]int)
	for _, s := range sentiments {
		counts[s.Sentiment]++
	}

	winner := pickWinner(counts)
	confidence := 0.0
	if len(sentiments) > 0 {
		confidence = math.Round(float64(counts[winner])/float64(len(sentiments))*100) / 100
	}

	return &domain.ConsensusResult{
		Topic:         topic,
		Consensus:     string(winner),
		Relevant:      len(relevant),
		OriginalTotal: len(comments),
		Confidence:    confidence,
		Breakdown:     counts,
		Explanation:   e.explain(ctx, sentiments),
	}
}

// filterRelevant keeps the comments judged topically related, one relevance
// check per comment with a progress unit each. The trailing hashtag run is
// stripped before the check but the original comment is what survives.
func (e *Engine) filterRelevant(ctx context.Context, comments []string, topic string) []string {
	relevant := make([]string, 0, len(comments))
	for _, comment := range comments {
		res := e.analyzer.IsRelevantToTopic(ctx, StripHashtags(comment), topic)
		e.tracker.Tick(1)
		if res.IsRelevant {
			relevant = append(relevant, comment)
		}
	}
	return relevant
}

// pickWinner returns the label with the highest count; ties resolve by the
// fixed priority order
func pickWinner(counts map[domain.Sentiment]int) domain.Sentiment {
	winner := domain.SentimentUnknown
	best := -1
	for _, label := range tieBreakOrder {
		if c := counts[label]; c > best {
			winner = label
			best = c
		}
	}
	return winner
}

// explain concatenates the per-comment explanations into a numbered list and
// summarizes it into one human-readable paragraph
func (e *Engine) explain(ctx context.Context, sentiments []ai.SentimentResult) string {
	if len(sentiments) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, s := range sentiments {
		sb.WriteString(fmt.Sprintf("View#%d %s \n", i+1, s.Explanation))
	}
	summary := e.analyzer.Summarize(ctx, sb.String())
	lgr.Printf("[DEBUG] consensus explanation summarized from %d views", len(sentiments))
	return summary
}
