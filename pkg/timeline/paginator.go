// Package timeline implements cursor-based retrieval of feed pages from the
// upstream API: endpoint selection by feed mode, offset and max_id cursor
// strategies, content-safety filtering, AI-based recommendation filtering and
// a bounded retry on pages that filter down to nothing.
package timeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/nebulink/nebulink/pkg/ai"
	"github.com/nebulink/nebulink/pkg/domain"
	"github.com/nebulink/nebulink/pkg/progress"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . TopicClassifier

// Source fetches one raw page of statuses from an API path
type Source interface {
	Timeline(ctx context.Context, path string) ([]domain.Status, error)
}

// TopicClassifier extracts subject phrases from a comment, used by the
// recommendation filter
type TopicClassifier interface {
	ClassifyTopics(ctx context.Context, comment string) ai.TopicsResult
}

const (
	// maxEmptyRetries bounds the fetch-again-on-thin-page loop: at most 4
	// upstream requests per user-visible page
	maxEmptyRetries = 3
	// minPageForRetry is the raw page size below which a thin page is taken
	// as end-of-data rather than over-filtering
	minPageForRetry = 20
)

// Paginator pulls feed pages for the active mode and owns the in-memory
// current-feed collection. One cursor strategy is active per feed session,
// selected by the mode; the cursor resets whenever the feed resets.
type Paginator struct {
	source     Source
	classifier TopicClassifier // nil when AI filtering is unavailable
	tracker    *progress.Tracker
	safety     *SafetyFilter

	mu       sync.Mutex
	mode     domain.FeedMode
	topics   []string // active account interest topics
	offset   int
	maxID    string
	statuses []*domain.Status
}

// NewPaginator creates a paginator over the given source. The classifier may
// be nil, disabling recommendation filtering.
func NewPaginator(source Source, classifier TopicClassifier, tracker *progress.Tracker, safety *SafetyFilter) *Paginator {
	return &Paginator{source: source, classifier: classifier, tracker: tracker, safety: safety}
}

// SetMode switches the feed mode and account topics, resetting the session:
// cursor back to initial state, current feed discarded
func (p *Paginator) SetMode(mode domain.FeedMode, topics []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
	p.topics = topics
	p.resetLocked()
}

// Mode returns the active feed mode
func (p *Paginator) Mode() domain.FeedMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Statuses returns the currently loaded feed collection
func (p *Paginator) Statuses() []*domain.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*domain.Status, len(p.statuses))
	copy(out, p.statuses)
	return out
}

// HasMore reports whether a further page is expected
func (p *Paginator) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxID != ""
}

// resetLocked clears cursor state and the loaded feed, caller holds the lock
func (p *Paginator) resetLocked() {
	p.offset = 0
	p.maxID = ""
	p.statuses = nil
}

// FetchPage retrieves the next logical page for the active mode. With reset
// the cursor and loaded feed are cleared first. The returned slice holds the
// items kept after filtering; they are also appended to the feed collection.
// A transport failure aborts the fetch leaving prior state untouched.
func (p *Paginator) FetchPage(ctx context.Context, reset bool) ([]*domain.Status, error) {
	p.mu.Lock()
	if reset {
		p.resetLocked()
	}
	p.mu.Unlock()

	kept, err := p.fetch(ctx, 0)
	if err != nil {
		lgr.Printf("[WARN] page fetch failed: %v", err)
		return nil, err
	}
	return kept, nil
}

// fetch pulls one raw page, advances the cursor, filters, and recursively
// pulls the next page while filtering leaves the page thin. The recursion
// completes before control returns to the caller.
func (p *Paginator) fetch(ctx context.Context, try int) ([]*domain.Status, error) {
	path := p.buildPath()

	raw, err := p.source.Timeline(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", path, err)
	}

	// the cursor always advances from the raw pre-filter page; an empty raw
	// page clears it, signalling end-of-feed
	p.mu.Lock()
	if len(raw) == 0 {
		p.maxID = ""
		p.mu.Unlock()
		return nil, nil
	}
	p.maxID = raw[len(raw)-1].ID
	p.offset += len(raw)
	mode := p.mode
	topics := p.topics
	p.mu.Unlock()

	candidates := raw
	if mode.Type == domain.FeedRecommendation && len(topics) > 0 && p.classifier != nil {
		candidates = p.filterRecommended(ctx, raw, topics)
	}

	kept := make([]*domain.Status, 0, len(candidates))
	for i := range candidates {
		s := &candidates[i]
		if s.Content == "" {
			continue
		}
		s.PlainText = PlainText(s.Content)
		s.Content = Sanitize(s.Content)
		if p.safety != nil && p.safety.Blocked(s) {
			continue
		}
		kept = append(kept, s)
	}

	p.mu.Lock()
	p.statuses = append(p.statuses, kept...)
	p.mu.Unlock()

	// a large raw page that filtered down is retried on the advanced cursor,
	// bounded so a pathological feed costs at most 4 upstream requests
	if len(kept) < len(raw) && len(raw) >= minPageForRetry && try < maxEmptyRetries {
		more, err := p.fetch(ctx, try+1)
		if err != nil {
			lgr.Printf("[DEBUG] retry fetch stopped: %v", err)
			return kept, nil
		}
		kept = append(kept, more...)
	}

	return kept, nil
}

// filterRecommended keeps only statuses whose extracted topics match one of
// the account's interest topics, case-insensitive and trimmed. Progress is
// reported per raw item.
func (p *Paginator) filterRecommended(ctx context.Context, raw []domain.Status, topics []string) []domain.Status {
	p.tracker.Start(len(raw), "Filtering recommendations...")
	defer p.tracker.Finish()

	wanted := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		wanted[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	filtered := make([]domain.Status, 0, len(raw))
	for i := range raw {
		s := raw[i]
		text := PlainText(s.Content)
		if text == "" {
			p.tracker.Tick(1)
			continue
		}
		res := p.classifier.ClassifyTopics(ctx, text)
		for _, topic := range res.Topics {
			if _, ok := wanted[strings.ToLower(strings.TrimSpace(topic))]; ok {
				filtered = append(filtered, s)
				break
			}
		}
		p.tracker.Tick(1)
	}
	return filtered
}

// buildPath renders the endpoint for the active mode with the cursor
// appended: offset=N after the first page in offset mode, max_id=X once a
// previous page produced a last-item id otherwise
func (p *Paginator) buildPath() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	path := p.mode.Endpoint()
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	switch {
	case p.mode.UsesOffset() && p.offset > 0:
		return fmt.Sprintf("%s%soffset=%d", path, sep, p.offset)
	case p.maxID != "":
		return fmt.Sprintf("%s%smax_id=%s", path, sep, p.maxID)
	}
	return path
}
