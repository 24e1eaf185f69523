package timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nebulink/nebulink/pkg/ai"
	"github.com/nebulink/nebulink/pkg/domain"
	"github.com/nebulink/nebulink/pkg/queue"
)

//go:generate moq -out mocks/comment_source.go -pkg mocks -skip-ensure -fmt goimports . CommentSource
//go:generate moq -out mocks/detector.go -pkg mocks -skip-ensure -fmt goimports . LanguageDetector

// CommentSource fetches the reply thread for a status
type CommentSource interface {
	Context(ctx context.Context, statusID string) ([]domain.Status, error)
}

// LanguageDetector identifies the language of a text
type LanguageDetector interface {
	DetectLanguage(text string) ai.Language
}

// Enricher runs out-of-band enrichment of feed items over two independent
// sequential lanes: comment fetch-and-attach and language detection. Each
// lane executes one job at a time in arrival order; the lanes have no
// relative ordering guarantee between them. Jobs mutate the item in place.
type Enricher struct {
	comments *queue.Sequential[*domain.Status]
	langdet  *queue.Sequential[*domain.Status]
	source   CommentSource
	detector LanguageDetector
}

// NewEnricher creates an enricher with its two queue lanes
func NewEnricher(source CommentSource, detector LanguageDetector, delay time.Duration) *Enricher {
	return &Enricher{
		comments: queue.NewWithDelay[*domain.Status]("comments", delay),
		langdet:  queue.NewWithDelay[*domain.Status]("language-detection", delay),
		source:   source,
		detector: detector,
	}
}

// EnqueueCommentFetch schedules fetching the reply thread for the item,
// attaching the descendants in place when the job runs
func (e *Enricher) EnqueueCommentFetch(ctx context.Context, s *domain.Status) {
	e.comments.Enqueue(ctx, s, func(ctx context.Context, s *domain.Status) error {
		replies, err := e.source.Context(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("fetch comments for %s: %w", s.ID, err)
		}
		for i := range replies {
			replies[i].PlainText = PlainText(replies[i].Content)
		}
		s.Comments = replies
		s.CommentsFetched = true
		return nil
	})
}

// EnqueueLanguageDetection schedules best-effort language detection for the
// item, recording the detected code in place
func (e *Enricher) EnqueueLanguageDetection(ctx context.Context, s *domain.Status) {
	if e.detector == nil {
		return
	}
	e.langdet.Enqueue(ctx, s, func(_ context.Context, s *domain.Status) error {
		lang := e.detector.DetectLanguage(s.PlainText)
		s.DetectedLanguage = lang.Code
		return nil
	})
}

// Wait blocks until both lanes are drained, used by callers that need the
// enriched state before proceeding
func (e *Enricher) Wait() {
	e.comments.Wait()
	e.langdet.Wait()
}
