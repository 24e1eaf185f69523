package timeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulink/nebulink/pkg/ai"
	"github.com/nebulink/nebulink/pkg/domain"
	"github.com/nebulink/nebulink/pkg/progress"
	"github.com/nebulink/nebulink/pkg/timeline/mocks"
)

func makePage(start, n int) []domain.Status {
	page := make([]domain.Status, n)
	for i := range page {
		page[i] = domain.Status{
			ID:      fmt.Sprintf("%d", start+i),
			Content: fmt.Sprintf("<p>post %d</p>", start+i),
		}
	}
	return page
}

func newTestPaginator(source Source, classifier TopicClassifier) *Paginator {
	tracker := progress.NewTrackerWithDelay(0)
	safety := NewSafetyFilter([]string{"nsfw"}, true)
	return NewPaginator(source, classifier, tracker, safety)
}

func TestPaginator_FetchPage(t *testing.T) {
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			return makePage(1, 3), nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, kept, 3)
	assert.Equal(t, "post 1", kept[0].PlainText)
	assert.Len(t, p.Statuses(), 3)
	assert.True(t, p.HasMore())
}

func TestPaginator_CursorFromRawPage(t *testing.T) {
	var paths []string
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			paths = append(paths, path)
			if len(paths) == 1 {
				page := makePage(1, 3)
				page[2].Content = "" // last raw item filtered out
				return page, nil
			}
			return nil, nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, kept, 2)

	_, err = p.FetchPage(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/api/v1/timelines/home", paths[0])
	assert.Equal(t, "/api/v1/timelines/home?max_id=3", paths[1],
		"cursor advances from the raw page, not the filtered one")
}

func TestPaginator_TrendingUsesOffset(t *testing.T) {
	var paths []string
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			paths = append(paths, path)
			return makePage(len(paths)*10, 5), nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedTrending}, nil)

	_, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	_, err = p.FetchPage(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/api/v1/trends/statuses", paths[0])
	assert.Equal(t, "/api/v1/trends/statuses?offset=5", paths[1])
}

func TestPaginator_RetryBounded(t *testing.T) {
	calls := 0
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			calls++
			// large page that always filters down to nothing
			page := makePage(calls*100, 20)
			for i := range page {
				page[i].Content = "<p>nsfw stuff</p>"
			}
			return page, nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, kept)
	assert.Equal(t, 4, calls, "initial fetch plus at most 3 retries")
}

func TestPaginator_NoRetryOnSmallPage(t *testing.T) {
	calls := 0
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			calls++
			page := makePage(1, 5)
			page[0].Content = "<p>nsfw here</p>"
			return page, nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, kept, 4)
	assert.Equal(t, 1, calls, "a thin raw page means end of data, no retry")
}

func TestPaginator_RecommendationFilter(t *testing.T) {
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			return []domain.Status{
				{ID: "1", Content: "<p>a post about go</p>"},
				{ID: "2", Content: "<p>a post about cooking</p>"},
			}, nil
		},
	}
	classifier := &mocks.TopicClassifierMock{
		ClassifyTopicsFunc: func(_ context.Context, comment string) ai.TopicsResult {
			if strings.Contains(comment, "go") {
				return ai.TopicsResult{Topics: []string{"Golang"}}
			}
			return ai.TopicsResult{Topics: []string{"food"}}
		},
	}

	p := newTestPaginator(source, classifier)
	p.SetMode(domain.FeedMode{Type: domain.FeedRecommendation}, []string{" golang "})

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "1", kept[0].ID)
	assert.Len(t, classifier.ClassifyTopicsCalls(), 2)
}

func TestPaginator_RecommendationWithoutTopics(t *testing.T) {
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			return makePage(1, 2), nil
		},
	}
	classifier := &mocks.TopicClassifierMock{
		ClassifyTopicsFunc: func(_ context.Context, comment string) ai.TopicsResult {
			return ai.TopicsResult{}
		},
	}

	p := newTestPaginator(source, classifier)
	p.SetMode(domain.FeedMode{Type: domain.FeedRecommendation}, nil)

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, kept, 2, "no topics means no filtering")
	assert.Empty(t, classifier.ClassifyTopicsCalls(), "classifier untouched without topics")
}

func TestPaginator_EmptyPageEndsFeed(t *testing.T) {
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			return nil, nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, kept)
	assert.False(t, p.HasMore())
}

func TestPaginator_FetchError(t *testing.T) {
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			return nil, fmt.Errorf("upstream down")
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	_, err := p.FetchPage(context.Background(), false)
	assert.ErrorContains(t, err, "upstream down")
	assert.Empty(t, p.Statuses(), "failed fetch leaves state untouched")
}

func TestPaginator_ResetClearsSession(t *testing.T) {
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			return makePage(1, 3), nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	_, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, p.Statuses(), 3)

	_, err = p.FetchPage(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, p.Statuses(), 3, "reset discards the previous collection before loading")

	calls := source.TimelineCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "/api/v1/timelines/home", calls[1].Path, "reset clears the cursor")
}

func TestPaginator_SanitizesContent(t *testing.T) {
	source := &mocks.SourceMock{
		TimelineFunc: func(_ context.Context, path string) ([]domain.Status, error) {
			return []domain.Status{
				{ID: "1", Content: `<p>hi<script>alert(1)</script></p>`},
			}, nil
		},
	}

	p := newTestPaginator(source, nil)
	p.SetMode(domain.FeedMode{Type: domain.FeedHome}, nil)

	kept, err := p.FetchPage(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.NotContains(t, kept[0].Content, "script")
}
