package mastodon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Timeline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/timelines/home", r.URL.Path)
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		assert.Equal(t, "Nebulink-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","content":"<p>hi</p>"},{"id":"2","content":"<p>there</p>"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token123", time.Second, "Nebulink-test")
	statuses, err := c.Timeline(context.Background(), "/api/v1/timelines/home")
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "1", statuses[0].ID)
	assert.Equal(t, "<p>there</p>", statuses[1].Content)
}

func TestClient_TimelineSearchEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accounts":[],"statuses":[{"id":"9","content":"<p>found</p>"}],"hashtags":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second, "")
	statuses, err := c.Timeline(context.Background(), "/api/v2/search?q=cats&type=statuses")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "9", statuses[0].ID)
}

func TestClient_TimelineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second, "")
	_, err := c.Timeline(context.Background(), "/api/v1/timelines/home")
	assert.ErrorContains(t, err, "429")
}

func TestClient_Context(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/statuses/42/context", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ancestors":[],"descendants":[{"id":"43","content":"<p>reply</p>"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second, "")
	replies, err := c.Context(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "43", replies[0].ID)
}

func TestClient_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/statuses/42/translate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"<p>translated</p>","detected_source_language":"de"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", time.Second, "")
	content, err := c.Translate(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "<p>translated</p>", content)
}

func TestClient_TranslateEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second, "")
	_, err := c.Translate(context.Background(), "42")
	assert.ErrorContains(t, err, "no content")
}

func TestClient_SetFavourite(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","favourited":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", time.Second, "")
	require.NoError(t, c.SetFavourite(context.Background(), "42", true))
	require.NoError(t, c.SetFavourite(context.Background(), "42", false))

	assert.Equal(t, []string{"/api/v1/statuses/42/favourite", "/api/v1/statuses/42/unfavourite"}, paths)
}

func TestClient_CreateKeywordFilter(t *testing.T) {
	var keywords []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v2/filters":
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "NSFW", payload["title"])
			assert.Equal(t, "hide", payload["filter_action"])
			_, _ = w.Write([]byte(`{"id":"f1","title":"NSFW"}`))
		case "/api/v2/filters/f1/keywords":
			var kw map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&kw))
			keywords = append(keywords, kw["keyword"].(string))
			_, _ = w.Write([]byte(`{"id":"k1"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", time.Second, "")
	err := c.CreateKeywordFilter(context.Background(), "NSFW", []string{"nsfw", "explicit"})
	require.NoError(t, err)
	assert.Equal(t, []string{"nsfw", "explicit"}, keywords)
}

func TestClient_RemoveKeywordFilter(t *testing.T) {
	deleted := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v2/filters":
			_, _ = w.Write([]byte(`[{"id":"f1","title":"Other"},{"id":"f2","title":"NSFW"}]`))
		case r.Method == http.MethodDelete:
			deleted = r.URL.Path
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", time.Second, "")
	require.NoError(t, c.RemoveKeywordFilter(context.Background(), "NSFW"))
	assert.Equal(t, "/api/v2/filters/f2", deleted)
}

func TestClient_RemoveKeywordFilterMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", time.Second, "")
	assert.NoError(t, c.RemoveKeywordFilter(context.Background(), "NSFW"), "missing filter is a no-op")
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	c := New("https://example.social/", "", time.Second, "")
	assert.Equal(t, "https://example.social", c.Instance())
}
