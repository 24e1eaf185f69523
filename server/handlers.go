package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/nebulink/nebulink/pkg/domain"
	"github.com/nebulink/nebulink/pkg/store"
)

// safetyFilterTitle names the server-side keyword filter managed by the
// safety toggle
const safetyFilterTitle = "Nebulink NSFW"

// feedHandler loads the next page of the feed. Changing mode or modifier
// starts a fresh session; reset=true forces one on the current mode, reloading
// the account topics so interest edits apply without a mode switch.
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	feedType, err := domain.ParseFeedType(r.URL.Query().Get("mode"))
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	mode := domain.FeedMode{Type: feedType, Modifier: r.URL.Query().Get("modifier")}
	reset := r.URL.Query().Get("reset") == "true"

	if mode != s.feed.Mode() || reset {
		topics, err := s.activeTopics(r)
		if err != nil {
			RenderError(w, r, err, http.StatusInternalServerError)
			return
		}
		s.feed.SetMode(mode, topics)
		reset = false // SetMode already reset the session
	}

	statuses, err := s.feed.FetchPage(r.Context(), reset)
	if err != nil {
		RenderError(w, r, fmt.Errorf("fetch feed page: %w", err), http.StatusBadGateway)
		return
	}

	// enrichment jobs drain after the response is written, so they must not
	// inherit the request's cancellation
	enrichCtx := context.WithoutCancel(r.Context())
	for _, st := range statuses {
		s.enricher.EnqueueCommentFetch(enrichCtx, st)
		s.enricher.EnqueueLanguageDetection(enrichCtx, st)
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"statuses": statuses,
		"has_more": s.feed.HasMore(),
	})
}

// analyzeHandler runs the sentiment consensus over the loaded feed text
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Topic == "" {
		RenderError(w, r, fmt.Errorf("topic is required"), http.StatusBadRequest)
		return
	}

	if !s.aiEnabled(r) {
		RenderError(w, r, fmt.Errorf("ai features are disabled"), http.StatusConflict)
		return
	}

	comments := s.feedTexts()
	if len(comments) == 0 {
		RenderError(w, r, fmt.Errorf("feed is empty, load a feed first"), http.StatusBadRequest)
		return
	}

	result := s.analyzer.AnalyzeFeed(r.Context(), comments, req.Topic)
	RenderJSON(w, r, http.StatusOK, result)
}

// summarizeHandler produces a summary of the given text
func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		RenderError(w, r, fmt.Errorf("text is required"), http.StatusBadRequest)
		return
	}

	if !s.aiEnabled(r) {
		RenderError(w, r, fmt.Errorf("ai features are disabled"), http.StatusConflict)
		return
	}

	summary := s.analyzer.Summarize(r.Context(), req.Text)
	RenderJSON(w, r, http.StatusOK, map[string]string{"summary": summary})
}

// translateHandler asks the instance to translate a status
func (s *Server) translateHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StatusID string `json:"status_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StatusID == "" {
		RenderError(w, r, fmt.Errorf("status_id is required"), http.StatusBadRequest)
		return
	}

	content, err := s.upstream.Translate(r.Context(), req.StatusID)
	if err != nil {
		RenderError(w, r, fmt.Errorf("translate status: %w", err), http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"content": content})
}

// favouriteHandler favourites or unfavourites a status
func (s *Server) favouriteHandler(favourited bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if err := s.upstream.SetFavourite(r.Context(), id, favourited); err != nil {
			RenderError(w, r, fmt.Errorf("set favourite: %w", err), http.StatusBadGateway)
			return
		}
		RenderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "favourited": favourited})
	}
}

// listAccountsHandler returns all stored accounts
func (s *Server) listAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.accounts.GetAccounts(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, accounts)
}

// createAccountHandler stores a new account
func (s *Server) createAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string   `json:"name"`
		AccountName string   `json:"account_name"`
		Avatar      string   `json:"avatar"`
		Token       string   `json:"token"`
		Instance    string   `json:"instance"`
		Topics      []string `json:"topics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Instance == "" {
		RenderError(w, r, fmt.Errorf("name and instance are required"), http.StatusBadRequest)
		return
	}

	account := &domain.Account{
		Name:        req.Name,
		AccountName: req.AccountName,
		Avatar:      req.Avatar,
		Token:       req.Token,
		Instance:    req.Instance,
		Topics:      req.Topics,
	}
	if err := s.accounts.CreateAccount(r.Context(), account); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, account)
}

// deleteAccountHandler removes an account
func (s *Server) deleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid account id"), http.StatusBadRequest)
		return
	}
	if err := s.accounts.DeleteAccount(r.Context(), id); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]int64{"deleted": id})
}

// activateAccountHandler makes the account the single active one
func (s *Server) activateAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid account id"), http.StatusBadRequest)
		return
	}
	if err := s.accounts.SetActiveAccount(r.Context(), id); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]int64{"activated": id})
}

// setTopicsHandler replaces the account's interest topics
func (s *Server) setTopicsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid account id"), http.StatusBadRequest)
		return
	}

	var req struct {
		Topics []string `json:"topics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if len(req.Topics) > domain.MaxTopics {
		RenderError(w, r, fmt.Errorf("at most %d topics allowed", domain.MaxTopics), http.StatusBadRequest)
		return
	}

	if err := s.accounts.SetTopics(r.Context(), id, req.Topics); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "topics": req.Topics})
}

// getSettingHandler returns a setting value
func (s *Server) getSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, err := s.settings.GetSetting(r.Context(), key)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"key": key, "value": value})
}

// putSettingHandler stores a setting value. The safety toggle additionally
// flips the local content filter and syncs the server-side keyword filter.
func (s *Server) putSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.settings.SetSetting(r.Context(), key, req.Value); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if key == store.SettingSafetyEnabled {
		s.applySafetyToggle(r, req.Value == "true" || req.Value == "1")
	}

	RenderJSON(w, r, http.StatusOK, map[string]string{"key": key, "value": req.Value})
}

// applySafetyToggle flips the local filter and mirrors it upstream as a
// keyword filter, best effort on the upstream side
func (s *Server) applySafetyToggle(r *http.Request, enabled bool) {
	s.safety.SetEnabled(enabled)

	if enabled {
		if err := s.upstream.CreateKeywordFilter(r.Context(), safetyFilterTitle, s.safety.Words()); err != nil {
			lgr.Printf("[WARN] can't create upstream safety filter: %v", err)
		}
		return
	}
	if err := s.upstream.RemoveKeywordFilter(r.Context(), safetyFilterTitle); err != nil {
		lgr.Printf("[WARN] can't remove upstream safety filter: %v", err)
	}
}

// rssHandler serves the currently loaded feed as RSS 2.0
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := s.rss.GenerateRSS(s.feed.Statuses(), s.feed.Mode())
	if err != nil {
		RenderError(w, r, fmt.Errorf("generate rss: %w", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(doc)); err != nil {
		lgr.Printf("[ERROR] can't write rss response: %v", err)
	}
}

// aiEnabled reports whether AI operations may run: the backend must be
// configured and the runtime toggle on, default on
func (s *Server) aiEnabled(r *http.Request) bool {
	if s.analyzer == nil {
		return false
	}
	enabled, err := s.settings.GetBool(r.Context(), store.SettingAIEnabled, true)
	if err != nil {
		lgr.Printf("[WARN] can't read ai setting: %v", err)
		return true
	}
	return enabled
}

// activeTopics returns the active account's interest topics, empty without an
// active account
func (s *Server) activeTopics(r *http.Request) ([]string, error) {
	account, err := s.accounts.GetActiveAccount(r.Context())
	if err != nil {
		return nil, fmt.Errorf("get active account: %w", err)
	}
	if account == nil {
		return nil, nil
	}
	return account.Topics, nil
}

// feedTexts collects the plain text of loaded statuses and their fetched
// comments, the input corpus for consensus analysis
func (s *Server) feedTexts() []string {
	var texts []string
	for _, st := range s.feed.Statuses() {
		if st.PlainText != "" {
			texts = append(texts, st.PlainText)
		}
		for _, c := range st.Comments {
			if c.PlainText != "" {
				texts = append(texts, c.PlainText)
			}
		}
	}
	return texts
}
