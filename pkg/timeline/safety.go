package timeline

import (
	"regexp"
	"strings"
	"sync"

	"github.com/nebulink/nebulink/pkg/domain"
)

// SafetyFilter drops items whose plain-text content matches a fixed denylist
// of words, case-insensitive whole-word. The filter is bypassable by an
// explicit user opt-out. The toggle is flipped from the settings handler while
// feed requests read it, so it is guarded.
type SafetyFilter struct {
	mu       sync.RWMutex
	enabled  bool
	words    []string
	patterns []*regexp.Regexp
}

// NewSafetyFilter compiles the denylist into whole-word patterns
func NewSafetyFilter(words []string, enabled bool) *SafetyFilter {
	f := &SafetyFilter{enabled: enabled, words: words}
	for _, w := range words {
		f.patterns = append(f.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(strings.ToLower(w))+`\b`))
	}
	return f
}

// SetEnabled toggles the filter, the user opt-out path
func (f *SafetyFilter) SetEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = enabled
}

// Enabled reports whether the filter is active
func (f *SafetyFilter) Enabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.enabled
}

// Words returns the denylist, used to mirror the filter upstream
func (f *SafetyFilter) Words() []string {
	out := make([]string, len(f.words))
	copy(out, f.words)
	return out
}

// Blocked reports whether the status should be dropped: a denylist word
// appearing as a status tag or as a whole word in the plain-text content
func (f *SafetyFilter) Blocked(s *domain.Status) bool {
	if !f.Enabled() {
		return false
	}
	for i, w := range f.words {
		for _, tag := range s.Tags {
			if strings.EqualFold(tag.Name, w) {
				return true
			}
		}
		if f.patterns[i].MatchString(s.PlainText) {
			return true
		}
	}
	return false
}
