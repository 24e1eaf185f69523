// Package progress provides a single-consumer progress tracker used by the
// long-running pipeline stages (recommendation filtering, consensus runs,
// model loading) and exposed to UI clients for polling.
package progress

import (
	"sync"
	"time"
)

// defaultResetDelay keeps the finished state visible briefly before reset
const defaultResetDelay = 250 * time.Millisecond

// State is a snapshot of the tracker, safe to hand out to callers
type State struct {
	Total         int    `json:"total"`
	Current       int    `json:"current"`
	Percent       int    `json:"percent"`
	Indeterminate bool   `json:"indeterminate"`
	Label         string `json:"label"`
	Active        bool   `json:"active"`
}

// Tracker reports progress for one logical operation at a time. A Start
// issued while another operation is active overwrites its state; callers are
// expected to drive at most one operation through a tracker at a time.
type Tracker struct {
	mu            sync.Mutex
	total         int
	current       int
	indeterminate bool
	label         string
	active        bool
	resetDelay    time.Duration
	resetTimer    *time.Timer
}

// NewTracker creates a tracker with the default finish reset delay
func NewTracker() *Tracker {
	return &Tracker{resetDelay: defaultResetDelay}
}

// NewTrackerWithDelay creates a tracker with a custom finish reset delay,
// zero means reset immediately on Finish
func NewTrackerWithDelay(delay time.Duration) *Tracker {
	return &Tracker{resetDelay: delay}
}

// Start begins a new progress session. A total of 0 switches the tracker to
// indeterminate mode where Tick is a no-op and no percentage is reported.
func (t *Tracker) Start(total int, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.resetTimer != nil {
		t.resetTimer.Stop()
		t.resetTimer = nil
	}
	if total < 0 {
		total = 0
	}
	t.total = total
	t.current = 0
	t.indeterminate = total == 0
	t.label = label
	t.active = true
}

// Tick advances the current unit count by n. No-op in indeterminate mode.
func (t *Tracker) Tick(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indeterminate || !t.active {
		return
	}
	t.current += n
}

// AddTotal raises the total without resetting current progress. The reported
// percentage may jump backward, which is acceptable: consensus runs grow the
// denominator when entering the classification stage.
func (t *Tracker) AddTotal(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return
	}
	t.total += n
	if t.total > 0 {
		t.indeterminate = false
	}
}

// Finish pins a determinate session to 100% and schedules the reset to idle
// after the configured delay
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return
	}
	if !t.indeterminate && t.total > 0 {
		t.current = t.total
	}
	if t.resetDelay == 0 {
		t.resetLocked()
		return
	}
	t.resetTimer = time.AfterFunc(t.resetDelay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.resetLocked()
	})
}

// resetLocked clears all fields, caller must hold the lock
func (t *Tracker) resetLocked() {
	t.total = 0
	t.current = 0
	t.indeterminate = false
	t.label = ""
	t.active = false
	t.resetTimer = nil
}

// State returns a snapshot of the tracker
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := State{
		Total:         t.total,
		Current:       t.current,
		Indeterminate: t.indeterminate,
		Label:         t.label,
		Active:        t.active,
	}
	if !t.indeterminate && t.total > 0 {
		st.Percent = t.current * 100 / t.total
		if st.Percent > 100 {
			st.Percent = 100
		}
	}
	return st
}
