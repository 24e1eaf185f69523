package timeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nebulink/nebulink/pkg/domain"
)

func TestSafetyFilter_Blocked(t *testing.T) {
	f := NewSafetyFilter([]string{"nsfw", "explicit"}, true)

	tests := []struct {
		name    string
		status  domain.Status
		blocked bool
	}{
		{
			name:    "whole word in text",
			status:  domain.Status{PlainText: "this is NSFW content"},
			blocked: true,
		},
		{
			name:    "word as tag",
			status:  domain.Status{PlainText: "harmless", Tags: []domain.Tag{{Name: "NSFW"}}},
			blocked: true,
		},
		{
			name:    "substring does not match",
			status:  domain.Status{PlainText: "explicitly allowed wording"},
			blocked: false,
		},
		{
			name:    "clean status",
			status:  domain.Status{PlainText: "just a nice post about cats"},
			blocked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.status
			assert.Equal(t, tt.blocked, f.Blocked(&s))
		})
	}
}

func TestSafetyFilter_Disabled(t *testing.T) {
	f := NewSafetyFilter([]string{"nsfw"}, false)
	assert.False(t, f.Blocked(&domain.Status{PlainText: "nsfw content"}))

	f.SetEnabled(true)
	assert.True(t, f.Blocked(&domain.Status{PlainText: "nsfw content"}))
	assert.True(t, f.Enabled())
}

func TestSafetyFilter_Words(t *testing.T) {
	f := NewSafetyFilter([]string{"one", "two"}, true)
	words := f.Words()
	assert.Equal(t, []string{"one", "two"}, words)

	words[0] = "mutated"
	assert.Equal(t, []string{"one", "two"}, f.Words(), "returned slice is a copy")
}

func TestSafetyFilter_ConcurrentToggle(t *testing.T) {
	f := NewSafetyFilter([]string{"nsfw"}, false)
	s := &domain.Status{PlainText: "a perfectly fine post"}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			f.SetEnabled(i%2 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			f.Blocked(s)
		}
	}()
	wg.Wait()

	f.SetEnabled(true)
	assert.True(t, f.Enabled())
}
