package domain

import (
	"strings"
	"time"
)

type PollTerminal int

const (
	PollPending PollTerminal = iota
	PollQuota
	PollReady
)

// PollState tracks one generation attempt's polling phase. Elapsed is an
// accumulator of check intervals, not wall-clock time.
type PollState struct {
	Elapsed       time.Duration
	MaxWait       time.Duration
	CheckInterval time.Duration
	Terminal      PollTerminal
}

func NewPollState(maxWait, checkInterval time.Duration) PollState {
	return PollState{MaxWait: maxWait, CheckInterval: checkInterval}
}

func (s PollState) Exhausted() bool {
	return s.Elapsed >= s.MaxWait
}

func (s *PollState) Advance() {
	s.Elapsed += s.CheckInterval
}

var quotaMarkers = []string{"quota", "limit reached"}

// ContainsQuotaMarker reports whether rendered page text announces an exhausted
// generation quota.
func ContainsQuotaMarker(body string) bool {
	lower := strings.ToLower(body)
	for _, marker := range quotaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
