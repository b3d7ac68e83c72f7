package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/pick-settler/internal/models"
)

// RunStats tracks the counters of one settlement run
type RunStats struct {
	mu        sync.RWMutex
	RunID     string
	StartTime time.Time
	Duration  time.Duration
	Loaded    int
	Graded    int
	Skipped   int
	Errors    int
	Wins      int
	Losses    int
	Pushes    int
	Ungraded  int
	NetPnL    decimal.Decimal
}

// NewRunStats creates a stats tracker for a run
func NewRunStats(runID string, start time.Time) *RunStats {
	return &RunStats{
		RunID:     runID,
		StartTime: start,
		NetPnL:    decimal.Zero,
	}
}

// RecordGraded counts a settled pick and adds its pnl
func (s *RunStats) RecordGraded(result models.Result, pnl decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Graded++
	switch result {
	case models.ResultWin:
		s.Wins++
	case models.ResultLoss:
		s.Losses++
	case models.ResultPush:
		s.Pushes++
	case models.ResultUngraded:
		s.Ungraded++
	}
	s.NetPnL = s.NetPnL.Add(pnl)
}

// RecordSkipped counts a pick left untouched
func (s *RunStats) RecordSkipped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Skipped++
}

// RecordError counts a pick that failed to grade or persist
func (s *RunStats) RecordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors++
}

// Finish records the run duration
func (s *RunStats) Finish(end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Duration = end.Sub(s.StartTime)
}

// Summary returns the counters as a models.RunSummary
func (s *RunStats) Summary() models.RunSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.RunSummary{
		RunID:    s.RunID,
		Loaded:   s.Loaded,
		Graded:   s.Graded,
		Skipped:  s.Skipped,
		Errors:   s.Errors,
		Wins:     s.Wins,
		Losses:   s.Losses,
		Pushes:   s.Pushes,
		Ungraded: s.Ungraded,
		NetPnL:   s.NetPnL,
	}
}

// String returns a formatted string representation of the run
func (s *RunStats) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fmt.Sprintf(
		"Settlement run %s: loaded=%d graded=%d skipped=%d errors=%d record=%d-%d-%d ungraded=%d net_pnl=%s duration=%v",
		s.RunID,
		s.Loaded,
		s.Graded,
		s.Skipped,
		s.Errors,
		s.Wins,
		s.Losses,
		s.Pushes,
		s.Ungraded,
		s.NetPnL.StringFixed(2),
		s.Duration,
	)
}
