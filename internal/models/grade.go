package models

import "github.com/shopspring/decimal"

// Segment is the canonical portion of a game a wager applies to
type Segment string

const (
	SegmentFullGame   Segment = "FG"
	SegmentFirstHalf  Segment = "1H"
	SegmentSecondHalf Segment = "2H"
)

// GradeResult is the verdict for one pick against one game
type GradeResult struct {
	Result       Result          `json:"result"`
	PnL          decimal.Decimal `json:"pnl"`
	FinalScore   string          `json:"finalScore"`
	SegmentScore string          `json:"segmentScore"`
	GradeNote    string          `json:"gradeNote"`
	Game         *Game           `json:"game,omitempty"`
}

// RunSummary is the outcome of one settlement run, as sent to notifiers
type RunSummary struct {
	RunID    string          `json:"run_id"`
	Loaded   int             `json:"loaded"`
	Graded   int             `json:"graded"`
	Skipped  int             `json:"skipped"`
	Errors   int             `json:"errors"`
	Wins     int             `json:"wins"`
	Losses   int             `json:"losses"`
	Pushes   int             `json:"pushes"`
	Ungraded int             `json:"ungraded"`
	NetPnL   decimal.Decimal `json:"net_pnl"`
}
