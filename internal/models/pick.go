package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sport represents the league a pick belongs to
type Sport string

const (
	SportNBA   Sport = "NBA"
	SportNFL   Sport = "NFL"
	SportNCAAB Sport = "NCAAB"
	SportNCAAF Sport = "NCAAF"
	SportNHL   Sport = "NHL"
	SportMLB   Sport = "MLB"
)

// AllSports lists every supported sport
var AllSports = []Sport{SportNBA, SportNFL, SportNCAAB, SportNCAAF, SportNHL, SportMLB}

// ParseSport normalizes a sport code, returning false when it is unsupported
func ParseSport(s string) (Sport, bool) {
	candidate := Sport(strings.ToUpper(strings.TrimSpace(s)))
	for _, sport := range AllSports {
		if sport == candidate {
			return sport, true
		}
	}
	return "", false
}

// PickType represents the kind of wager
type PickType string

const (
	PickTypeSpread    PickType = "spread"
	PickTypeTotal     PickType = "total"
	PickTypeMoneyline PickType = "moneyline"
)

// PickStatus represents the lifecycle state of a pick
type PickStatus string

const (
	PickStatusPending  PickStatus = "pending"
	PickStatusLive     PickStatus = "live"
	PickStatusSettled  PickStatus = "settled"
	PickStatusArchived PickStatus = "archived"
)

// IsActive reports whether the pick is still awaiting settlement
func (s PickStatus) IsActive() bool {
	return s == PickStatusPending || s == PickStatusLive
}

// Result represents the settlement verdict of a pick
type Result string

const (
	ResultNone     Result = ""
	ResultWin      Result = "WIN"
	ResultLoss     Result = "LOSS"
	ResultPush     Result = "PUSH"
	ResultUngraded Result = "UNGRADED"
)

// Pick represents a wager awaiting or having received a settlement outcome
type Pick struct {
	ID            string              `db:"id" json:"id" validate:"required"`
	Sport         Sport               `db:"sport" json:"sport" validate:"required,oneof=NBA NFL NCAAB NCAAF NHL MLB"`
	HomeTeam      string              `db:"home_team" json:"homeTeam" validate:"required"`
	AwayTeam      string              `db:"away_team" json:"awayTeam" validate:"required"`
	PickType      PickType            `db:"pick_type" json:"pickType" validate:"required,oneof=spread total moneyline"`
	PickDirection string              `db:"pick_direction" json:"pickDirection,omitempty"`
	PickTeam      string              `db:"pick_team" json:"pickTeam,omitempty"`
	Line          decimal.NullDecimal `db:"line" json:"line"`
	Odds          string              `db:"odds" json:"odds,omitempty"`
	Risk          decimal.NullDecimal `db:"risk" json:"risk"`
	ToWin         decimal.NullDecimal `db:"to_win" json:"toWin"`
	Segment       string              `db:"segment" json:"segment,omitempty"`
	Status        PickStatus          `db:"status" json:"status" validate:"required,oneof=pending live settled archived"`
	Result        Result              `db:"result" json:"result,omitempty"`
	PnL           decimal.Decimal     `db:"pnl" json:"pnl"`
	GameDate      time.Time           `db:"game_date" json:"gameDate" validate:"required"`
	FinalScore    string              `db:"final_score" json:"finalScore,omitempty"`
	SegmentScore  string              `db:"segment_score" json:"segmentScore,omitempty"`
	GradeNote     string              `db:"grade_note" json:"gradeNote,omitempty"`
	GradedAt      *time.Time          `db:"graded_at" json:"gradedAt,omitempty"`
	CreatedAt     time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `db:"updated_at" json:"updatedAt"`
}

// IsSettled checks if the pick has been settled
func (p *Pick) IsSettled() bool {
	return p.Status == PickStatusSettled && p.GradedAt != nil
}

// ApplyGrade copies a grade result onto the pick and marks it settled
func (p *Pick) ApplyGrade(g *GradeResult, gradedAt time.Time) {
	p.Status = PickStatusSettled
	p.Result = g.Result
	p.PnL = g.PnL
	p.FinalScore = g.FinalScore
	p.SegmentScore = g.SegmentScore
	p.GradeNote = g.GradeNote
	p.GradedAt = &gradedAt
	p.UpdatedAt = gradedAt
}

// ParseAmount parses a stake or line as entered by the intake system.
// Non-numeric input yields an invalid NullDecimal.
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
