package models

import (
	"fmt"
	"time"
)

// GameStatus represents whether a game has concluded
type GameStatus string

const (
	GameStatusFinal GameStatus = "final"
	GameStatusOther GameStatus = "other"
)

// Half identifies a half of a game in HalfScores
type Half string

const (
	HalfFirst  Half = "H1"
	HalfSecond Half = "H2"
)

// ScorePair is a home/away score; either side may be unknown
type ScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Complete reports whether both sides are known
func (p ScorePair) Complete() bool {
	return p.Home != nil && p.Away != nil
}

// NewScorePair builds a complete score pair
func NewScorePair(home, away int) ScorePair {
	return ScorePair{Home: &home, Away: &away}
}

// Game is a provider-independent snapshot of a contest. Games are rebuilt
// from upstream data on every run and never persisted.
type Game struct {
	Provider   string             `json:"provider"`
	ProviderID string             `json:"provider_id"`
	Sport      Sport              `json:"sport"`
	Date       time.Time          `json:"date"`
	HomeTeam   string             `json:"home_team"`
	AwayTeam   string             `json:"away_team"`
	HomeScore  *int               `json:"home_score"`
	AwayScore  *int               `json:"away_score"`
	HalfScores map[Half]ScorePair `json:"half_scores"`
	Status     GameStatus         `json:"status"`
}

// HasFinalScore reports whether both final scores are present
func (g *Game) HasFinalScore() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// FinalPair returns the full-game score pair
func (g *Game) FinalPair() ScorePair {
	return ScorePair{Home: g.HomeScore, Away: g.AwayScore}
}

// String returns "Away 108 @ Home 112"
func (g *Game) String() string {
	return fmt.Sprintf("%s %s @ %s %s", g.AwayTeam, scoreText(g.AwayScore), g.HomeTeam, scoreText(g.HomeScore))
}

func scoreText(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// BuildHalfScores returns HalfScores for a finished game given its first
// half. H2 is always final minus H1, so overtime lands in the second half.
// A nil first half or missing final score yields an empty map.
func BuildHalfScores(firstHalf *ScorePair, homeFinal, awayFinal *int) map[Half]ScorePair {
	halves := make(map[Half]ScorePair)
	if firstHalf == nil || !firstHalf.Complete() {
		return halves
	}
	halves[HalfFirst] = *firstHalf
	if second, ok := DeriveSecondHalf(*firstHalf, homeFinal, awayFinal); ok {
		halves[HalfSecond] = second
	}
	return halves
}

// DeriveSecondHalf computes the second half as final minus first half
func DeriveSecondHalf(firstHalf ScorePair, homeFinal, awayFinal *int) (ScorePair, bool) {
	if !firstHalf.Complete() || homeFinal == nil || awayFinal == nil {
		return ScorePair{}, false
	}
	home := *homeFinal - *firstHalf.Home
	away := *awayFinal - *firstHalf.Away
	if home < 0 || away < 0 {
		return ScorePair{}, false
	}
	return NewScorePair(home, away), true
}
