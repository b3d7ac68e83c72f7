// Package grading decides the outcome of a pick against final game scores.
// Everything here is pure: no I/O, no clocks, no shared state.
package grading

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/pick-settler/internal/models"
	"github.com/yourusername/pick-settler/internal/teams"
)

// Side is the team a spread or moneyline pick backs
type Side string

const (
	SideHome    Side = "home"
	SideAway    Side = "away"
	SideUnknown Side = ""
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	switch s {
	case SideHome:
		return SideAway
	case SideAway:
		return SideHome
	default:
		return SideUnknown
	}
}

// Total directions
const (
	DirectionOver  = "over"
	DirectionUnder = "under"
)

// GradeSpread adds the line to the picked side's score and compares it with the opponent's.
func GradeSpread(side Side, homeScore, awayScore int, line decimal.Decimal) models.Result {
	own, opp, ok := sideScores(side, homeScore, awayScore)
	if !ok {
		return models.ResultUngraded
	}
	adjusted := decimal.NewFromInt(int64(own)).Add(line)
	return compare(adjusted.Cmp(decimal.NewFromInt(int64(opp))))
}

// GradeTotal compares the combined score with the line for an over or under pick.
func GradeTotal(direction string, actualTotal int, line decimal.Decimal) models.Result {
	cmp := decimal.NewFromInt(int64(actualTotal)).Cmp(line)
	switch NormalizeDirection(direction) {
	case DirectionOver:
		return compare(cmp)
	case DirectionUnder:
		return compare(-cmp)
	default:
		return models.ResultUngraded
	}
}

// GradeMoneyline wins when the picked side outscores the opponent; a tie pushes.
func GradeMoneyline(side Side, homeScore, awayScore int) models.Result {
	own, opp, ok := sideScores(side, homeScore, awayScore)
	if !ok {
		return models.ResultUngraded
	}
	switch {
	case own > opp:
		return models.ResultWin
	case own < opp:
		return models.ResultLoss
	default:
		return models.ResultPush
	}
}

// CalculatePnL returns +toWin on a win, -risk on a loss and zero otherwise.
// Missing or non-numeric stakes count as zero.
func CalculatePnL(result models.Result, risk, toWin decimal.NullDecimal) decimal.Decimal {
	switch result {
	case models.ResultWin:
		if toWin.Valid {
			return toWin.Decimal
		}
	case models.ResultLoss:
		if risk.Valid {
			return risk.Decimal.Neg()
		}
	}
	return decimal.Zero
}

// IdentifyPickSide works out which side of the matched game the pick backs.
// An explicit home/away direction wins; otherwise the picked team is scored
// against both sides. SideUnknown means the pick is ambiguous.
func IdentifyPickSide(pick *models.Pick, match *Match) Side {
	if match == nil || match.Game == nil {
		return SideUnknown
	}

	pickSide := explicitSide(pick.PickDirection)
	if pickSide == SideUnknown && strings.TrimSpace(pick.PickTeam) != "" {
		team := teams.ResolveForSport(pick.Sport, pick.PickTeam)

		gameSide := pickBetween(
			teams.MatchScore(team, match.Game.HomeTeam),
			teams.MatchScore(team, match.Game.AwayTeam),
		)
		if gameSide != SideUnknown {
			return gameSide
		}

		// Feeds sometimes spell teams by abbreviation only; fall back to
		// the pick's own matchup.
		pickSide = pickBetween(
			teams.MatchScore(team, teams.ResolveForSport(pick.Sport, pick.HomeTeam)),
			teams.MatchScore(team, teams.ResolveForSport(pick.Sport, pick.AwayTeam)),
		)
	}

	if match.Swapped {
		return pickSide.Opposite()
	}
	return pickSide
}

// NormalizeDirection maps over/under spellings to DirectionOver or DirectionUnder.
func NormalizeDirection(direction string) string {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "over", "o", "ov":
		return DirectionOver
	case "under", "u", "un":
		return DirectionUnder
	default:
		return ""
	}
}

func explicitSide(direction string) Side {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "home", "h":
		return SideHome
	case "away", "a", "road", "visitor":
		return SideAway
	default:
		return SideUnknown
	}
}

func pickBetween(homeScore, awayScore int) Side {
	switch {
	case homeScore >= teams.MinConfidence && homeScore > awayScore:
		return SideHome
	case awayScore >= teams.MinConfidence && awayScore > homeScore:
		return SideAway
	default:
		return SideUnknown
	}
}

func sideScores(side Side, homeScore, awayScore int) (own, opp int, ok bool) {
	switch side {
	case SideHome:
		return homeScore, awayScore, true
	case SideAway:
		return awayScore, homeScore, true
	default:
		return 0, 0, false
	}
}

func compare(cmp int) models.Result {
	switch {
	case cmp > 0:
		return models.ResultWin
	case cmp < 0:
		return models.ResultLoss
	default:
		return models.ResultPush
	}
}
