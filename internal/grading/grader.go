package grading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/pick-settler/internal/models"
	"github.com/yourusername/pick-settler/internal/teams"
)

var (
	// ErrUnsupportedPickType indicates a pick type the rules cannot grade
	ErrUnsupportedPickType = errors.New("unsupported pick type")

	// ErrMissingLine indicates a spread or total pick without a line
	ErrMissingLine = errors.New("pick has no line")
)

// OutcomeKind tags what GradePick decided
type OutcomeKind int

const (
	// OutcomeDeferred means the pick cannot be graded yet and stays untouched
	OutcomeDeferred OutcomeKind = iota
	// OutcomeGraded means the pick won, lost or pushed
	OutcomeGraded
	// OutcomeUngraded means the game is final but the pick is ambiguous
	OutcomeUngraded
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeGraded:
		return "graded"
	case OutcomeUngraded:
		return "ungraded"
	default:
		return "deferred"
	}
}

// Outcome is the result of grading one pick. Grade is nil when deferred.
type Outcome struct {
	Kind   OutcomeKind
	Grade  *models.GradeResult
	Reason string
}

// Settles reports whether the outcome should be written to the store
func (o Outcome) Settles() bool {
	return o.Kind != OutcomeDeferred && o.Grade != nil
}

func deferred(reason string) Outcome {
	return Outcome{Kind: OutcomeDeferred, Reason: reason}
}

// GradePick grades a pick against the games of its sport. It returns an
// error only for malformed picks; a pick whose game or segment is not final
// yet comes back deferred.
func GradePick(pick *models.Pick, games []models.Game) (Outcome, error) {
	if pick == nil {
		return Outcome{}, models.ErrInvalidPick
	}
	switch pick.PickType {
	case models.PickTypeSpread, models.PickTypeTotal:
		if !pick.Line.Valid {
			return Outcome{}, fmt.Errorf("%w: %s pick %s", ErrMissingLine, pick.PickType, pick.ID)
		}
	case models.PickTypeMoneyline:
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnsupportedPickType, pick.PickType)
	}

	match := FindMatchingGame(pick, games)
	if match == nil {
		return deferred("no matching final game"), nil
	}

	segment := NormalizeSegment(pick.Segment)
	scores := GetSegmentScores(segment, match.Game)
	if scores == nil {
		return deferred(fmt.Sprintf("%s scores not available", segment)), nil
	}

	home, away := *scores.Home, *scores.Away
	grade := &models.GradeResult{
		FinalScore:   match.Game.String(),
		SegmentScore: fmt.Sprintf("%s %d-%d", segment, away, home),
		Game:         match.Game,
	}

	switch pick.PickType {
	case models.PickTypeTotal:
		direction := NormalizeDirection(pick.PickDirection)
		if direction == "" {
			direction = NormalizeDirection(pick.PickTeam)
		}
		if direction == "" {
			return ungraded(grade, fmt.Sprintf("total pick has no over/under direction (direction=%q, team=%q)",
				pick.PickDirection, pick.PickTeam)), nil
		}
		grade.Result = GradeTotal(direction, home+away, pick.Line.Decimal)
		grade.GradeNote = fmt.Sprintf("total %s %s (%s): %d -> %s",
			direction, pick.Line.Decimal.String(), segment, home+away, grade.Result)

	case models.PickTypeSpread, models.PickTypeMoneyline:
		side := IdentifyPickSide(pick, match)
		if side == SideUnknown {
			return ungraded(grade, sideNote(pick, match.Game)), nil
		}
		own, opp, _ := sideScores(side, home, away)
		team := sideTeam(side, match.Game)

		if pick.PickType == models.PickTypeSpread {
			grade.Result = GradeSpread(side, home, away, pick.Line.Decimal)
			adjusted := decimal.NewFromInt(int64(own)).Add(pick.Line.Decimal)
			grade.GradeNote = fmt.Sprintf("spread %s %s (%s): %d adjusted to %s vs %d -> %s",
				team, formatLine(pick.Line.Decimal), segment, own, adjusted.String(), opp, grade.Result)
		} else {
			grade.Result = GradeMoneyline(side, home, away)
			grade.GradeNote = fmt.Sprintf("moneyline %s (%s): %d vs %d -> %s",
				team, segment, own, opp, grade.Result)
		}
	}

	grade.PnL = CalculatePnL(grade.Result, pick.Risk, pick.ToWin)
	return Outcome{Kind: OutcomeGraded, Grade: grade}, nil
}

func ungraded(grade *models.GradeResult, note string) Outcome {
	grade.Result = models.ResultUngraded
	grade.PnL = decimal.Zero
	grade.GradeNote = "UNGRADED: " + note + "; manual review required"
	return Outcome{Kind: OutcomeUngraded, Grade: grade, Reason: note}
}

func sideNote(pick *models.Pick, game *models.Game) string {
	note := fmt.Sprintf("could not identify picked side for %q (home %s, away %s)",
		pick.PickTeam, game.HomeTeam, game.AwayTeam)
	if strings.TrimSpace(pick.PickTeam) == "" {
		note = fmt.Sprintf("pick has neither a home/away direction nor a team (home %s, away %s)",
			game.HomeTeam, game.AwayTeam)
	}
	if suggestions := teams.Suggest(pick.Sport, pick.PickTeam, 3); len(suggestions) > 0 {
		note += "; closest known teams: " + strings.Join(suggestions, ", ")
	}
	return note
}

func sideTeam(side Side, game *models.Game) string {
	if side == SideHome {
		return game.HomeTeam
	}
	return game.AwayTeam
}

func formatLine(line decimal.Decimal) string {
	if line.IsPositive() {
		return "+" + line.String()
	}
	return line.String()
}
