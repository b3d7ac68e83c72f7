package grading

import (
	"time"

	"github.com/yourusername/pick-settler/internal/models"
	"github.com/yourusername/pick-settler/internal/teams"
)

// maxDateDrift is how far a game's date may sit from the pick's game date.
// Feeds disagree on the date of late games by up to a day.
const maxDateDrift = 24 * time.Hour

// Match is a game selected for a pick. Swapped is set when the feed lists
// the pick's home team as the away side.
type Match struct {
	Game    *models.Game
	Swapped bool
	Score   int
}

// FindMatchingGame returns the best candidate game for the pick's teams, or
// nil when no finished game qualifies yet.
func FindMatchingGame(pick *models.Pick, games []models.Game) *Match {
	home := teams.ResolveForSport(pick.Sport, pick.HomeTeam)
	away := teams.ResolveForSport(pick.Sport, pick.AwayTeam)

	if m := bestMatch(pick, home, away, games); m != nil {
		return m
	}
	if m := bestMatch(pick, away, home, games); m != nil {
		m.Swapped = true
		return m
	}
	return nil
}

func bestMatch(pick *models.Pick, home, away string, games []models.Game) *Match {
	var (
		best      *Match
		bestDrift time.Duration
	)

	for i := range games {
		g := &games[i]
		if !g.HasFinalScore() {
			continue
		}
		if pick.Sport != "" && g.Sport != "" && g.Sport != pick.Sport {
			continue
		}
		drift, ok := dateDrift(pick.GameDate, g.Date)
		if !ok {
			continue
		}

		homeScore := teams.MatchScore(home, g.HomeTeam)
		awayScore := teams.MatchScore(away, g.AwayTeam)
		if homeScore < teams.MinConfidence || awayScore < teams.MinConfidence {
			continue
		}

		total := homeScore + awayScore
		if best == nil || total > best.Score || (total == best.Score && drift < bestDrift) {
			best = &Match{Game: g, Score: total}
			bestDrift = drift
		}
	}
	return best
}

// dateDrift returns the distance between two dates, and false when both are
// known and further apart than maxDateDrift.
func dateDrift(pickDate, gameDate time.Time) (time.Duration, bool) {
	if pickDate.IsZero() || gameDate.IsZero() {
		return 0, true
	}
	a := time.Date(pickDate.Year(), pickDate.Month(), pickDate.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(gameDate.Year(), gameDate.Month(), gameDate.Day(), 0, 0, 0, 0, time.UTC)
	drift := a.Sub(b)
	if drift < 0 {
		drift = -drift
	}
	return drift, drift <= maxDateDrift
}
