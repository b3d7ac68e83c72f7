package datasource

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/config"
	"github.com/yourusername/pick-settler/internal/models"
)

const (
	// GridironFeedName identifies the ESPN style scoreboard feed
	GridironFeedName = "gridiron"

	espnDateLayout = "20060102"
	espnPageLimit  = "400"
	// FBS games only; the default college scoreboard lists ranked teams
	espnCollegeGroup = "80"
)

// GridironFeed implements ScoreProvider for an ESPN style scoreboard. Line
// scores are per quarter; the first half is the sum of the first two periods.
type GridironFeed struct {
	httpClient *RateLimitedHTTPClient
	cfg        config.ProviderConfig
	timeout    time.Duration
	logger     *logrus.Entry
}

type espnScoreboard struct {
	Events []espnEvent `json:"events"`
}

type espnEvent struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Status       espnStatus        `json:"status"`
	Competitions []espnCompetition `json:"competitions"`
}

type espnStatus struct {
	Type struct {
		Name      string `json:"name"`
		Completed bool   `json:"completed"`
	} `json:"type"`
}

type espnCompetition struct {
	Status      *espnStatus      `json:"status"`
	Competitors []espnCompetitor `json:"competitors"`
}

type espnCompetitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		DisplayName string `json:"displayName"`
		Location    string `json:"location"`
		Name        string `json:"name"`
	} `json:"team"`
	Linescores []struct {
		Value float64 `json:"value"`
	} `json:"linescores"`
}

func (c espnCompetitor) teamName() string {
	if c.Team.DisplayName != "" {
		return c.Team.DisplayName
	}
	return strings.TrimSpace(c.Team.Location + " " + c.Team.Name)
}

func (c espnCompetitor) finalScore() *int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Score))
	if err != nil {
		return nil
	}
	return &v
}

func (c espnCompetitor) firstHalf() *int {
	if len(c.Linescores) < 2 {
		return nil
	}
	v := int(c.Linescores[0].Value) + int(c.Linescores[1].Value)
	return &v
}

// NewGridironFeed creates a new gridiron scoreboard client
func NewGridironFeed(httpClient *RateLimitedHTTPClient, cfg config.ProviderConfig, timeout time.Duration, logger *logrus.Logger) *GridironFeed {
	return &GridironFeed{
		httpClient: httpClient,
		cfg:        cfg,
		timeout:    timeout,
		logger:     logger.WithFields(logrus.Fields{"component": "datasource", "provider": GridironFeedName}),
	}
}

// Name returns the name of the provider
func (f *GridironFeed) Name() string { return GridironFeedName }

// Sports returns the configured sports
func (f *GridironFeed) Sports() []models.Sport { return f.cfg.Sports() }

// FetchFinalGames retrieves completed games one scoreboard date at a time
func (f *GridironFeed) FetchFinalGames(ctx context.Context, sport models.Sport, dates []time.Time) ([]models.Game, error) {
	league, ok := f.cfg.LeagueFor(sport)
	if !ok {
		return nil, NewProviderError(GridironFeedName, ErrCodeUnsupportedSport, string(sport), nil)
	}
	return fetchPerDate(ctx, f.logger, sport, dates, f.timeout, func(ctx context.Context, date time.Time) ([]models.Game, error) {
		return f.fetchDate(ctx, sport, league, date)
	})
}

func (f *GridironFeed) fetchDate(ctx context.Context, sport models.Sport, league string, date time.Time) ([]models.Game, error) {
	q := url.Values{}
	q.Set("dates", date.Format(espnDateLayout))
	q.Set("limit", espnPageLimit)
	if strings.Contains(league, "college") {
		q.Set("groups", espnCollegeGroup)
	}
	endpoint := strings.TrimRight(f.cfg.BaseURL, "/") + "/" + strings.Trim(league, "/") + "/scoreboard?" + q.Encode()

	var board espnScoreboard
	if err := f.httpClient.GetJSON(ctx, endpoint, nil, &board); err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(board.Events))
	for _, ev := range board.Events {
		game, ok := f.normalize(sport, date, ev)
		if !ok {
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

func (f *GridironFeed) normalize(sport models.Sport, date time.Time, ev espnEvent) (models.Game, bool) {
	if len(ev.Competitions) == 0 {
		return models.Game{}, false
	}
	comp := ev.Competitions[0]

	completed := ev.Status.Type.Completed
	if comp.Status != nil {
		completed = completed || comp.Status.Type.Completed
	}
	if !completed {
		return models.Game{}, false
	}

	var home, away *espnCompetitor
	for i := range comp.Competitors {
		switch strings.ToLower(comp.Competitors[i].HomeAway) {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		f.logger.WithField("event_id", ev.ID).Debug("Skipping event without home and away competitors")
		return models.Game{}, false
	}

	game := models.Game{
		Provider:   GridironFeedName,
		ProviderID: ev.ID,
		Sport:      sport,
		Date:       calendarDate(date),
		HomeTeam:   home.teamName(),
		AwayTeam:   away.teamName(),
		HomeScore:  home.finalScore(),
		AwayScore:  away.finalScore(),
		Status:     models.GameStatusFinal,
	}
	if !game.HasFinalScore() {
		f.logger.WithField("event_id", ev.ID).Warn("Skipping completed event without a final score")
		return models.Game{}, false
	}

	var firstHalf *models.ScorePair
	if h, a := home.firstHalf(), away.firstHalf(); h != nil && a != nil {
		firstHalf = &models.ScorePair{Home: h, Away: a}
	}
	game.HalfScores = models.BuildHalfScores(firstHalf, game.HomeScore, game.AwayScore)
	return game, true
}
